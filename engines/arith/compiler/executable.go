package compiler

import (
	"github.com/robbyt/go-arithscript/engines/arith/ast"
	machineTypes "github.com/robbyt/go-arithscript/engines/types"
)

// Executable is the compiled form of one expression: its source and tree.
type Executable struct {
	scriptBodyBytes []byte
	tree            ast.Node
	nodeCount       int
}

// newExecutable returns nil when either the source or the tree is missing.
func newExecutable(scriptBodyBytes []byte, tree ast.Node) *Executable {
	if len(scriptBodyBytes) == 0 || tree == nil {
		return nil
	}

	return &Executable{
		scriptBodyBytes: scriptBodyBytes,
		tree:            tree,
		nodeCount:       ast.Count(tree),
	}
}

func (e *Executable) GetSource() string {
	return string(e.scriptBodyBytes)
}

// GetByteCode returns the expression tree as an ast.Node.
func (e *Executable) GetByteCode() any {
	return e.tree
}

func (e *Executable) GetArithTree() ast.Node {
	return e.tree
}

func (e *Executable) GetMachineType() machineTypes.Type {
	return machineTypes.Arith
}

// GetNodeCount returns the number of nodes in the tree.
func (e *Executable) GetNodeCount() int {
	return e.nodeCount
}
