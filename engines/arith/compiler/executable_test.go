package compiler

import (
	"testing"

	"github.com/robbyt/go-arithscript/engines/arith/ast"
	machineTypes "github.com/robbyt/go-arithscript/engines/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutable(t *testing.T) {
	t.Parallel()

	t.Run("Creation", func(t *testing.T) {
		tree := &ast.BinaryOp{Op: ast.Add, Left: ast.Literal(1), Right: ast.Literal(2)}

		t.Run("valid creation", func(t *testing.T) {
			exe := newExecutable([]byte("1 + 2"), tree)
			require.NotNil(t, exe)
			assert.Equal(t, "1 + 2", exe.GetSource())
			assert.Equal(t, 3, exe.GetNodeCount())
		})

		t.Run("nil content", func(t *testing.T) {
			assert.Nil(t, newExecutable(nil, tree))
		})

		t.Run("nil tree", func(t *testing.T) {
			assert.Nil(t, newExecutable([]byte("1 + 2"), nil))
		})

		t.Run("both nil", func(t *testing.T) {
			assert.Nil(t, newExecutable(nil, nil))
		})
	})

	t.Run("Getters", func(t *testing.T) {
		tree := ast.Literal(42)
		executable := newExecutable([]byte("42"), tree)
		require.NotNil(t, executable)

		t.Run("GetByteCode", func(t *testing.T) {
			code := executable.GetByteCode()
			assert.Equal(t, tree, code)

			_, ok := code.(ast.Node)
			assert.True(t, ok)
		})

		t.Run("GetArithTree", func(t *testing.T) {
			assert.Equal(t, tree, executable.GetArithTree())
		})

		t.Run("GetMachineType", func(t *testing.T) {
			assert.Equal(t, machineTypes.Arith, executable.GetMachineType())
		})
	})
}
