package compiler

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/robbyt/go-arithscript/engines/arith/compiler/internal/compile"
	"github.com/robbyt/go-arithscript/platform/script"
)

// Compiler turns arith source into an Executable holding its expression tree.
type Compiler struct {
	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates a new arith Compiler configured by opts.
func New(opts ...FunctionalOption) (*Compiler, error) {
	c := &Compiler{}
	c.applyDefaults()

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("error applying compiler option: %w", err)
		}
	}

	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid compiler configuration: %w", err)
	}

	c.setupLogger()
	return c, nil
}

func (c *Compiler) String() string {
	return "arith.Compiler"
}

// Compile reads and closes scriptReader, then parses its content.
func (c *Compiler) Compile(scriptReader io.ReadCloser) (script.ExecutableContent, error) {
	if scriptReader == nil {
		return nil, ErrContentNil
	}

	scriptBodyBytes, err := io.ReadAll(scriptReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	if err := scriptReader.Close(); err != nil {
		return nil, fmt.Errorf("failed to close reader: %w", err)
	}

	exe, err := c.compile(scriptBodyBytes)
	if err != nil {
		return nil, err
	}
	return exe, nil
}

func (c *Compiler) compile(scriptBodyBytes []byte) (*Executable, error) {
	logger := c.logger.WithGroup("compile")

	tokens := compile.Tokenize(string(scriptBodyBytes))
	logger.Debug("Starting validation", "tokens", len(tokens))

	tree, err := compile.Parse(tokens)
	if err != nil {
		logger.Warn("Compilation failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	exe := newExecutable(scriptBodyBytes, tree)
	if exe == nil {
		logger.Error("Failed to create Executable from tree")
		return nil, ErrExecCreationFailed
	}

	logger.Debug("Compilation successful", "nodeCount", exe.GetNodeCount())
	return exe, nil
}
