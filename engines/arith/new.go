package arith

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/robbyt/go-arithscript/engines/arith/ast"
	"github.com/robbyt/go-arithscript/engines/arith/compiler"
	"github.com/robbyt/go-arithscript/engines/arith/evaluator"
	"github.com/robbyt/go-arithscript/platform/script"
	"github.com/robbyt/go-arithscript/platform/script/loader"
)

// FromArithLoader creates an arith evaluator from a loader.
//
// Input parameters:
// - logHandler: logger handler for logging
// - ldr: loader implementation for loading the expression source
//
// Returns an evaluator, which implements the platform.Evaluator interface.
func FromArithLoader(
	logHandler slog.Handler,
	ldr loader.Loader,
) (*evaluator.Evaluator, error) {
	return NewEvaluator(logHandler, ldr)
}

// NewCompiler creates a new arith compiler using the functional options pattern.
// Returns a compiler implementing the script.Compiler interface.
func NewCompiler(opts ...compiler.FunctionalOption) (*compiler.Compiler, error) {
	return compiler.New(opts...)
}

// NewEvaluator compiles the loader's source and returns an evaluator ready
// to run it any number of times.
func NewEvaluator(
	logHandler slog.Handler,
	ldr loader.Loader,
) (*evaluator.Evaluator, error) {
	if ldr == nil {
		return nil, fmt.Errorf("loader is nil")
	}

	var opts []compiler.FunctionalOption
	if logHandler != nil {
		opts = append(opts, compiler.WithLogHandler(logHandler))
	}
	comp, err := NewCompiler(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create arith compiler: %w", err)
	}

	execUnitID := ""
	if sourceURL := ldr.GetSourceURL(); sourceURL != nil {
		execUnitID = sourceURL.String()
	}

	execUnit, err := script.NewExecutableUnit(logHandler, execUnitID, ldr, comp)
	if err != nil {
		return nil, err
	}

	return evaluator.New(logHandler, execUnit), nil
}

// Evaluate parses input and reduces it to an integer in one step. Malformed
// input fails with an error matching one of compiler.ErrInvalidNumber,
// compiler.ErrInvalidOperator or compiler.ErrUnexpectedEndOfInput.
func Evaluate(logHandler slog.Handler, input string) (int64, error) {
	var opts []compiler.FunctionalOption
	if logHandler != nil {
		opts = append(opts, compiler.WithLogHandler(logHandler))
	}
	comp, err := NewCompiler(opts...)
	if err != nil {
		return 0, fmt.Errorf("failed to create arith compiler: %w", err)
	}

	content, err := comp.Compile(io.NopCloser(strings.NewReader(input)))
	if err != nil {
		return 0, err
	}

	exe, ok := content.(*compiler.Executable)
	if !ok {
		return 0, fmt.Errorf("unexpected executable type %T", content)
	}
	return ast.Interpret(exe.GetArithTree())
}
