// Package arithscript evaluates whitespace-separated integer expressions of
// the form "number (op number)*", where op is "+" or "-". Operators have equal
// precedence and are applied strictly left to right.
//
// Evaluate is the one-shot entry point. The From* constructors compile the
// expression once and return an evaluator that can be run many times.
package arithscript

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/robbyt/go-arithscript/engines/arith"
	"github.com/robbyt/go-arithscript/engines/arith/ast"
	"github.com/robbyt/go-arithscript/engines/arith/compiler"
	"github.com/robbyt/go-arithscript/platform"
	"github.com/robbyt/go-arithscript/platform/script/loader"
)

var (
	// ErrInvalidNumber is returned when a term is not a valid integer.
	ErrInvalidNumber = compiler.ErrInvalidNumber
	// ErrInvalidOperator is returned when an operator token is not "+" or "-".
	ErrInvalidOperator = compiler.ErrInvalidOperator
	// ErrUnexpectedEndOfInput is returned when a term is expected but the input is exhausted.
	ErrUnexpectedEndOfInput = compiler.ErrUnexpectedEndOfInput
	// ErrOverflow is returned when the running total leaves the int64 range.
	ErrOverflow = ast.ErrOverflow
)

// ParseError describes which token caused a parse failure.
type ParseError = compiler.ParseError

// Evaluate parses input and reduces it to an integer. Parse failures can be
// matched with errors.Is against the Err* values above, or unpacked with
// errors.As into a *ParseError. Evaluate does not log; use the From*
// constructors with a handler to observe compilation.
func Evaluate(input string) (int64, error) {
	return arith.Evaluate(slog.DiscardHandler, input)
}

// FromArithString creates an evaluator from an expression string.
func FromArithString(content string, logHandler slog.Handler) (platform.Evaluator, error) {
	l, err := loader.NewFromString(content)
	if err != nil {
		return nil, fmt.Errorf("failed to create string loader: %w", err)
	}
	return arith.FromArithLoader(logHandler, l)
}

// FromArithFile creates an evaluator from an expression stored on disk. The
// path must be absolute.
func FromArithFile(filePath string, logHandler slog.Handler) (platform.Evaluator, error) {
	l, err := loader.NewFromDisk(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create disk loader: %w", err)
	}
	return arith.FromArithLoader(logHandler, l)
}

// FromArithReader creates an evaluator from an io.Reader. The reader is
// consumed once, during construction.
func FromArithReader(r io.Reader, logHandler slog.Handler) (platform.Evaluator, error) {
	l, err := loader.NewFromIoReader(r, "")
	if err != nil {
		return nil, fmt.Errorf("failed to create reader loader: %w", err)
	}
	return arith.FromArithLoader(logHandler, l)
}

// FromArithSource creates an evaluator from any source accepted by
// loader.InferLoader: a string of code, an absolute file path, a []byte,
// an io.Reader, or a loader.Loader.
func FromArithSource(source any, logHandler slog.Handler) (platform.Evaluator, error) {
	l, err := loader.InferLoader(source)
	if err != nil {
		return nil, err
	}
	return arith.FromArithLoader(logHandler, l)
}
