package platform

import "github.com/robbyt/go-arithscript/platform/data"

// EvaluatorResponse is the result of a single evaluation.
type EvaluatorResponse interface {
	// Type of the result.
	Type() data.Types

	// Inspect returns a string representation of the result.
	Inspect() string

	// Interface converts the result to a native Go value.
	Interface() any

	// GetScriptExeID returns the ID of the executable unit that produced the result.
	GetScriptExeID() string

	// GetExecTime returns the time it took to evaluate the expression.
	GetExecTime() string
}
