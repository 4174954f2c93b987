package platform

import (
	"context"
)

// Evaluator is the interface for the generic expression evaluator.
type Evaluator interface {
	// Eval evaluates the pre-compiled expression held by the evaluator.
	//
	// This design encourages the "compile once, run many times" pattern,
	// where parsing is separated from evaluation. A compiled expression holds
	// no mutable state, so Eval may be called concurrently.
	Eval(ctx context.Context) (EvaluatorResponse, error)
}
