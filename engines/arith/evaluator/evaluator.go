package evaluator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robbyt/go-arithscript/engines/arith/ast"
	"github.com/robbyt/go-arithscript/internal/helpers"
	"github.com/robbyt/go-arithscript/platform"
	"github.com/robbyt/go-arithscript/platform/script"
)

// Evaluator interprets the expression tree held by an ExecutableUnit.
type Evaluator struct {
	// execUnit contains the compiled expression
	execUnit *script.ExecutableUnit

	logger *slog.Logger
}

// New creates a new Evaluator object
func New(
	handler slog.Handler,
	execUnit *script.ExecutableUnit,
) *Evaluator {
	_, logger := helpers.SetupLogger(handler, "arith", "Evaluator")

	return &Evaluator{
		execUnit: execUnit,
		logger:   logger,
	}
}

func (be *Evaluator) String() string {
	return "arith.Evaluator"
}

// exec interprets the tree and times it
func (be *Evaluator) exec(tree ast.Node) (*execResult, error) {
	startTime := time.Now()
	value, err := ast.Interpret(tree)
	execTime := time.Since(startTime)

	if err != nil {
		return nil, fmt.Errorf("arith execution error: %w", err)
	}
	return newEvalResult(value, execTime, ""), nil
}

// Eval interprets the compiled expression. The context is only checked for
// cancellation before evaluation starts.
func (be *Evaluator) Eval(ctx context.Context) (platform.EvaluatorResponse, error) {
	logger := be.logger.WithGroup("Eval")
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if be.execUnit == nil {
		return nil, fmt.Errorf("executable unit is nil")
	}

	if be.execUnit.GetContent() == nil {
		return nil, fmt.Errorf("content is nil")
	}

	bytecode := be.execUnit.GetContent().GetByteCode()
	if bytecode == nil {
		return nil, fmt.Errorf("bytecode is nil")
	}

	exeID := be.execUnit.GetID()
	if exeID == "" {
		return nil, fmt.Errorf("exeID is empty")
	}
	logger = logger.With("exeID", exeID)

	tree, ok := bytecode.(ast.Node)
	if !ok {
		return nil, fmt.Errorf(
			"unable to type assert bytecode into ast.Node for ID: %s",
			exeID,
		)
	}

	result, err := be.exec(tree)
	if err != nil {
		logger.WarnContext(ctx, "exec failed", "error", err)
		return nil, fmt.Errorf("exec error: %w", err)
	}
	result.scriptExeID = exeID

	logger.DebugContext(ctx, "exec complete", "result", result.Int64())
	return result, nil
}
