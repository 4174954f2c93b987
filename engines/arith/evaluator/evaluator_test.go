package evaluator

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/robbyt/go-arithscript/engines/arith/ast"
	"github.com/robbyt/go-arithscript/engines/arith/compiler"
	"github.com/robbyt/go-arithscript/platform/data"
	"github.com/robbyt/go-arithscript/platform/script"
	"github.com/robbyt/go-arithscript/platform/script/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExecUnit(t *testing.T, handler slog.Handler, source string) *script.ExecutableUnit {
	t.Helper()
	ldr, err := loader.NewFromString(source)
	require.NoError(t, err)

	comp, err := compiler.New(compiler.WithLogHandler(handler))
	require.NoError(t, err)

	execUnit, err := script.NewExecutableUnit(handler, "", ldr, comp)
	require.NoError(t, err)
	return execUnit
}

func TestEvaluator_Eval(t *testing.T) {
	t.Parallel()
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})

	tests := []struct {
		name   string
		source string
		want   int64
	}{
		{name: "single literal", source: "5", want: 5},
		{name: "classic demo", source: "5 + 3 - 2 + 10 - 4", want: 12},
		{name: "negative result", source: "10 - 20", want: -10},
		{name: "signed literals", source: "-5 - -5 + +1", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			execUnit := newExecUnit(t, handler, tt.source)
			evaluator := New(handler, execUnit)
			require.Equal(t, "arith.Evaluator", evaluator.String())

			response, err := evaluator.Eval(t.Context())
			require.NoError(t, err)
			require.NotNil(t, response)

			assert.Equal(t, data.INT, response.Type())
			assert.Equal(t, tt.want, response.Interface())
			assert.Equal(t, execUnit.GetID(), response.GetScriptExeID())
			assert.NotEmpty(t, response.GetExecTime())

			result, ok := response.(*execResult)
			require.True(t, ok)
			assert.Equal(t, tt.want, result.Int64())
		})
	}
}

func TestEvaluator_CompileOnceRunMany(t *testing.T) {
	t.Parallel()
	handler := slog.NewTextHandler(os.Stdout, nil)
	evaluator := New(handler, newExecUnit(t, handler, "5 + 3 - 2 + 10 - 4"))

	var wg sync.WaitGroup
	results := make([]any, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			response, err := evaluator.Eval(context.Background())
			if err != nil {
				results[i] = err
				return
			}
			results[i] = response.Interface()
		}()
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, int64(12), r)
	}
}

func TestEvaluator_Errors(t *testing.T) {
	t.Parallel()
	handler := slog.NewTextHandler(os.Stdout, nil)

	t.Run("cancelled context", func(t *testing.T) {
		evaluator := New(handler, newExecUnit(t, handler, "1 + 1"))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		response, err := evaluator.Eval(ctx)
		require.ErrorIs(t, err, context.Canceled)
		require.Nil(t, response)
	})

	t.Run("nil executable unit", func(t *testing.T) {
		evaluator := New(handler, nil)
		response, err := evaluator.Eval(t.Context())
		require.Error(t, err)
		require.Nil(t, response)
		assert.Contains(t, err.Error(), "executable unit is nil")
	})

	t.Run("nil content", func(t *testing.T) {
		evaluator := New(handler, &script.ExecutableUnit{ID: "test"})
		_, err := evaluator.Eval(t.Context())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "content is nil")
	})

	t.Run("nil bytecode", func(t *testing.T) {
		content := new(script.MockExecutableContent)
		content.On("GetByteCode").Return(nil)

		evaluator := New(handler, &script.ExecutableUnit{ID: "test", Content: content})
		_, err := evaluator.Eval(t.Context())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bytecode is nil")
		content.AssertExpectations(t)
	})

	t.Run("empty ID", func(t *testing.T) {
		content := new(script.MockExecutableContent)
		content.On("GetByteCode").Return(ast.Literal(1))

		evaluator := New(handler, &script.ExecutableUnit{Content: content})
		_, err := evaluator.Eval(t.Context())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exeID is empty")
	})

	t.Run("wrong bytecode type", func(t *testing.T) {
		content := new(script.MockExecutableContent)
		content.On("GetByteCode").Return("not a tree")

		evaluator := New(handler, &script.ExecutableUnit{ID: "test", Content: content})
		_, err := evaluator.Eval(t.Context())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unable to type assert bytecode")
	})

	t.Run("overflow", func(t *testing.T) {
		evaluator := New(handler, newExecUnit(t, handler, "9223372036854775807 + 1"))
		response, err := evaluator.Eval(t.Context())
		require.ErrorIs(t, err, ast.ErrOverflow)
		require.Nil(t, response)
	})
}
