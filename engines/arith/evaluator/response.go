package evaluator

import (
	"fmt"
	"strconv"
	"time"

	"github.com/robbyt/go-arithscript/platform/data"
)

// execResult is the integer produced by one evaluation
type execResult struct {
	value       int64
	execTime    time.Duration
	scriptExeID string
}

func newEvalResult(value int64, execTime time.Duration, versionID string) *execResult {
	return &execResult{
		value:       value,
		execTime:    execTime,
		scriptExeID: versionID,
	}
}

func (r *execResult) String() string {
	return fmt.Sprintf(
		"execResult{Type: %s, Value: %d, ExecTime: %s, ScriptExeID: %s}",
		r.Type(), r.value, r.GetExecTime(), r.GetScriptExeID())
}

func (r *execResult) Type() data.Types {
	return data.INT
}

func (r *execResult) Inspect() string {
	return strconv.FormatInt(r.value, 10)
}

// Interface returns the result as an int64.
func (r *execResult) Interface() any {
	return r.value
}

func (r *execResult) Int64() int64 {
	return r.value
}

func (r *execResult) GetScriptExeID() string {
	return r.scriptExeID
}

func (r *execResult) GetExecTime() string {
	return r.execTime.String()
}
