package script

import (
	machineTypes "github.com/robbyt/go-arithscript/engines/types"
)

// ExecutableContent represents validated source that is ready for evaluation.
// It provides access to the original source and its compiled form.
type ExecutableContent interface {
	// GetSource returns the original source as a string.
	GetSource() string

	// GetByteCode returns the compiled form in an engine-specific type. The
	// engine's evaluator asserts it into the type it requires and returns an
	// error at runtime when the assertion fails.
	GetByteCode() any

	// GetMachineType returns the engine type this content is intended to run on.
	GetMachineType() machineTypes.Type
}
