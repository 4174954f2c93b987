package script

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	machineTypes "github.com/robbyt/go-arithscript/engines/types"
	"github.com/robbyt/go-arithscript/internal/helpers"
	"github.com/robbyt/go-arithscript/platform/script/loader"
)

const checksumLength = 12

// ExecutableUnit is one compiled version of an expression. It is immutable
// after construction and may be shared between goroutines.
type ExecutableUnit struct {
	// ID is a unique identifier for this executable unit, typically derived from a hash of the source.
	ID string

	// CreatedAt records when this executable unit was instantiated.
	CreatedAt time.Time

	// ScriptLoader loads the source into local memory (string, file, reader, etc.).
	ScriptLoader loader.Loader

	// Compiler is the engine-specific compiler that was used to compile this unit.
	Compiler Compiler

	// Content holds the compiled form and source of the expression.
	Content ExecutableContent

	logHandler slog.Handler
	logger     *slog.Logger
}

// NewExecutableUnit reads the source from scriptLoader and compiles it.
// When versionID is empty, the ID is derived from the compiled source.
func NewExecutableUnit(
	handler slog.Handler,
	versionID string,
	scriptLoader loader.Loader,
	compiler Compiler,
) (*ExecutableUnit, error) {
	handler, logger := helpers.SetupLogger(handler, "script", "ExecutableUnit")

	if compiler == nil {
		return nil, errors.New("compiler is nil")
	}
	if scriptLoader == nil {
		return nil, errors.New("loader is nil")
	}

	reader, err := scriptLoader.GetReader()
	if err != nil {
		return nil, fmt.Errorf("failed to get reader from loader: %w", err)
	}

	exe, err := compiler.Compile(reader)
	if err != nil {
		return nil, fmt.Errorf("compiler failed: %w", err)
	}

	if versionID == "" {
		versionID = helpers.ShortSHA256([]byte(exe.GetSource()), checksumLength)
	}

	logger = logger.With("ID", versionID)
	logger.Debug("executable unit created", "machineType", exe.GetMachineType())

	return &ExecutableUnit{
		ID:           versionID,
		CreatedAt:    time.Now(),
		ScriptLoader: scriptLoader,
		Content:      exe,
		Compiler:     compiler,
		logHandler:   handler,
		logger:       logger,
	}, nil
}

func (exe *ExecutableUnit) String() string {
	return fmt.Sprintf("ExecutableUnit{ID: %s, CreatedAt: %s, Compiler: %s, Loader: %s}",
		exe.ID, exe.CreatedAt, exe.Compiler, exe.ScriptLoader)
}

// GetID returns the unique identifier (version number, or name) for this unit.
func (exe *ExecutableUnit) GetID() string {
	return exe.ID
}

// GetContent returns the validated & compiled content.
func (exe *ExecutableUnit) GetContent() ExecutableContent {
	return exe.Content
}

// GetCreatedAt returns the timestamp when the unit was created.
func (exe *ExecutableUnit) GetCreatedAt() time.Time {
	return exe.CreatedAt
}

// GetMachineType returns the engine type this unit is intended to run on.
func (exe *ExecutableUnit) GetMachineType() machineTypes.Type {
	return exe.Content.GetMachineType()
}

func (exe *ExecutableUnit) GetCompiler() Compiler {
	return exe.Compiler
}

func (exe *ExecutableUnit) GetLoader() loader.Loader {
	return exe.ScriptLoader
}
