package helpers

import (
	"log/slog"
	"os"
)

// SetupLogger returns a handler and a grouped logger for an engine component.
// A nil handler is replaced by a text handler on stderr, grouped under engineName.
//
// Parameters:
//   - handler: The slog.Handler to use, or nil for defaults
//   - engineName: The name of the engine (e.g., "arith")
//   - groupName: Optional group for the component within the engine (e.g., "Compiler")
func SetupLogger(
	handler slog.Handler,
	engineName string,
	groupName string,
) (slog.Handler, *slog.Logger) {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, nil).WithGroup(engineName)
		slog.New(handler).Warn("Handler is nil, using the default logger configuration.")
	}

	if groupName == "" {
		return handler, slog.New(handler)
	}
	return handler, slog.New(handler.WithGroup(groupName))
}
