package ui

import (
	"log/slog"
	"os"
)

// uiLogLevel controls the log level for UI debug logging.
// Default is LevelInfo, which suppresses Debug messages.
var uiLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables verbose/debug logging for UI components.
func SetVerbose(v bool) {
	if v {
		uiLogLevel.Set(slog.LevelDebug)
	} else {
		uiLogLevel.Set(slog.LevelInfo)
	}
}

// uiVerbose returns true if UI debug logging is enabled.
func uiVerbose() bool {
	return uiLogLevel.Level() <= slog.LevelDebug
}

var uiLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: uiLogLevel}))
