package gfx

import (
	"log/slog"
	"os"
)

// gfxLogLevel controls the log level of the gfx package.
// Default is LevelInfo, which suppresses Debug messages.
var gfxLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables debug logging for resource lifecycle and passes.
func SetVerbose(v bool) {
	if v {
		gfxLogLevel.Set(slog.LevelDebug)
	} else {
		gfxLogLevel.Set(slog.LevelInfo)
	}
}

func gfxVerbose() bool {
	return gfxLogLevel.Level() <= slog.LevelDebug
}

var gfxLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: gfxLogLevel}))
