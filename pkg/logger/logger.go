package logger

import (
	"log/slog"
	"os"
)

// SetupPrettySlog is the local-development logger: human-readable text at
// debug level, with source locations.
func SetupPrettySlog() *slog.Logger {
	return slog.New(
		slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level:     slog.LevelDebug,
			AddSource: true,
		}),
	)
}
