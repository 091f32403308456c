package observability

import (
	"log/slog"
	"os"
)

// NewLogger builds the process-wide slog logger. Production environments get
// JSON output for the log pipeline; everything else gets human-readable text.
func NewLogger(environment string) *slog.Logger {
	var handler slog.Handler
	switch environment {
	case "production", "staging":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	return slog.New(handler).With(slog.String("service", "gridrank"))
}
