package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// New returns a text logger writing to w. Debug level is enabled by the
// debug flag or CREDITS_DEBUG=1.
func New(w io.Writer, debug bool) *slog.Logger {
	if w == nil {
		w = io.Discard
	}
	if os.Getenv("CREDITS_DEBUG") == "1" {
		debug = true
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// WithRun tags every record of one collection run with a fresh run_id.
func WithRun(logger *slog.Logger) (*slog.Logger, string) {
	if logger == nil {
		logger = Discard()
	}

	runID := uuid.NewString()
	return logger.With("run_id", runID), runID
}
