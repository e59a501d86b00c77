package testhelpers

import (
	"io"
	"log/slog"
	"testing"

	"github.com/myrjola/detective/internal/logging"
)

// NewLogger creates a new logger with the given log sink such as io.Discard.
func NewLogger(logSink io.Writer) *slog.Logger {
	return logging.NewTextLogger(logSink, slog.LevelDebug)
}

// testWriter forwards log lines to [testing.TB.Log] so that they show up only for failing tests.
type testWriter struct {
	tb testing.TB
}

func (w testWriter) Write(p []byte) (int, error) {
	w.tb.Helper()
	w.tb.Log(string(p))
	return len(p), nil
}

// NewTestLogger creates a logger that writes through tb.Log.
func NewTestLogger(tb testing.TB) *slog.Logger {
	tb.Helper()
	return NewLogger(testWriter{tb: tb})
}
