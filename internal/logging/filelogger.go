package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/myrjola/detective/internal/errors"
)

// NewFileLogger creates a text logger appending to the file at path. An empty path discards the logs. The returned
// function closes the file.
func NewFileLogger(path string, level slog.Level) (*slog.Logger, func() error, error) {
	if path == "" {
		return NewTextLogger(io.Discard, level), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open log file", slog.String("path", path))
	}
	return NewTextLogger(f, level), f.Close, nil
}
