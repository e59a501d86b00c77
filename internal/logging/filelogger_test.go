package logging_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/myrjola/detective/internal/logging"
	"github.com/stretchr/testify/require"
)

func TestNewFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "detective.log")

	for range 2 {
		logger, closeLog, err := logging.NewFileLogger(path, slog.LevelInfo)
		require.NoError(t, err)
		logger.LogAttrs(context.Background(), slog.LevelInfo, "session started", slog.String("detective", "Alex"))
		logger.LogAttrs(context.Background(), slog.LevelDebug, "hidden")
		require.NoError(t, closeLog())
	}

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, 2, strings.Count(string(contents), "\n"), "log file is appended to")
	require.Contains(t, string(contents), "detective=Alex")
	require.NotContains(t, string(contents), "hidden")
}

func TestNewFileLogger_discard(t *testing.T) {
	logger, closeLog, err := logging.NewFileLogger("", slog.LevelDebug)
	require.NoError(t, err)
	logger.LogAttrs(context.Background(), slog.LevelInfo, "nowhere")
	require.NoError(t, closeLog())
}

func TestNewFileLogger_missingDirectory(t *testing.T) {
	_, _, err := logging.NewFileLogger(filepath.Join(t.TempDir(), "missing", "detective.log"), slog.LevelInfo)
	require.Error(t, err)
}
