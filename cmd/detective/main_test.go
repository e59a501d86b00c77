package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/myrjola/detective/internal/config"
	"github.com/stretchr/testify/require"
)

func newTestRoot(t *testing.T, args ...string) (*bytes.Buffer, error) {
	t.Helper()
	cfg, err := config.Parse(map[string]string{})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var out bytes.Buffer
	root := newRootCommand(&cfg)
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(""))
	return &out, root.ExecuteContext(ctx)
}

func TestCasefile(t *testing.T) {
	out, err := newTestRoot(t, "casefile")
	require.NoError(t, err)
	require.Contains(t, out.String(), "🔍 Clues:\n- Broken window\n")
	require.Contains(t, out.String(), "1. Zwelibanzi Ntanzi - Security Guard:\n")
	require.Contains(t, out.String(), "3. Tevin Monayi - Janitor:\n")
}

func TestCasefile_logFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "detective.log")
	_, err := newTestRoot(t, "casefile", "--log-file", logFile, "--log-level", "debug")
	require.NoError(t, err)

	logs, err := os.ReadFile(logFile)
	require.NoError(t, err)
	require.Contains(t, string(logs), "catalog opened")
}

func TestCasefile_unknownCase(t *testing.T) {
	_, err := newTestRoot(t, "casefile", "--case", "maltese-falcon")
	require.ErrorContains(t, err, "case not found")
}

func TestRoot_invalidLogLevel(t *testing.T) {
	_, err := newTestRoot(t, "casefile", "--log-level", "chatty")
	require.ErrorContains(t, err, "parse log level")
}
