package main

import (
	"context"
	"io"
	"testing"

	"github.com/myrjola/detective/internal/e2etest"
	"github.com/stretchr/testify/require"
)

// startTestServer starts the web shell on a random port with an in-memory database. The server stops when the test
// ends.
func startTestServer(t *testing.T) *e2etest.Server {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	server, err := e2etest.StartServer(ctx, io.Discard, map[string]string{
		"DETECTIVE_ADDR":      "localhost:0",
		"DETECTIVE_LOG_LEVEL": "debug",
	}, run)
	require.NoError(t, err)
	return server
}
