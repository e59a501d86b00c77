package contexthelpers_test

import (
	"net/http/httptest"
	"testing"

	"github.com/myrjola/detective/internal/contexthelpers"
	"github.com/stretchr/testify/require"
)

func TestSetters(t *testing.T) {
	r := httptest.NewRequest("GET", "/accuse", nil)
	require.Empty(t, contexthelpers.CurrentPath(r.Context()))
	require.Empty(t, contexthelpers.CSRFToken(r.Context()))
	require.Empty(t, contexthelpers.CSPNonce(r.Context()))

	r = contexthelpers.SetCurrentPath(r, "/accuse")
	r = contexthelpers.SetCSRFToken(r, "token")
	r = contexthelpers.SetCSPNonce(r, "nonce")

	require.Equal(t, "/accuse", contexthelpers.CurrentPath(r.Context()))
	require.Equal(t, "token", contexthelpers.CSRFToken(r.Context()))
	require.Equal(t, "nonce", contexthelpers.CSPNonce(r.Context()))
}
