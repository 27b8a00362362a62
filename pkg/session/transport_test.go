package session_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/pkg/session"
)

func TestHeaderTransport(t *testing.T) {
	t.Parallel()

	transport := session.NewHeaderTransport("Authorization")

	t.Run("extracts bearer token", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("Authorization", "Bearer ab12cd34.secret")

		token, err := transport.GetToken(r)
		require.NoError(t, err)
		assert.Equal(t, "ab12cd34.secret", token)
	})

	t.Run("missing header", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "/", nil)
		_, err := transport.GetToken(r)
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

		_, err := transport.GetToken(r)
		assert.ErrorIs(t, err, session.ErrInvalidToken)
	})

	t.Run("empty token after scheme", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("Authorization", "Bearer ")

		_, err := transport.GetToken(r)
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})

	t.Run("set and clear", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		require.NoError(t, transport.SetToken(w, "ab12cd34.secret"))
		assert.Equal(t, "Bearer ab12cd34.secret", w.Header().Get("Authorization"))

		require.NoError(t, transport.ClearToken(w))
		assert.Empty(t, w.Header().Get("Authorization"))
	})

	t.Run("custom prefix", func(t *testing.T) {
		t.Parallel()

		custom := session.NewHeaderTransport("X-Session-Token", session.WithHeaderPrefix(""))

		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("X-Session-Token", "ab12cd34.secret")

		token, err := custom.GetToken(r)
		require.NoError(t, err)
		assert.Equal(t, "ab12cd34.secret", token)
	})
}
