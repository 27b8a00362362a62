package session

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionID(t *testing.T) {
	t.Parallel()

	id, err := newSessionID()
	require.NoError(t, err)
	assert.Len(t, id, 8)

	_, err = hex.DecodeString(id)
	assert.NoError(t, err)
}

func TestNewSecret(t *testing.T) {
	t.Parallel()

	secret, err := newSecret()
	require.NoError(t, err)
	assert.Len(t, secret, 64)

	_, err = hex.DecodeString(secret)
	assert.NoError(t, err)
}

func TestComposeParseToken(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		token := composeToken("ab12cd34", "deadbeef")
		assert.Equal(t, "ab12cd34.deadbeef", token)

		sessionID, secret, err := parseToken(token)
		require.NoError(t, err)
		assert.Equal(t, "ab12cd34", sessionID)
		assert.Equal(t, "deadbeef", secret)
	})

	t.Run("malformed tokens", func(t *testing.T) {
		t.Parallel()

		for _, token := range []string{
			"",
			"nodot",
			"a.b.c",
			".secret",
			"sessionid.",
			".",
		} {
			_, _, err := parseToken(token)
			assert.ErrorIs(t, err, ErrInvalidToken, "token %q", token)
		}
	})
}
