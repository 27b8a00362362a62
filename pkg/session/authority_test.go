package session_test

import (
	"context"
	"encoding/hex"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/authkit/pkg/credential"
	"github.com/dmitrymomot/authkit/pkg/session"
)

// setupAuthority wires an authority over in-memory stores with a registered
// "alice" identity.
func setupAuthority(t *testing.T, opts ...session.Option) (*session.Authority, *session.MemoryStore) {
	t.Helper()

	creds := credential.NewService(credential.NewMemoryStore(), credential.WithBcryptCost(bcrypt.MinCost))
	_, err := creds.Register(context.Background(), "alice", "S3cret!")
	require.NoError(t, err)

	store := session.NewMemoryStore()
	opts = append([]session.Option{session.WithTokenHashCost(bcrypt.MinCost)}, opts...)
	return session.New(creds, store, opts...), store
}

func TestAuthority_Login(t *testing.T) {
	t.Parallel()

	t.Run("returns well-formed composite token", func(t *testing.T) {
		t.Parallel()

		authority, store := setupAuthority(t)

		token, err := authority.Login(context.Background(), "alice", "S3cret!")
		require.NoError(t, err)

		parts := strings.Split(token, ".")
		require.Len(t, parts, 2)
		assert.Len(t, parts[0], 8)
		assert.Len(t, parts[1], 64)

		_, err = hex.DecodeString(parts[0])
		assert.NoError(t, err)
		_, err = hex.DecodeString(parts[1])
		assert.NoError(t, err)

		assert.Equal(t, 1, store.Len())
	})

	t.Run("wrong secret and unknown username fail identically", func(t *testing.T) {
		t.Parallel()

		authority, store := setupAuthority(t)

		_, errWrongSecret := authority.Login(context.Background(), "alice", "wrong")
		_, errUnknownUser := authority.Login(context.Background(), "nobody", "x")

		assert.ErrorIs(t, errWrongSecret, credential.ErrInvalidCredentials)
		assert.ErrorIs(t, errUnknownUser, credential.ErrInvalidCredentials)
		assert.Equal(t, errWrongSecret, errUnknownUser)
		assert.Equal(t, 0, store.Len())
	})

	t.Run("concurrent logins create independent sessions", func(t *testing.T) {
		t.Parallel()

		authority, store := setupAuthority(t)

		token1, err := authority.Login(context.Background(), "alice", "S3cret!")
		require.NoError(t, err)
		token2, err := authority.Login(context.Background(), "alice", "S3cret!")
		require.NoError(t, err)

		assert.NotEqual(t, token1, token2)
		assert.Equal(t, 2, store.Len())
	})

	t.Run("hashed representation never equals plaintext secret", func(t *testing.T) {
		t.Parallel()

		authority, store := setupAuthority(t)

		token, err := authority.Login(context.Background(), "alice", "S3cret!")
		require.NoError(t, err)

		parts := strings.Split(token, ".")
		sess, err := store.Get(context.Background(), parts[0])
		require.NoError(t, err)
		assert.NotEqual(t, []byte(parts[1]), sess.TokenHash)
	})
}

func TestAuthority_Verify(t *testing.T) {
	t.Parallel()

	t.Run("verifies freshly minted token", func(t *testing.T) {
		t.Parallel()

		authority, _ := setupAuthority(t)

		token, err := authority.Login(context.Background(), "alice", "S3cret!")
		require.NoError(t, err)

		ok, err := authority.Verify(context.Background(), token)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("rejects tampered secret segment", func(t *testing.T) {
		t.Parallel()

		authority, _ := setupAuthority(t)

		token, err := authority.Login(context.Background(), "alice", "S3cret!")
		require.NoError(t, err)

		parts := strings.Split(token, ".")
		tampered := parts[0] + "." + strings.Repeat("0", 64)

		ok, err := authority.Verify(context.Background(), tampered)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("rejects malformed composites", func(t *testing.T) {
		t.Parallel()

		authority, _ := setupAuthority(t)

		for _, token := range []string{"", "nodot", "a.b.c", ".x", "x."} {
			ok, err := authority.Verify(context.Background(), token)
			require.NoError(t, err)
			assert.False(t, ok, "token %q", token)
		}
	})

	t.Run("rejects unknown session id", func(t *testing.T) {
		t.Parallel()

		authority, _ := setupAuthority(t)

		ok, err := authority.Verify(context.Background(), "ffffffff."+strings.Repeat("a", 64))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("plaintext mode verifies with constant-time compare", func(t *testing.T) {
		t.Parallel()

		authority, store := setupAuthority(t, session.WithTokenHashing(false))

		token, err := authority.Login(context.Background(), "alice", "S3cret!")
		require.NoError(t, err)

		parts := strings.Split(token, ".")
		sess, err := store.Get(context.Background(), parts[0])
		require.NoError(t, err)
		// Plaintext mode stores the raw secret bytes.
		assert.Equal(t, []byte(parts[1]), sess.TokenHash)

		ok, err := authority.Verify(context.Background(), token)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = authority.Verify(context.Background(), parts[0]+"."+strings.Repeat("0", 64))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("treats expired session as not found", func(t *testing.T) {
		t.Parallel()

		authority, _ := setupAuthority(t, session.WithTTL(time.Nanosecond))

		token, err := authority.Login(context.Background(), "alice", "S3cret!")
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)

		ok, err := authority.Verify(context.Background(), token)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestAuthority_Logout(t *testing.T) {
	t.Parallel()

	t.Run("revokes session and is idempotent", func(t *testing.T) {
		t.Parallel()

		authority, _ := setupAuthority(t)

		token, err := authority.Login(context.Background(), "alice", "S3cret!")
		require.NoError(t, err)

		sessionID := strings.Split(token, ".")[0]

		require.NoError(t, authority.Logout(context.Background(), sessionID))

		ok, err := authority.Verify(context.Background(), token)
		require.NoError(t, err)
		assert.False(t, ok)

		// Deleting a non-existent session is not an error.
		assert.NoError(t, authority.Logout(context.Background(), sessionID))
	})
}

func TestAuthority_ResolveOwner(t *testing.T) {
	t.Parallel()

	t.Run("resolves owning identity", func(t *testing.T) {
		t.Parallel()

		creds := credential.NewService(credential.NewMemoryStore(), credential.WithBcryptCost(bcrypt.MinCost))
		identity, err := creds.Register(context.Background(), "alice", "S3cret!")
		require.NoError(t, err)

		authority := session.New(creds, session.NewMemoryStore(), session.WithTokenHashCost(bcrypt.MinCost))

		token, err := authority.Login(context.Background(), "alice", "S3cret!")
		require.NoError(t, err)

		sessionID := strings.Split(token, ".")[0]
		ownerID, err := authority.ResolveOwner(context.Background(), sessionID)
		require.NoError(t, err)
		assert.Equal(t, identity.ID, ownerID)
	})

	t.Run("unknown session", func(t *testing.T) {
		t.Parallel()

		authority, _ := setupAuthority(t)

		ownerID, err := authority.ResolveOwner(context.Background(), "ffffffff")
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
		assert.Equal(t, uuid.Nil, ownerID)
	})
}

func TestAuthority_Preconditions(t *testing.T) {
	t.Parallel()

	t.Run("missing store", func(t *testing.T) {
		t.Parallel()

		creds := credential.NewService(credential.NewMemoryStore())
		authority := session.New(creds, nil)

		_, err := authority.Login(context.Background(), "alice", "S3cret!")
		assert.ErrorIs(t, err, session.ErrNoStore)

		_, err = authority.Verify(context.Background(), "a.b")
		assert.ErrorIs(t, err, session.ErrNoStore)

		assert.ErrorIs(t, authority.Logout(context.Background(), "a"), session.ErrNoStore)
	})

	t.Run("missing credential service", func(t *testing.T) {
		t.Parallel()

		authority := session.New(nil, session.NewMemoryStore())

		_, err := authority.Login(context.Background(), "alice", "S3cret!")
		assert.ErrorIs(t, err, session.ErrNoCredentials)
	})
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	creds := credential.NewService(credential.NewMemoryStore(), credential.WithBcryptCost(bcrypt.MinCost))
	_, err := creds.Register(context.Background(), "alice", "S3cret!")
	require.NoError(t, err)

	cfg := session.DefaultConfig()
	cfg.TokenHashCost = bcrypt.MinCost

	store := session.NewMemoryStore()
	authority := session.NewFromConfig(creds, store, cfg)

	token, err := authority.Login(context.Background(), "alice", "S3cret!")
	require.NoError(t, err)

	ok, err := authority.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.True(t, ok)
}
