package session_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/pkg/session"
)

func TestUserContext(t *testing.T) {
	t.Parallel()

	user := session.User{
		ID:       uuid.New(),
		Username: "alice",
		Token:    "ab12cd34.secret",
	}

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		ctx := session.WithUser(context.Background(), user)

		got, ok := session.UserFromContext(ctx)
		require.True(t, ok)
		assert.Equal(t, user, got)
	})

	t.Run("absent user", func(t *testing.T) {
		t.Parallel()

		_, ok := session.UserFromContext(context.Background())
		assert.False(t, ok)
	})

	t.Run("must panics when absent", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			session.MustUserFromContext(context.Background())
		})
	})

	t.Run("must returns user when present", func(t *testing.T) {
		t.Parallel()

		ctx := session.WithUser(context.Background(), user)
		assert.Equal(t, user, session.MustUserFromContext(ctx))
	})
}
