package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/authkit/pkg/session"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := session.DefaultConfig()

	assert.True(t, cfg.TokenHashing)
	assert.Equal(t, session.DefaultTokenHashCost, cfg.TokenHashCost)
	assert.Equal(t, time.Duration(0), cfg.TTL)
}
