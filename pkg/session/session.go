package session

import (
	"time"

	"github.com/google/uuid"
)

// Session is the server-side record of one authenticated login. TokenHash
// holds the at-rest representation of the token secret: a bcrypt hash when
// token hashing is enabled, the raw secret bytes otherwise. It is never
// returned to callers and never logged.
type Session struct {
	ID        string    `json:"id"`
	TokenHash []byte    `json:"token_hash"`
	OwnerID   uuid.UUID `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`

	// ExpiresAt is zero when sessions live until explicit logout.
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}

// IsExpired returns true if the session carries an expiry and it has passed.
// Sessions without an expiry never expire.
func (s *Session) IsExpired() bool {
	return s != nil && !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}
