package credential

import (
	"time"

	"github.com/google/uuid"
)

// Identity represents a registered user account. The secret hash is never
// part of the public struct; it travels separately through the Store so it
// cannot leak via logging or serialization of an Identity.
type Identity struct {
	ID        uuid.UUID
	Username  string
	CreatedAt time.Time
}
