package credential

import (
	"context"

	"github.com/google/uuid"
)

// Store defines the persistence operations required for identity management.
// Implementations must enforce username uniqueness at the storage layer and
// return ErrUsernameTaken on violation; the registrar's pre-check is advisory
// only and cannot win the race on its own.
type Store interface {
	// CreateIdentity inserts a new identity together with its secret hash.
	CreateIdentity(ctx context.Context, identity *Identity, secretHash []byte) error

	// GetIdentityByUsername returns the identity with the given username,
	// or ErrIdentityNotFound.
	GetIdentityByUsername(ctx context.Context, username string) (*Identity, error)

	// GetIdentityByID returns the identity with the given ID,
	// or ErrIdentityNotFound.
	GetIdentityByID(ctx context.Context, id uuid.UUID) (*Identity, error)

	// GetSecretHash returns the stored secret hash for the identity,
	// or ErrIdentityNotFound.
	GetSecretHash(ctx context.Context, id uuid.UUID) ([]byte, error)
}
