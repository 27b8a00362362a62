package session

import "context"

// Store defines the interface for session persistence.
type Store interface {
	// Create stores a new session. Returns ErrSessionExists if a session
	// with the same ID already exists.
	Create(ctx context.Context, session *Session) error

	// Get retrieves a session by its ID, or ErrSessionNotFound.
	Get(ctx context.Context, sessionID string) (*Session, error)

	// Delete removes a session by its ID. Deleting a non-existent session
	// is not an error.
	Delete(ctx context.Context, sessionID string) error
}
