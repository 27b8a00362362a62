package credential

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore implements Store using in-memory storage. It enforces username
// uniqueness under a single lock, making it a faithful substitute for a
// relational store in tests and embedded setups.
type MemoryStore struct {
	mu         sync.RWMutex
	byID       map[uuid.UUID]*Identity
	byUsername map[string]uuid.UUID
	hashes     map[uuid.UUID][]byte
}

// NewMemoryStore creates a new in-memory identity store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:       make(map[uuid.UUID]*Identity),
		byUsername: make(map[string]uuid.UUID),
		hashes:     make(map[uuid.UUID][]byte),
	}
}

// CreateIdentity inserts a new identity with its secret hash.
func (m *MemoryStore) CreateIdentity(ctx context.Context, identity *Identity, secretHash []byte) error {
	if identity == nil || identity.Username == "" {
		return ErrUsernameRequired
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byUsername[identity.Username]; exists {
		return ErrUsernameTaken
	}

	identityCopy := *identity
	m.byID[identity.ID] = &identityCopy
	m.byUsername[identity.Username] = identity.ID

	hashCopy := make([]byte, len(secretHash))
	copy(hashCopy, secretHash)
	m.hashes[identity.ID] = hashCopy

	return nil
}

// GetIdentityByUsername returns the identity with the given username.
func (m *MemoryStore) GetIdentityByUsername(ctx context.Context, username string) (*Identity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, exists := m.byUsername[username]
	if !exists {
		return nil, ErrIdentityNotFound
	}

	identityCopy := *m.byID[id]
	return &identityCopy, nil
}

// GetIdentityByID returns the identity with the given ID.
func (m *MemoryStore) GetIdentityByID(ctx context.Context, id uuid.UUID) (*Identity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	identity, exists := m.byID[id]
	if !exists {
		return nil, ErrIdentityNotFound
	}

	identityCopy := *identity
	return &identityCopy, nil
}

// GetSecretHash returns the stored secret hash for the identity.
func (m *MemoryStore) GetSecretHash(ctx context.Context, id uuid.UUID) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	hash, exists := m.hashes[id]
	if !exists {
		return nil, ErrIdentityNotFound
	}

	hashCopy := make([]byte, len(hash))
	copy(hashCopy, hash)
	return hashCopy, nil
}

// Count returns the number of stored identities.
func (m *MemoryStore) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.byID)
}
