package credential_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/authkit/pkg/credential"
)

// MockStore is a mock implementation of credential.Store.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) CreateIdentity(ctx context.Context, identity *credential.Identity, secretHash []byte) error {
	args := m.Called(ctx, identity, secretHash)
	return args.Error(0)
}

func (m *MockStore) GetIdentityByUsername(ctx context.Context, username string) (*credential.Identity, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*credential.Identity), args.Error(1)
}

func (m *MockStore) GetIdentityByID(ctx context.Context, id uuid.UUID) (*credential.Identity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*credential.Identity), args.Error(1)
}

func (m *MockStore) GetSecretHash(ctx context.Context, id uuid.UUID) ([]byte, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
