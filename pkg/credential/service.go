package credential

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/authkit/pkg/logger"
)

// Service provides identity registration and credential verification.
type Service interface {
	// Register creates a new identity with an irreversibly hashed secret.
	// Returns ErrUsernameTaken if the username is already registered.
	Register(ctx context.Context, username, secret string) (*Identity, error)

	// Authenticate verifies a username/secret pair and returns the matching
	// identity. Returns generic ErrInvalidCredentials for any verification
	// failure to prevent user enumeration attacks.
	Authenticate(ctx context.Context, username, secret string) (*Identity, error)

	// GetIdentity returns the public attributes of an identity by ID.
	GetIdentity(ctx context.Context, id uuid.UUID) (*Identity, error)
}

// service implements Service on top of a Store.
type service struct {
	storage    Store
	bcryptCost int
	logger     *slog.Logger
}

// Option is a functional option for the credential service.
type Option func(*service)

// WithLogger sets a custom logger for the service.
func WithLogger(log *slog.Logger) Option {
	return func(s *service) {
		s.logger = log
	}
}

// WithBcryptCost sets the bcrypt cost for secret hashing. The cost is a
// service-level work factor, not tunable per call.
func WithBcryptCost(cost int) Option {
	return func(s *service) {
		s.bcryptCost = cost
	}
}

// NewService creates a new credential service.
func NewService(storage Store, opts ...Option) Service {
	s := &service{
		storage:    storage,
		bcryptCost: bcrypt.DefaultCost,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Register creates a new identity with a bcrypt-hashed secret.
func (s *service) Register(ctx context.Context, username, secret string) (*Identity, error) {
	if s.storage == nil {
		return nil, ErrNoStore
	}
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if secret == "" {
		return nil, ErrSecretRequired
	}

	// Advisory fast path. The store's unique constraint is the source of
	// truth for concurrent registrations with the same username.
	_, err := s.storage.GetIdentityByUsername(ctx, username)
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, ErrIdentityNotFound) {
		return nil, fmt.Errorf("failed to check existing identity: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash secret: %w", err)
	}

	identity := &Identity{
		ID:        uuid.New(),
		Username:  username,
		CreatedAt: time.Now(),
	}

	if err := s.storage.CreateIdentity(ctx, identity, hash); err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create identity: %w", err)
	}

	s.logger.InfoContext(ctx, "identity registered",
		logger.UserID(identity.ID.String()),
		logger.Component("credential"),
	)

	return identity, nil
}

// Authenticate verifies the username/secret pair against the stored hash.
func (s *service) Authenticate(ctx context.Context, username, secret string) (*Identity, error) {
	if s.storage == nil {
		return nil, ErrNoStore
	}
	if username == "" || secret == "" {
		return nil, ErrInvalidCredentials
	}

	identity, err := s.storage.GetIdentityByUsername(ctx, username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	hash, err := s.storage.GetSecretHash(ctx, identity.ID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(hash, []byte(secret)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return identity, nil
}

// GetIdentity returns the identity with the given ID.
func (s *service) GetIdentity(ctx context.Context, id uuid.UUID) (*Identity, error) {
	if s.storage == nil {
		return nil, ErrNoStore
	}

	identity, err := s.storage.GetIdentityByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrIdentityNotFound) {
			return nil, ErrIdentityNotFound
		}
		return nil, fmt.Errorf("failed to get identity: %w", err)
	}
	return identity, nil
}
