package session

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/authkit/pkg/credential"
	"github.com/dmitrymomot/authkit/pkg/logger"
)

// Authority mints, verifies and revokes session tokens. It holds no mutable
// state of its own; every operation is a request-scoped call against the
// injected credential service and session store.
type Authority struct {
	credentials   credential.Service
	store         Store
	transport     Transport
	hashTokens    bool
	tokenHashCost int
	ttl           time.Duration
	logger        *slog.Logger
}

// New creates a session authority backed by the given credential service and
// session store. Token hashing at rest is enabled by default.
func New(credentials credential.Service, store Store, opts ...Option) *Authority {
	a := &Authority{
		credentials:   credentials,
		store:         store,
		transport:     NewHeaderTransport("Authorization"),
		hashTokens:    true,
		tokenHashCost: DefaultTokenHashCost,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Login authenticates a username/secret pair and mints a new session. The
// returned composite token is the only point at which the plaintext token
// exists outside the caller's hands. All authentication failures collapse to
// credential.ErrInvalidCredentials.
func (a *Authority) Login(ctx context.Context, username, secret string) (string, error) {
	if a.credentials == nil {
		return "", ErrNoCredentials
	}
	if a.store == nil {
		return "", ErrNoStore
	}

	identity, err := a.credentials.Authenticate(ctx, username, secret)
	if err != nil {
		return "", credential.ErrInvalidCredentials
	}

	sessionID, err := newSessionID()
	if err != nil {
		return "", err
	}
	tokenSecret, err := newSecret()
	if err != nil {
		return "", err
	}

	representation, err := a.tokenRepresentation(tokenSecret)
	if err != nil {
		return "", err
	}

	sess := &Session{
		ID:        sessionID,
		TokenHash: representation,
		OwnerID:   identity.ID,
		CreatedAt: time.Now(),
	}
	if a.ttl > 0 {
		sess.ExpiresAt = sess.CreatedAt.Add(a.ttl)
	}

	if err := a.store.Create(ctx, sess); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	a.logger.InfoContext(ctx, "session created",
		logger.SessionID(sessionID),
		logger.UserID(identity.ID.String()),
		logger.Component("session"),
	)

	return composeToken(sessionID, tokenSecret), nil
}

// Verify checks a presented composite token against the stored session
// representation. It returns a boolean only and never reveals which stage
// failed. A non-nil error indicates an infrastructure fault, not a
// verification outcome.
func (a *Authority) Verify(ctx context.Context, compositeToken string) (bool, error) {
	if a.store == nil {
		return false, ErrNoStore
	}

	sessionID, secret, err := parseToken(compositeToken)
	if err != nil {
		return false, nil
	}

	sess, err := a.store.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get session: %w", err)
	}

	// Expired sessions are indistinguishable from revoked ones.
	if sess.IsExpired() {
		return false, nil
	}

	if a.hashTokens {
		return bcrypt.CompareHashAndPassword(sess.TokenHash, []byte(secret)) == nil, nil
	}

	// Plaintext mode still requires a constant-time comparison to avoid
	// leaking matching-prefix length through timing.
	return subtle.ConstantTimeCompare(sess.TokenHash, []byte(secret)) == 1, nil
}

// Logout revokes the session with the given ID. Revoking a non-existent
// session is not an error.
func (a *Authority) Logout(ctx context.Context, sessionID string) error {
	if a.store == nil {
		return ErrNoStore
	}

	if err := a.store.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	a.logger.InfoContext(ctx, "session revoked",
		logger.SessionID(sessionID),
		logger.Component("session"),
	)

	return nil
}

// ResolveOwner returns the ID of the identity owning the session. It is meant
// for recovering the owner after a token has already been verified; it does
// not verify the token secret itself.
func (a *Authority) ResolveOwner(ctx context.Context, sessionID string) (uuid.UUID, error) {
	if a.store == nil {
		return uuid.Nil, ErrNoStore
	}

	sess, err := a.store.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return uuid.Nil, ErrSessionNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to get session: %w", err)
	}

	if sess.IsExpired() {
		return uuid.Nil, ErrSessionNotFound
	}

	return sess.OwnerID, nil
}

// tokenRepresentation computes the at-rest form of the token secret.
func (a *Authority) tokenRepresentation(secret string) ([]byte, error) {
	if !a.hashTokens {
		return []byte(secret), nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), a.tokenHashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash token: %w", err)
	}
	return hash, nil
}
