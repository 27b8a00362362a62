package credential

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/authkit/pkg/pg"
)

// DB is the subset of pgxpool.Pool used by the Postgres store. Accepting the
// interface lets callers pass a pool or a transaction.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStore implements Store backed by PostgreSQL. Username uniqueness is
// enforced by a unique index on identities.username; constraint violations
// are mapped to ErrUsernameTaken.
type PostgresStore struct {
	db DB
}

// NewPostgresStore creates a new Postgres-backed identity store.
func NewPostgresStore(db DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) CreateIdentity(ctx context.Context, identity *Identity, secretHash []byte) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO identities (id, username, secret_hash, created_at) VALUES ($1, $2, $3, $4)`,
		identity.ID, identity.Username, secretHash, identity.CreatedAt,
	)
	if err != nil {
		if pg.IsDuplicateKeyError(err) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("insert identity: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetIdentityByUsername(ctx context.Context, username string) (*Identity, error) {
	var identity Identity
	err := s.db.QueryRow(ctx,
		`SELECT id, username, created_at FROM identities WHERE username = $1`,
		username,
	).Scan(&identity.ID, &identity.Username, &identity.CreatedAt)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrIdentityNotFound
		}
		return nil, fmt.Errorf("select identity by username: %w", err)
	}
	return &identity, nil
}

func (s *PostgresStore) GetIdentityByID(ctx context.Context, id uuid.UUID) (*Identity, error) {
	var identity Identity
	err := s.db.QueryRow(ctx,
		`SELECT id, username, created_at FROM identities WHERE id = $1`,
		id,
	).Scan(&identity.ID, &identity.Username, &identity.CreatedAt)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrIdentityNotFound
		}
		return nil, fmt.Errorf("select identity by id: %w", err)
	}
	return &identity, nil
}

func (s *PostgresStore) GetSecretHash(ctx context.Context, id uuid.UUID) ([]byte, error) {
	var hash []byte
	err := s.db.QueryRow(ctx,
		`SELECT secret_hash FROM identities WHERE id = $1`,
		id,
	).Scan(&hash)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrIdentityNotFound
		}
		return nil, fmt.Errorf("select secret hash: %w", err)
	}
	return hash, nil
}
