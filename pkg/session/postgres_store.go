package session

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/authkit/pkg/pg"
)

// DB is the subset of pgxpool.Pool used by the Postgres store.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStore implements Store backed by PostgreSQL.
type PostgresStore struct {
	db DB
}

// NewPostgresStore creates a new Postgres-backed session store.
func NewPostgresStore(db DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, session *Session) error {
	if session == nil || session.ID == "" {
		return ErrInvalidSession
	}

	var expiresAt *time.Time
	if !session.ExpiresAt.IsZero() {
		expiresAt = &session.ExpiresAt
	}

	_, err := s.db.Exec(ctx,
		`INSERT INTO sessions (id, token_hash, owner_id, created_at, expires_at) VALUES ($1, $2, $3, $4, $5)`,
		session.ID, session.TokenHash, session.OwnerID, session.CreatedAt, expiresAt,
	)
	if err != nil {
		if pg.IsDuplicateKeyError(err) {
			return ErrSessionExists
		}
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, sessionID string) (*Session, error) {
	var (
		session   Session
		expiresAt *time.Time
	)
	err := s.db.QueryRow(ctx,
		`SELECT id, token_hash, owner_id, created_at, expires_at FROM sessions WHERE id = $1`,
		sessionID,
	).Scan(&session.ID, &session.TokenHash, &session.OwnerID, &session.CreatedAt, &expiresAt)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("select session: %w", err)
	}

	if expiresAt != nil {
		session.ExpiresAt = *expiresAt
	}

	return &session, nil
}

func (s *PostgresStore) Delete(ctx context.Context, sessionID string) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
