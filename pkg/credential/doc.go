// Package credential provides identity registration and password-based
// credential verification.
//
// Identities are stored with bcrypt-hashed secrets; the plaintext secret never
// leaves the registration or authentication call, and the hash never leaves
// the Store. All verification failures collapse to ErrInvalidCredentials so a
// caller cannot distinguish an unknown username from a wrong secret.
//
// Basic usage:
//
//	store := credential.NewMemoryStore()
//	svc := credential.NewService(store)
//
//	identity, err := svc.Register(ctx, "alice", "S3cret!")
//	if errors.Is(err, credential.ErrUsernameTaken) {
//		// show "username taken" to the user
//	}
//
//	identity, err = svc.Authenticate(ctx, "alice", "S3cret!")
//	if errors.Is(err, credential.ErrInvalidCredentials) {
//		// generic login failure, no detail
//	}
//
// For production use, back the service with the Postgres store:
//
//	pool, err := pg.Connect(ctx, pgCfg)
//	svc := credential.NewService(credential.NewPostgresStore(pool),
//		credential.WithBcryptCost(12),
//	)
//
// The registrar performs an advisory existence check before inserting, but
// the store's unique constraint on username is the source of truth for
// concurrent registrations.
package credential
