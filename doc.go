// Package authkit is a credential and session management kit for embedding an
// authentication layer inside a larger request-handling system.
//
// The kit is split into focused packages:
//
//   - pkg/credential — identity registration with bcrypt-hashed secrets and
//     enumeration-safe credential verification
//   - pkg/session — opaque two-part bearer tokens: minting at login,
//     verification per request, revocation at logout, plus an HTTP request
//     context adapter
//   - pkg/pg, pkg/redis — storage plumbing for the Postgres and Redis store
//     implementations
//   - pkg/config, pkg/logger — environment configuration and structured
//     logging helpers
//
// Minimal wiring:
//
//	creds := credential.NewService(credential.NewMemoryStore())
//	authority := session.New(creds, session.NewMemoryStore())
//
//	identity, err := creds.Register(ctx, "alice", "S3cret!")
//	token, err := authority.Login(ctx, "alice", "S3cret!")
//	ok, err := authority.Verify(ctx, token)
//
// Out of scope by design: multi-factor authentication, password reset flows,
// rate limiting, account lockout, and authorization logic.
package authkit
