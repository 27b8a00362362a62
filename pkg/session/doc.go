// Package session implements opaque bearer session tokens: minting at login,
// verification on each request, and revocation at logout.
//
// # Token design
//
// A session token is a two-segment composite "<sessionID>.<secret>". The
// session ID is a short random hex string used only as a lookup key; the
// secret is a longer random hex string that acts as the actual credential.
// The store holds the session ID together with an at-rest representation of
// the secret - a bcrypt hash when token hashing is enabled (the default), or
// the raw secret otherwise. The full composite exists outside the caller's
// hands exactly once, as the Login return value.
//
// Verification parses the composite, looks up the session by ID, and compares
// the presented secret against the stored representation. In hashing mode the
// comparison goes through bcrypt; in plaintext mode it uses
// crypto/subtle.ConstantTimeCompare so neither mode leaks timing information.
// Verify returns a boolean only and never reveals which stage failed.
//
// # Usage
//
//	creds := credential.NewService(credential.NewMemoryStore())
//	authority := session.New(creds, session.NewMemoryStore())
//
//	token, err := authority.Login(ctx, "alice", "S3cret!")
//	// token is "ab12cd34.<64 hex chars>", shown to the client once
//
//	ok, err := authority.Verify(ctx, token)
//
//	err = authority.Logout(ctx, "ab12cd34") // idempotent
//
// # HTTP integration
//
// The Authority doubles as a request context adapter. RequireAuth extracts a
// bearer credential from the Authorization header, verifies it, resolves the
// owning identity and attaches a User to the request context. Any failure in
// that sequence, including unexpected panics, collapses to a generic 401.
//
//	r := chi.NewRouter()
//	r.Group(func(r chi.Router) {
//		r.Use(authority.RequireAuth)
//		r.Get("/me", func(w http.ResponseWriter, r *http.Request) {
//			user := session.MustUserFromContext(r.Context())
//			// user.ID, user.Username, user.Token
//		})
//	})
//
// # Stores
//
// Three Store implementations ship with the package: an in-memory store for
// tests and embedded use, a Redis store (go-redis) and a Postgres store
// (pgx). Sessions have no expiry by default and live until explicit logout;
// WithTTL opts into expiry as a hardening measure.
package session
