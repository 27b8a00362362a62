package session

import (
	"log/slog"
	"time"
)

// DefaultTokenHashCost is the bcrypt cost used for token-at-rest hashing.
// Deliberately lighter than the password cost: tokens are high-entropy random
// values, so the hash only needs to slow down an attacker with a copy of the
// store, not resist dictionary attacks.
const DefaultTokenHashCost = 6

// Option is a functional option for configuring the Authority.
type Option func(*Authority)

// WithLogger sets a custom logger for the authority.
func WithLogger(log *slog.Logger) Option {
	return func(a *Authority) {
		a.logger = log
	}
}

// WithTokenHashing toggles hashing of token secrets at rest. Disabling it
// trades at-rest protection against store compromise for faster verification;
// comparison stays constant-time in both modes.
func WithTokenHashing(enabled bool) Option {
	return func(a *Authority) {
		a.hashTokens = enabled
	}
}

// WithTokenHashCost sets the bcrypt cost for token-at-rest hashing.
func WithTokenHashCost(cost int) Option {
	return func(a *Authority) {
		a.tokenHashCost = cost
	}
}

// WithTTL adds an expiry to newly minted sessions. Expired sessions are
// treated as not found by Verify and ResolveOwner. Zero disables expiry and
// sessions live until explicit logout.
func WithTTL(ttl time.Duration) Option {
	return func(a *Authority) {
		a.ttl = ttl
	}
}

// WithTransport sets the transport used by the middleware to extract bearer
// credentials from requests.
func WithTransport(transport Transport) Option {
	return func(a *Authority) {
		a.transport = transport
	}
}
