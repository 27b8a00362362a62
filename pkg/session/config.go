package session

import (
	"time"

	"github.com/dmitrymomot/authkit/pkg/credential"
)

// Config holds session authority configuration.
type Config struct {
	// TokenHashing enables hashing of token secrets at rest (default: true)
	TokenHashing bool `env:"SESSION_TOKEN_HASHING" envDefault:"true"`

	// TokenHashCost is the bcrypt cost for token-at-rest hashing
	TokenHashCost int `env:"SESSION_TOKEN_HASH_COST" envDefault:"6"`

	// TTL is the optional session lifetime; 0 means sessions live until
	// explicit logout
	TTL time.Duration `env:"SESSION_TTL" envDefault:"0"`
}

// DefaultConfig returns the default session configuration.
func DefaultConfig() Config {
	return Config{
		TokenHashing:  true,
		TokenHashCost: DefaultTokenHashCost,
	}
}

// NewFromConfig creates an Authority from the provided Config.
func NewFromConfig(credentials credential.Service, store Store, cfg Config, opts ...Option) *Authority {
	configOpts := []Option{
		WithTokenHashing(cfg.TokenHashing),
		WithTokenHashCost(cfg.TokenHashCost),
		WithTTL(cfg.TTL),
	}

	configOpts = append(configOpts, opts...)

	return New(credentials, store, configOpts...)
}
