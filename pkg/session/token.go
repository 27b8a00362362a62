package session

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
)

// Composite token wire format: "<sessionID>.<secret>", a single ASCII string
// with exactly two non-empty hex segments. The store only ever holds the
// session ID and the secret's at-rest representation, never the composite.
const (
	tokenSeparator = "."

	// sessionIDBytes yields an 8-char hex session ID, a public lookup key.
	sessionIDBytes = 4

	// secretBytes yields a 64-char hex secret, the actual bearer credential.
	secretBytes = 32
)

// newSessionID generates a random fixed-width hex session identifier.
func newSessionID() (string, error) {
	return randomHex(sessionIDBytes)
}

// newSecret generates the random token secret.
func newSecret() (string, error) {
	return randomHex(secretBytes)
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return hex.EncodeToString(b), nil
}

// composeToken joins a session ID and secret into the composite bearer token.
func composeToken(sessionID, secret string) string {
	return sessionID + tokenSeparator + secret
}

// parseToken splits a composite token into its session ID and secret.
// Returns ErrInvalidToken unless the token has exactly two non-empty
// segments.
func parseToken(token string) (sessionID, secret string, err error) {
	parts := strings.Split(token, tokenSeparator)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", ErrInvalidToken
	}
	return parts[0], parts[1], nil
}
