package session

import "errors"

var (
	// ErrSessionNotFound indicates no session exists for the given ID
	ErrSessionNotFound = errors.New("session.not_found")

	// ErrSessionExists indicates a session ID collision on insert
	ErrSessionExists = errors.New("session.already_exists")

	// ErrInvalidSession indicates a structurally invalid session record
	ErrInvalidSession = errors.New("session.invalid")

	// ErrInvalidToken indicates a malformed composite token
	ErrInvalidToken = errors.New("session.invalid_token")

	// ErrTokenGeneration indicates secure random generation failed
	ErrTokenGeneration = errors.New("session.token_generation_failed")

	// ErrNoStore indicates no session store is configured
	ErrNoStore = errors.New("session.no_store")

	// ErrNoCredentials indicates no credential service is configured
	ErrNoCredentials = errors.New("session.no_credential_service")
)
