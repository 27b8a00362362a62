package session

import (
	"net/http"
	"strings"
)

// Transport defines how composite tokens are transmitted between client and
// server.
type Transport interface {
	// GetToken extracts the composite token from the request
	GetToken(r *http.Request) (string, error)

	// SetToken sends the composite token in the response
	SetToken(w http.ResponseWriter, token string) error

	// ClearToken removes the token from the response
	ClearToken(w http.ResponseWriter) error
}

// HeaderTransport implements Transport using a conventional "scheme token"
// HTTP header, "Authorization: Bearer <token>" by default.
type HeaderTransport struct {
	headerName string
	prefix     string
}

// HeaderOption is a functional option for HeaderTransport.
type HeaderOption func(*HeaderTransport)

// WithHeaderPrefix sets a custom scheme prefix for the header value.
func WithHeaderPrefix(prefix string) HeaderOption {
	return func(t *HeaderTransport) {
		t.prefix = prefix
	}
}

// NewHeaderTransport creates a new header-based transport.
func NewHeaderTransport(headerName string, opts ...HeaderOption) *HeaderTransport {
	t := &HeaderTransport{
		headerName: headerName,
		prefix:     "Bearer ",
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// GetToken extracts the composite token from the header.
func (t *HeaderTransport) GetToken(r *http.Request) (string, error) {
	value := r.Header.Get(t.headerName)
	if value == "" {
		return "", ErrSessionNotFound
	}

	if t.prefix != "" {
		if !strings.HasPrefix(value, t.prefix) {
			return "", ErrInvalidToken
		}
		value = strings.TrimPrefix(value, t.prefix)
	}

	if value == "" {
		return "", ErrSessionNotFound
	}

	return value, nil
}

// SetToken sends the composite token in the response header.
func (t *HeaderTransport) SetToken(w http.ResponseWriter, token string) error {
	value := token
	if t.prefix != "" {
		value = t.prefix + token
	}
	w.Header().Set(t.headerName, value)
	return nil
}

// ClearToken removes the token header from the response.
func (t *HeaderTransport) ClearToken(w http.ResponseWriter) error {
	w.Header().Del(t.headerName)
	return nil
}
