package session

import (
	"net/http"

	"github.com/dmitrymomot/authkit/pkg/logger"
)

// RequireAuth is a middleware that rejects requests without a valid bearer
// token. On success it resolves the owning identity and attaches a User to
// the request context. Every failure, including unexpected internal faults,
// collapses to a generic 401 with no distinguishing detail.
func (a *Authority) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := a.resolveUser(r)
		if !ok {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

// Middleware attaches a User to the request context when a valid bearer token
// is present, and passes the request through unchanged otherwise.
func (a *Authority) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user, ok := a.resolveUser(r); ok {
			r = r.WithContext(WithUser(r.Context(), user))
		}
		next.ServeHTTP(w, r)
	})
}

// resolveUser runs the full verification sequence: extract token, verify it,
// resolve the owner, fetch the identity's public attributes. It fails closed:
// any error or panic yields (zero, false).
func (a *Authority) resolveUser(r *http.Request) (user User, ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			a.logger.ErrorContext(r.Context(), "panic during token verification",
				logger.Component("session"),
			)
			user, ok = User{}, false
		}
	}()

	if a.credentials == nil || a.store == nil || a.transport == nil {
		return User{}, false
	}

	token, err := a.transport.GetToken(r)
	if err != nil {
		return User{}, false
	}

	valid, err := a.Verify(r.Context(), token)
	if err != nil || !valid {
		return User{}, false
	}

	sessionID, _, err := parseToken(token)
	if err != nil {
		return User{}, false
	}

	ownerID, err := a.ResolveOwner(r.Context(), sessionID)
	if err != nil {
		return User{}, false
	}

	identity, err := a.credentials.GetIdentity(r.Context(), ownerID)
	if err != nil {
		return User{}, false
	}

	return User{
		ID:       identity.ID,
		Username: identity.Username,
		Token:    token,
	}, true
}
