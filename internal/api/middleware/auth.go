package middleware

import (
	"crypto/subtle"
	"net/http"
)

// AuthMiddleware validates the opaque api_key header against the configured
// api_token. There is no session, no claims, no expiry: per the external
// interface, authentication is a shared secret validated outside the core.
type AuthMiddleware struct {
	apiToken string
}

// NewAuthMiddleware creates an AuthMiddleware bound to the configured token.
func NewAuthMiddleware(apiToken string) *AuthMiddleware {
	return &AuthMiddleware{apiToken: apiToken}
}

// Authenticate returns an http.Handler middleware requiring a header named
// api_key equal to the configured token. A missing header is a 400; a
// mismatched value is a 401.
func (am *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get("api_key")
		if key == "" {
			writeError(w, http.StatusBadRequest, "ApiKeyMissing", "missing api_key header")
			return
		}

		if subtle.ConstantTimeCompare([]byte(key), []byte(am.apiToken)) != 1 {
			writeError(w, http.StatusUnauthorized, "ApiKeyInvalid", "invalid api_key")
			return
		}

		next.ServeHTTP(w, r)
	})
}
