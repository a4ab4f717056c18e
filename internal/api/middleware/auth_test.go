package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "test-api-token"

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware_ValidKey(t *testing.T) {
	am := NewAuthMiddleware(testToken)
	handler := am.Authenticate(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("api_key", testToken)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddleware_MissingKey(t *testing.T) {
	am := NewAuthMiddleware(testToken)
	handler := am.Authenticate(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body errorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "ApiKeyMissing", body.Type)
}

func TestAuthMiddleware_MismatchedKey(t *testing.T) {
	am := NewAuthMiddleware(testToken)
	handler := am.Authenticate(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("api_key", "wrong-token")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var body errorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "ApiKeyInvalid", body.Type)
}

func TestAuthMiddleware_EmptyHeaderValue(t *testing.T) {
	am := NewAuthMiddleware(testToken)
	handler := am.Authenticate(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("api_key", "")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthMiddleware_ErrorResponse_IsJSON(t *testing.T) {
	am := NewAuthMiddleware(testToken)
	handler := am.Authenticate(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
}

func TestNewAuthMiddleware(t *testing.T) {
	am := NewAuthMiddleware("a-token")
	require.NotNil(t, am)
	assert.Equal(t, "a-token", am.apiToken)
}
