package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezycar/booking-api/internal/auth"
	"github.com/ezycar/booking-api/internal/models"
)

func protectedEcho(t *testing.T, tm *auth.TokenManager) http.Handler {
	t.Helper()
	m := NewAuthMiddleware(tm)
	return m.Protect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := PrincipalFrom(r.Context())
		require.True(t, ok)
		_, _ = w.Write([]byte(p.ID + ":" + p.Role))
	}))
}

func TestProtect_MissingToken(t *testing.T) {
	tm := auth.NewTokenManager("secret", "booking-api", time.Hour)
	rec := httptest.NewRecorder()

	protectedEcho(t, tm).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Not authorized to access this route")
}

func TestProtect_BearerHeader(t *testing.T) {
	tm := auth.NewTokenManager("secret", "booking-api", time.Hour)
	tok, _, err := tm.Generate("u1", "admin")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()

	protectedEcho(t, tm).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1:admin", rec.Body.String())
}

func TestProtect_CookieFallback(t *testing.T) {
	tm := auth.NewTokenManager("secret", "booking-api", time.Hour)
	tok, _, err := tm.Generate("u2", "user")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: tok})
	rec := httptest.NewRecorder()

	protectedEcho(t, tm).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u2:user", rec.Body.String())
}

func TestProtect_GarbageToken(t *testing.T) {
	tm := auth.NewTokenManager("secret", "booking-api", time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()

	protectedEcho(t, tm).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthorize(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	h := Authorize(models.RoleAdmin)(next)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req = req.WithContext(withPrincipal(req.Context(), models.Principal{ID: "u1", Role: models.RoleUser}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/", nil)
	req = req.WithContext(withPrincipal(req.Context(), models.Principal{ID: "a1", Role: models.RoleAdmin}))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
