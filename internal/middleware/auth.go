package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/ezycar/booking-api/internal/api/httpx"
	"github.com/ezycar/booking-api/internal/auth"
	"github.com/ezycar/booking-api/internal/models"
)

type principalKey struct{}

// PrincipalFrom returns the authenticated identity set by Protect.
func PrincipalFrom(ctx context.Context) (models.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(models.Principal)
	return p, ok
}

func withPrincipal(ctx context.Context, p models.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

type AuthMiddleware struct {
	tm *auth.TokenManager
}

func NewAuthMiddleware(tm *auth.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tm: tm}
}

// Protect requires a valid bearer token (Authorization header, or the
// token cookie set at login) and attaches the principal to the context.
func (m *AuthMiddleware) Protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			httpx.Fail(w, http.StatusUnauthorized, "Not authorized to access this route")
			return
		}
		claims, err := m.tm.Parse(token)
		if err != nil {
			httpx.Fail(w, http.StatusUnauthorized, "Not authorized to access this route")
			return
		}
		p := models.Principal{ID: claims.UserID, Role: claims.Role}
		next.ServeHTTP(w, r.WithContext(withPrincipal(r.Context(), p)))
	})
}

// Authorize allows only the given roles. Must run after Protect.
func Authorize(roles ...string) func(http.Handler) http.Handler {
	allowed := map[string]struct{}{}
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := PrincipalFrom(r.Context())
			if !ok {
				httpx.Fail(w, http.StatusUnauthorized, "Not authorized to access this route")
				return
			}
			if _, ok := allowed[p.Role]; !ok {
				httpx.Fail(w, http.StatusForbidden, "User role "+p.Role+" is not authorized to access this route")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	ah := r.Header.Get("Authorization")
	if strings.HasPrefix(strings.ToLower(ah), "bearer ") {
		return strings.TrimSpace(ah[len("Bearer "):])
	}
	if c, err := r.Cookie("token"); err == nil {
		return c.Value
	}
	return ""
}
