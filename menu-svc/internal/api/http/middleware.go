package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"qrmenu-platform/menu-svc/internal/service"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin         = "admin"
	RoleServiceRole   = "service_role"
	RoleAuthenticated = "authenticated"
)

type ctxKey string

const roleKey ctxKey = "role"

// Authenticator checks HS256 bearer tokens signed with the shared admin secret.
type Authenticator struct {
	secret []byte
}

// NewAuthenticator returns nil for an empty secret, which disables the checks.
func NewAuthenticator(secret string) *Authenticator {
	if secret == "" {
		return nil
	}
	return &Authenticator{secret: []byte(secret)}
}

func (a *Authenticator) Require(roles ...string) func(http.HandlerFunc) http.Handler {
	return func(next http.HandlerFunc) http.Handler {
		if a == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, err := a.roleFromRequest(r)
			if err != nil {
				writeError(w, r, err)
				return
			}
			if !containsRole(roles, role) {
				writeJSON(w, http.StatusForbidden, map[string]string{"error": "forbidden"})
				return
			}
			next(w, r.WithContext(context.WithValue(r.Context(), roleKey, role)))
		})
	}
}

func (a *Authenticator) roleFromRequest(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", fmt.Errorf("%w: missing bearer token", service.ErrUnauthorized)
	}
	tokenStr := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("%w: invalid token", service.ErrUnauthorized)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("%w: invalid claims", service.ErrUnauthorized)
	}
	// Supabase tokens carry the platform role in app_metadata.
	if meta, ok := claims["app_metadata"].(map[string]interface{}); ok {
		if role, ok := meta["role"].(string); ok && role != "" {
			return role, nil
		}
	}
	role, _ := claims["role"].(string)
	return role, nil
}

func RoleFromContext(ctx context.Context) string {
	role, _ := ctx.Value(roleKey).(string)
	return role
}

func containsRole(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-XSS-Protection", "1; mode=block")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		next.ServeHTTP(w, r)
	})
}
