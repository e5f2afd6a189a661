package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/craftdeck/craftdeck/internal/api/apierr"
	"github.com/craftdeck/craftdeck/internal/model"
	"github.com/craftdeck/craftdeck/internal/services/auth"
)

type contextKey string

const principalContextKey contextKey = "principal"

// Auth creates authentication middleware: any valid credential (including
// the root secret) yields a principal in the request context. Absence of a
// credential is a plain 403 like any other auth failure.
func Auth(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, err := authService.Authenticate(r.Context(), extractKey(r), r.RemoteAddr)
			if err != nil {
				apierr.WriteError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), principalContextKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RootAuth creates middleware that accepts only the root secret. It never
// touches the credential store, so it gates credential management and audit
// queries even when the store is unavailable.
func RootAuth(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, err := authService.RequireRoot(extractKey(r), r.RemoteAddr)
			if err != nil {
				apierr.WriteError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), principalContextKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractKey extracts the presented credential from the request
func extractKey(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// GetPrincipal returns the authenticated principal from the request context
func GetPrincipal(ctx context.Context) *model.Principal {
	principal, _ := ctx.Value(principalContextKey).(*model.Principal)
	return principal
}

// MustGetPrincipal returns the authenticated principal or panics
func MustGetPrincipal(ctx context.Context) *model.Principal {
	principal := GetPrincipal(ctx)
	if principal == nil {
		panic("no principal in context - auth middleware not applied?")
	}
	return principal
}
