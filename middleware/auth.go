package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/yoapunto/yoapunto-api/models"
	"github.com/yoapunto/yoapunto-api/services"
)

type contextKey string

const accountContextKey contextKey = "account"

// RequireAccount rejects requests without a valid bearer token resolving
// to an existing account. Expired, malformed and unknown-subject tokens
// all produce the same 401.
func RequireAccount(authService services.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				unauthorized(w)
				return
			}

			account, err := authService.ResolveAccount(r.Context(), token)
			if err != nil {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), accountContextKey, account)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAccount resolves the bearer token if one is present and valid;
// the request proceeds either way.
func OptionalAccount(authService services.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token, ok := bearerToken(r); ok {
				if account, err := authService.ResolveAccount(r.Context(), token); err == nil {
					ctx := context.WithValue(r.Context(), accountContextKey, account)
					r = r.WithContext(ctx)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// AccountFromContext returns the authenticated account, if any.
func AccountFromContext(ctx context.Context) (*models.Account, bool) {
	account, ok := ctx.Value(accountContextKey).(*models.Account)
	return account, ok
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"could not validate credentials"}` + "\n"))
}
