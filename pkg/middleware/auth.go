package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Kodanda10/Kharch-Baant-sub000/internal/auth"
	"github.com/Kodanda10/Kharch-Baant-sub000/pkg/response"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// PersonIDKey is the context key for the authenticated person ID
	PersonIDKey ContextKey = "person_id"
	// EmailKey is the context key for the authenticated person's email
	EmailKey ContextKey = "email"
)

// RequireAuth validates the Bearer token and puts the person ID and email
// on the request context. Requests without a valid token get a 401.
func RequireAuth(jwt *auth.JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				response.Unauthorized(w, "Authorization header required")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				response.Unauthorized(w, "Invalid authorization header format")
				return
			}

			claims, err := jwt.Validate(parts[1])
			if err != nil {
				response.Unauthorized(w, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), PersonIDKey, claims.PersonID)
			ctx = context.WithValue(ctx, EmailKey, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetPersonID extracts the authenticated person ID from the request context
func GetPersonID(ctx context.Context) (string, bool) {
	personID, ok := ctx.Value(PersonIDKey).(string)
	return personID, ok && personID != ""
}
