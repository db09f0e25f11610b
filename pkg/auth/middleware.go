package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/GlebRadaev/spintracker/pkg/utils"
)

type ContextKey string

const UserIDKey ContextKey = "userID"

type TokenValidator interface {
	ValidateToken(tokenString string) (*Claims, error)
}

// Middleware rejects requests without a valid bearer token and stores the
// caller's id in the request context under UserIDKey.
func Middleware(tokens TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthenticated")
				return
			}

			claims, err := tokens.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthenticated")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func UserIDFromContext(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(UserIDKey).(int)
	return userID, ok
}
