package auth

import (
	"net/http"
	"strings"

	"github.com/GlebRadaev/deckelbot/pkg/utils"
)

// AdminMiddleware admits requests whose bearer token matches the bcrypt hash.
// An empty hash locks the admin routes entirely.
func AdminMiddleware(tokenHash string, hasher TokenHasher) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if tokenHash == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			if !hasher.Compare(tokenHash, token) {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
