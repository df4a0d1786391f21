package middleware

import (
	"net/http"
	"strings"

	"restaurant-orders/internal/data/repository"
	"restaurant-orders/pkg/token"
	"restaurant-orders/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Context resolves the Authorization header into a current user and stores
// it on the request context. Requests without a header, or with one that
// is not Bearer-shaped, proceed anonymously; only a token that fails
// verification is rejected. A verified token whose user no longer exists
// is treated as anonymous rather than fatal.
func Context(users repository.UserRepository, codec *token.Codec, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := codec.Verify(parts[1])
			if err != nil {
				logger.Warn("Rejected request with invalid token", zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid token")
				return
			}

			userID, err := uuid.Parse(claims.ID)
			if err != nil {
				utils.ResponseUnauthorized(w, "Invalid token")
				return
			}

			user, err := users.FindByID(r.Context(), userID)
			if err != nil {
				logger.Error("Failed to load user for session",
					zap.Error(err),
					zap.String("user_id", claims.ID))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			// Stale token for a deleted account: continue anonymously.
			if user == nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := utils.SetCurrentUser(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
