package middleware

import (
	"errors"
	"net/http"
	"strings"

	"hustlehub/internal/data/repository"
	"hustlehub/pkg/metrics"
	"hustlehub/pkg/token"
	"hustlehub/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Authenticate gates protected routes. It extracts the bearer token, validates
// it, re-fetches the user on every request (no caching, so a deleted user is
// rejected even with a live token) and stores the principal on the context.
func Authenticate(tokens *token.Service, users repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// 1. Extract token from Authorization header
			authHeader := r.Header.Get("Authorization")
			parts := strings.SplitN(authHeader, " ", 2)
			if authHeader == "" || len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				metrics.AuthFailuresTotal.WithLabelValues("missing_header").Inc()
				utils.ResponseUnauthorized(w, "Missing or malformed authorization header. Use: Bearer <token>", utils.CodeUnauthorized)
				return
			}

			// 2. Validate token
			claims, err := tokens.Validate(parts[1])
			if err != nil {
				switch {
				case errors.Is(err, token.ErrExpired):
					metrics.AuthFailuresTotal.WithLabelValues("expired").Inc()
					utils.ResponseUnauthorized(w, "Token has expired", utils.CodeExpiredToken)
				case errors.Is(err, token.ErrSignatureInvalid):
					metrics.AuthFailuresTotal.WithLabelValues("signature_invalid").Inc()
					utils.ResponseUnauthorized(w, "Invalid token signature", utils.CodeInvalidToken)
				default:
					metrics.AuthFailuresTotal.WithLabelValues("malformed").Inc()
					utils.ResponseUnauthorized(w, "Malformed token", utils.CodeInvalidToken)
				}
				return
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues("malformed").Inc()
				utils.ResponseUnauthorized(w, "Malformed token", utils.CodeInvalidToken)
				return
			}

			// 3. Resolve the user. Covers users deleted after token issuance.
			user, err := users.FindByID(r.Context(), userID)
			if err != nil {
				logger.Error("Failed to resolve user for token",
					zap.Error(err),
					zap.String("user_id", claims.UserID))
				utils.ResponseInternalError(w, "resolve user")
				return
			}
			if user == nil {
				metrics.AuthFailuresTotal.WithLabelValues("user_not_found").Inc()
				logger.Warn("Token references missing user", zap.String("user_id", claims.UserID))
				utils.ResponseNotFound(w, "User not found")
				return
			}

			// 4. Attach principal to context
			ctx := utils.SetUserContext(r.Context(), user.ID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
