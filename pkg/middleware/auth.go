package middleware

import (
	"net/http"
	"strings"

	"cinema-manager/internal/data/entity"
	"cinema-manager/internal/data/repository"
	"cinema-manager/pkg/apperror"
	"cinema-manager/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthSession resolves the bearer token to an operator session and stores
// the operator in the request context.
func AuthSession(sessionRepo repository.SessionRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			scheme, token, ok := strings.Cut(authHeader, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			tokenUUID, err := uuid.Parse(strings.TrimSpace(token))
			if err != nil {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			// Cek session masih valid dan operator masih aktif
			session, err := sessionRepo.FindValidSession(r.Context(), tokenUUID)
			if err != nil {
				logger.Error("Failed to validate session", zap.Error(err))
				if apperror.Is(err, apperror.KindConnectivity) {
					utils.ResponseUnavailable(w, "Database unavailable")
					return
				}
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if session == nil {
				logger.Warn("Invalid or expired session", zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			// Set context dengan operator info dan token
			ctx := utils.SetOperatorContext(r.Context(), session.OperatorID, session.Username, string(session.Role))
			ctx = utils.SetTokenContext(ctx, tokenUUID.String())

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole admits operators holding one of roles. It must run after
// AuthSession.
func RequireRole(logger *zap.Logger, roles ...entity.OperatorRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			for _, allowed := range roles {
				if role == string(allowed) {
					next.ServeHTTP(w, r)
					return
				}
			}

			logger.Warn("Role check: access denied",
				zap.String("role", role),
				zap.String("actor", utils.GetActorFromContext(r.Context())),
				zap.String("path", r.URL.Path),
			)
			utils.ResponseForbidden(w, "Insufficient role for this operation")
		})
	}
}
