package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	jwttoken "menagerie/internal/jwt_token"
	dErrors "menagerie/pkg/domain-errors"
	"menagerie/pkg/platform/httputil"
	"menagerie/pkg/requestcontext"
)

// KeeperValidator validates keeper bearer tokens.
type KeeperValidator interface {
	ValidateToken(tokenString string) (*jwttoken.Claims, error)
}

// RequireKeeper rejects requests without a valid keeper bearer token and
// stores the keeper id in the request context.
func RequireKeeper(validator KeeperValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" {
				logger.WarnContext(ctx, "unauthorized access - missing token",
					"request_id", GetRequestID(ctx),
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "missing or invalid Authorization header"))
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - invalid token",
					"error", err,
					"request_id", GetRequestID(ctx),
				)
				httputil.WriteError(w, err)
				return
			}

			ctx = requestcontext.WithKeeperID(ctx, claims.KeeperID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
