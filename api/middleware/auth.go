package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/reachly-hq/reachly-portal/api/responses"
	pkgauth "github.com/reachly-hq/reachly-portal/pkg/auth"
	"github.com/reachly-hq/reachly-portal/pkg/auth/session"
	"github.com/reachly-hq/reachly-portal/pkg/config"
	pkgerrors "github.com/reachly-hq/reachly-portal/pkg/errors"
	"github.com/reachly-hq/reachly-portal/pkg/logger"
)

// Auth validates the portal token and resolves the redis session record. The
// backend token stays server-side; handlers read it from the context.
func Auth(cfg config.SessionConfig, sessions session.Checker, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if raw == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			token := raw
			if strings.HasPrefix(strings.ToLower(token), "bearer ") {
				token = strings.TrimSpace(token[7:])
			}
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			claims, err := pkgauth.ParseSessionToken(cfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token"))
				return
			}

			sessionID := claims.SessionID()
			if sessionID == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing session id"))
				return
			}

			record, err := sessions.Lookup(r.Context(), sessionID)
			if err != nil {
				if errors.Is(err, session.ErrSessionNotFound) {
					responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "session expired"))
					return
				}
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "validate session"))
				return
			}

			ctx := context.WithValue(r.Context(), ctxSessionID, sessionID)
			ctx = context.WithValue(ctx, ctxRole, string(record.Role))
			ctx = context.WithValue(ctx, ctxEmail, record.Email)
			ctx = context.WithValue(ctx, ctxBackendToken, record.BackendToken)

			if logg != nil {
				ctx = logg.WithFields(ctx, map[string]any{
					"session_id":    sessionID,
					"actor_role":    string(record.Role),
					"account_email": record.Email,
				})
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
