package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/steeltrade/storefront-backend/api/responses"
	"github.com/steeltrade/storefront-backend/internal/session"
	pkgerrors "github.com/steeltrade/storefront-backend/pkg/errors"
	"github.com/steeltrade/storefront-backend/pkg/logger"
)

const sessionIDHeader = "X-Session-Id"

type sessionCtxKey struct{}

// RequireSession resolves the X-Session-Id header against the registry and
// stores the session on the request context. Missing or stale ids fail the
// request before it reaches a handler.
func RequireSession(manager *session.Manager, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			raw := r.Header.Get(sessionIDHeader)
			if raw == "" {
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "missing X-Session-Id header"))
				return
			}
			id, err := uuid.Parse(raw)
			if err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "malformed session id"))
				return
			}

			sess, err := manager.Get(id)
			if err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}

			if logg != nil {
				ctx = logg.WithSessionID(ctx, raw)
			}
			ctx = context.WithValue(ctx, sessionCtxKey{}, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext returns the session attached by RequireSession.
func SessionFromContext(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(sessionCtxKey{}).(*session.Session)
	return sess, ok
}
