package controllers

import (
	"net/http"

	"github.com/steeltrade/storefront-backend/api/middleware"
	"github.com/steeltrade/storefront-backend/api/responses"
	"github.com/steeltrade/storefront-backend/internal/session"
	pkgerrors "github.com/steeltrade/storefront-backend/pkg/errors"
	"github.com/steeltrade/storefront-backend/pkg/logger"
)

// sessionFrom pulls the session attached by the middleware. A miss means the
// route was wired without RequireSession, which is a server bug, not a client
// one.
func sessionFrom(w http.ResponseWriter, r *http.Request, logg *logger.Logger) (*session.Session, bool) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session missing from context"))
		return nil, false
	}
	return sess, true
}
