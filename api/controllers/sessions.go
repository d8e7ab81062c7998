package controllers

import (
	"net/http"

	"github.com/steeltrade/storefront-backend/api/responses"
	"github.com/steeltrade/storefront-backend/internal/session"
	"github.com/steeltrade/storefront-backend/pkg/logger"
)

// CreateSession registers a fresh client session and hands back its id. The
// client sends it on every later request in X-Session-Id.
func CreateSession(manager *session.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := manager.Create(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]string{
			"session_id": sess.ID().String(),
		})
	}
}
