package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/steeltrade/storefront-backend/pkg/config"
)

// CORS applies the allowed origin policy. The storefront is served inside
// the Telegram webview, so the default allows only that origin.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Session-Id", "X-Requested-With"},
		ExposedHeaders:   []string{"X-Session-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}).Handler
}
