package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/steeltrade/storefront-backend/api/controllers"
	"github.com/steeltrade/storefront-backend/api/middleware"
	"github.com/steeltrade/storefront-backend/internal/session"
	"github.com/steeltrade/storefront-backend/pkg/config"
	"github.com/steeltrade/storefront-backend/pkg/logger"
	"github.com/steeltrade/storefront-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	manager *session.Manager,
	httpMetrics *metrics.HTTPMetrics,
	registry prometheus.Gatherer,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.CORS),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/sessions", controllers.CreateSession(manager, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireSession(manager, logg))

			r.Route("/catalog", func(r chi.Router) {
				r.Get("/", controllers.ListCatalog(logg))
				r.Get("/{productID}", controllers.GetProductCard(logg))
				r.Patch("/{productID}/quick", controllers.UpdateQuickState(logg))
				r.Post("/{productID}/cart", controllers.AddCardToCart(logg))
			})

			r.Route("/dialog", func(r chi.Router) {
				r.Get("/", controllers.GetDialog(logg))
				r.Post("/open", controllers.OpenDialog(logg))
				r.Patch("/field", controllers.SetDialogField(logg))
				r.Post("/confirm", controllers.ConfirmDialog(logg))
				r.Delete("/", controllers.DismissDialog(logg))
			})

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.GetCart(logg))
				r.Post("/select-all", controllers.SelectAllCart(logg))
				r.Route("/items/{index}", func(r chi.Router) {
					r.Patch("/", controllers.UpdateCartLine(logg))
					r.Delete("/", controllers.RemoveCartLine(logg))
				})
			})

			r.Route("/checkout", func(r chi.Router) {
				r.Get("/", controllers.GetCheckout(logg))
				r.Post("/open", controllers.OpenCheckout(logg))
				r.Post("/buy-now", controllers.BuyNow(logg))
				r.Put("/form", controllers.UpdateCheckoutForm(logg))
				r.Post("/submit", controllers.SubmitCheckout(logg))
				r.Delete("/", controllers.DismissCheckout(logg))
			})
		})
	})

	return r
}
