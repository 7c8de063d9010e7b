package routes

import (
	"github.com/go-chi/chi/v5"

	"tanya/tanya/controllers"
)

// PageRoutes registers the HTML page and health endpoints directly on the
// parent router so they don't shadow the /api subtree.
func PageRoutes(r chi.Router, pages *controllers.PageController, health *controllers.HealthController) {
	r.Get("/", pages.Home)
	r.Get("/health", health.HealthCheck)
}
