package api

import (
	"net/http"

	"notesapi/api/router/handlers"
	"notesapi/database"
	"notesapi/logger"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter creates and configures the HTTP router. Note and tag endpoints
// live under /api; the health check is served at the root.
func NewRouter(store *database.Store) http.Handler {
	router := chi.NewRouter()

	router.Use(handlers.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(handlers.RequestLogger)

	handlers.RegisterHealthRoutes(router)

	router.Route("/api", func(r chi.Router) {
		handlers.RegisterNoteRoutes(r, store)
		handlers.RegisterTagRoutes(r, store)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("Unhandled route: %s %s", r.Method, r.URL.Path)
		http.NotFound(w, r)
	})

	return router
}
