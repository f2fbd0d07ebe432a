package handlers

import (
	"notesapi/database"

	"github.com/go-chi/chi/v5"
)

// RegisterTagRoutes sets up the routes for tag listing.
func RegisterTagRoutes(r chi.Router, store *database.Store) {
	h := &TagHandlers{Store: store}
	r.Get("/tags", h.ListTagsHandler)
}
