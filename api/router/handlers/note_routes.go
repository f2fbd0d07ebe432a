package handlers

import (
	"net/http"
	"strconv"

	"notesapi/database"
	"notesapi/logger"
	"notesapi/models"

	"github.com/go-chi/chi/v5"
)

func RegisterNoteRoutes(r chi.Router, store *database.Store) {
	h := &NoteHandlers{Store: store}

	// Collection routes for /notes
	r.Get("/notes", h.ListNotesHandler)
	r.Post("/notes", h.CreateNoteHandler)

	// Routes for specific note items: /notes/{noteID}
	r.Route("/notes/{noteID}", func(subRouter chi.Router) {
		subRouter.Get("/", withNoteID(h.GetNoteHandler))
		subRouter.Patch("/", withNoteID(h.UpdateNoteHandler))
		subRouter.Put("/", withNoteID(h.UpdateNoteHandler))
		subRouter.Delete("/", withNoteID(h.DeleteNoteHandler))
	})
}

// withNoteID parses the {noteID} URL parameter before invoking the handler.
func withNoteID(handler func(http.ResponseWriter, *http.Request, int64)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		noteIDStr := chi.URLParam(r, "noteID")
		noteID, err := strconv.ParseInt(noteIDStr, 10, 64)
		if err != nil {
			logger.Error("withNoteID: Invalid noteID format '%s': %v", noteIDStr, err)
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Message: "Invalid note ID format"})
			return
		}
		handler(w, r, noteID)
	}
}
