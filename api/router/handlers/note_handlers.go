package handlers

import (
	"net/http"

	"notesapi/database"
	"notesapi/logger"
	"notesapi/models"
)

// NoteHandlers serves the note CRUD endpoints against a Store.
type NoteHandlers struct {
	Store *database.Store
}

// ListNotesHandler handles GET requests to list notes with optional q, tag and
// category filters. Provided filters are ANDed together.
func (h *NoteHandlers) ListNotesHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	tag := r.URL.Query().Get("tag")
	category := r.URL.Query().Get("category")

	notes, err := h.Store.ListNotes(q, tag, category)
	if err != nil {
		logger.Error("ListNotesHandler: Error fetching notes: %v", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, notes)
}

// CreateNoteHandler handles POST requests to create a new note.
func (h *NoteHandlers) CreateNoteHandler(w http.ResponseWriter, r *http.Request) {
	var payload models.CreateNotePayload
	if err := decodeJSON(r, &payload); err != nil {
		logger.Error("CreateNoteHandler: Error decoding request body: %v", err)
		writeError(w, err)
		return
	}
	if err := payload.Validate(); err != nil {
		logger.Error("CreateNoteHandler: Invalid payload: %v", err)
		writeError(w, err)
		return
	}

	note, err := h.Store.CreateNote(*payload.Title, *payload.Content, payload.Category.Value, payload.Tags)
	if err != nil {
		logger.Error("CreateNoteHandler: Error creating note: %v", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, note)
}

// GetNoteHandler handles GET requests for a single note by ID.
func (h *NoteHandlers) GetNoteHandler(w http.ResponseWriter, r *http.Request, noteID int64) {
	note, err := h.Store.GetNoteByID(noteID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, note)
}

// UpdateNoteHandler handles PATCH/PUT requests to partially update a note.
// Fields absent from the payload remain unchanged.
func (h *NoteHandlers) UpdateNoteHandler(w http.ResponseWriter, r *http.Request, noteID int64) {
	var payload models.UpdateNotePayload
	if err := decodeJSON(r, &payload); err != nil {
		logger.Error("UpdateNoteHandler: Error decoding request body for note %d: %v", noteID, err)
		writeError(w, err)
		return
	}
	if err := payload.Validate(); err != nil {
		logger.Error("UpdateNoteHandler: Invalid payload for note %d: %v", noteID, err)
		writeError(w, err)
		return
	}

	note, err := h.Store.UpdateNote(noteID, payload)
	if err != nil {
		logger.Error("UpdateNoteHandler: Error updating note %d: %v", noteID, err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, note)
}

// DeleteNoteHandler handles DELETE requests to remove a note.
func (h *NoteHandlers) DeleteNoteHandler(w http.ResponseWriter, r *http.Request, noteID int64) {
	if err := h.Store.DeleteNote(noteID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
