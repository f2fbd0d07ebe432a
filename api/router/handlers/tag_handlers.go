package handlers

import (
	"net/http"

	"notesapi/database"
	"notesapi/logger"
	"notesapi/models"
)

// TagHandlers serves the tag listing endpoint against a Store.
type TagHandlers struct {
	Store *database.Store
}

// ListTagsHandler handles GET requests to list all known tag names, sorted.
// Tags remain listed even when no note currently references them.
func (h *TagHandlers) ListTagsHandler(w http.ResponseWriter, r *http.Request) {
	names, err := h.Store.ListTagNames()
	if err != nil {
		logger.Error("ListTagsHandler: Error querying tags: %v", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.TagListResponse{Tags: names})
}
