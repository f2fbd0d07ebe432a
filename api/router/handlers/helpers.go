package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"notesapi/logger"
	"notesapi/models"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Error encoding JSON response: %v", err)
	}
}

// writeError maps errors onto the client-facing taxonomy: ValidationError ->
// 400, NotFoundError -> 404, anything else -> 500 with a generic message so
// storage faults are not leaked to clients.
func writeError(w http.ResponseWriter, err error) {
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Message: validationErr.Message})
		return
	}
	var notFoundErr *models.NotFoundError
	if errors.As(err, &notFoundErr) {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Message: notFoundErr.Error()})
		return
	}
	logger.Error("Internal error while handling request: %v", err)
	writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Message: "internal server error"})
}

// decodeJSON decodes a request body into dst, translating any decode failure
// (malformed JSON, mistyped fields) into a ValidationError. Unknown fields are
// ignored.
func decodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &models.ValidationError{Message: "invalid request payload: " + err.Error()}
	}
	return nil
}
