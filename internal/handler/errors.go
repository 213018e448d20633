package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"instituteCMS/internal/models"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// WriteError sends a JSON error body without details.
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	writeSuccess(w, ErrorResponse{Message: message}, statusCode)
}

func writeErrorDetail(w http.ResponseWriter, message string, err error, statusCode int) {
	writeSuccess(w, ErrorResponse{Message: message, Error: err.Error()}, statusCode)
}

func writeSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// handleError maps a service error onto a status code. notFound is the
// message for a missing record, failure the one for anything unexpected.
func (h *Handlers) handleError(w http.ResponseWriter, r *http.Request, err error, notFound, failure string) {
	switch {
	case errors.Is(err, models.ErrValidation):
		writeErrorDetail(w, "Validation failed", err, http.StatusBadRequest)
	case errors.Is(err, models.ErrNotFound):
		WriteError(w, notFound, http.StatusNotFound)
	case errors.Is(err, models.ErrConflict):
		writeErrorDetail(w, "Conflict", err, http.StatusConflict)
	case errors.Is(err, models.ErrUnauthorized):
		WriteError(w, "Unauthorized", http.StatusUnauthorized)
	default:
		h.Logger.Error(failure,
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeErrorDetail(w, failure, err, http.StatusInternalServerError)
	}
}

// decodeJSON reads the request body into v and writes the error response
// itself when that fails.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteError(w, "Request body too large", http.StatusRequestEntityTooLarge)
			return false
		}
		writeErrorDetail(w, "Invalid request body", err, http.StatusBadRequest)
		return false
	}
	return true
}
