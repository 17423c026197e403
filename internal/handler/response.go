package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/lumenworks/backend/internal/model"
	"github.com/lumenworks/backend/internal/repository"
)

// envelope is the uniform wire response: {"success": true, "data": ...} or
// {"success": false, "error": "..."}.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Success: true, Data: data})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Success: false, Error: msg})
}

// writeServiceError maps a service failure onto the envelope: validation and
// malformed ids are the caller's fault (400), a missing record is 404, and
// anything else is an internal failure whose detail is logged, not leaked.
func writeServiceError(w http.ResponseWriter, err error, notFoundMsg string) {
	var ve *model.ValidationError
	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, ve.Error())
	case errors.Is(err, repository.ErrInvalidID):
		writeError(w, http.StatusBadRequest, "Invalid id")
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, notFoundMsg)
	default:
		slog.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Something went wrong")
	}
}
