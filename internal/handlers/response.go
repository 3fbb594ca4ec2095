package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/jwebster45206/story-directives/pkg/directives"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, logger *slog.Logger, status int, msg string) {
	writeJSON(w, logger, status, ErrorResponse{Error: msg})
}

// writeCompileError maps directive compilation failures to a status code.
// Configuration problems are the client's data, anything else is ours.
func writeCompileError(w http.ResponseWriter, logger *slog.Logger, id uuid.UUID, err error) {
	if errors.Is(err, directives.ErrConfig) {
		logger.Warn("Invalid game configuration", "id", id, "error", err)
		writeError(w, logger, http.StatusUnprocessableEntity, err.Error())
		return
	}
	logger.Error("Failed to compile directives", "id", id, "error", err)
	writeError(w, logger, http.StatusInternalServerError, "Failed to compile directives")
}

func parseGameStateID(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, bool) {
	idStr := r.PathValue("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		logger.Warn("Invalid game state ID", "id", idStr, "error", err)
		writeError(w, logger, http.StatusBadRequest, "Invalid game state ID format")
		return uuid.Nil, false
	}
	return id, true
}
