package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/jwebster45206/story-directives/pkg/directives"
	"github.com/jwebster45206/story-directives/pkg/state"
	"github.com/jwebster45206/story-directives/pkg/storage"
)

// DirectivesResponse is the compiled directive document for one game.
type DirectivesResponse struct {
	GameStateID uuid.UUID            `json:"gamestate_id"`
	Preview     bool                 `json:"preview"`
	TurnCounter int                  `json:"turn_counter"`
	WorldDate   state.WorldDate      `json:"world_date"`
	Sections    []directives.Section `json:"sections"`
	Document    string               `json:"document"`
}

type DirectivesHandler struct {
	storage storage.Storage
	logger  *slog.Logger
	preview bool // default when the request has no preview parameter
}

func NewDirectivesHandler(storage storage.Storage, preview bool, logger *slog.Logger) *DirectivesHandler {
	return &DirectivesHandler{
		storage: storage,
		logger:  logger,
		preview: preview,
	}
}

// ServeHTTP handles GET /v1/gamestate/{id}/directives[?preview=true]
func (h *DirectivesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok := parseGameStateID(w, r, h.logger)
	if !ok {
		return
	}

	preview := h.preview
	if v := r.URL.Query().Get("preview"); v != "" {
		p, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, h.logger, http.StatusBadRequest, "preview must be a boolean")
			return
		}
		preview = p
	}

	gs, err := h.storage.LoadGameState(r.Context(), id)
	if err != nil {
		h.logger.Error("Failed to load game state", "error", err, "id", id.String())
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to load game state")
		return
	}
	if gs == nil {
		writeError(w, h.logger, http.StatusNotFound, "Game state not found")
		return
	}

	snapshot := gs.Clone()
	doc, err := directives.New().WithPreview(preview).Compile(snapshot, snapshot.RuleToggles, snapshot.WorldDate)
	if err != nil {
		writeCompileError(w, h.logger, id, err)
		return
	}

	h.logger.Debug("Compiled directives", "id", id.String(), "sections", len(doc.Sections), "preview", preview)
	writeJSON(w, h.logger, http.StatusOK, DirectivesResponse{
		GameStateID: id,
		Preview:     preview,
		TurnCounter: gs.TurnCounter,
		WorldDate:   gs.WorldDate,
		Sections:    doc.Sections,
		Document:    doc.String(),
	})
}
