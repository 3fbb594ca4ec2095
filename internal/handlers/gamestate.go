package handlers

import (
	"encoding/json"
	"log/slog"
	"maps"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/jwebster45206/story-directives/pkg/directives"
	"github.com/jwebster45206/story-directives/pkg/state"
	"github.com/jwebster45206/story-directives/pkg/storage"
)

type GameStateHandler struct {
	storage storage.Storage
	logger  *slog.Logger
}

func NewGameStateHandler(storage storage.Storage, logger *slog.Logger) *GameStateHandler {
	return &GameStateHandler{
		storage: storage,
		logger:  logger,
	}
}

// ServeHTTP handles HTTP requests for game state operations
// Routes:
// POST /v1/gamestate        - Create new game state
// GET /v1/gamestate/{id}    - Read game state by ID
// DELETE /v1/gamestate/{id} - Delete game state by ID
func (h *GameStateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/gamestate"), "/")
	var gameStateID uuid.UUID

	if path != "" {
		var err error
		gameStateID, err = uuid.Parse(path)
		if err != nil {
			h.logger.Warn("Invalid game state ID", "id", path, "error", err)
			writeError(w, h.logger, http.StatusBadRequest, "Invalid game state ID format")
			return
		}
	}

	switch r.Method {
	case http.MethodPost:
		if gameStateID != uuid.Nil {
			writeError(w, h.logger, http.StatusMethodNotAllowed, "POST is only supported on /v1/gamestate")
			return
		}
		h.handleCreate(w, r)

	case http.MethodGet:
		if gameStateID == uuid.Nil {
			h.logger.Warn("GET request without game state ID")
			writeError(w, h.logger, http.StatusBadRequest, "Game state ID is required for GET requests")
			return
		}
		h.handleRead(w, r, gameStateID)

	case http.MethodDelete:
		if gameStateID == uuid.Nil {
			h.logger.Warn("DELETE request without game state ID")
			writeError(w, h.logger, http.StatusBadRequest, "Game state ID is required for DELETE requests")
			return
		}
		h.handleDelete(w, r, gameStateID)

	default:
		h.logger.Warn("Method not allowed for game state endpoint", "method", r.Method)
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: POST, GET, DELETE")
	}
}

// CreateGameStateRequest defines the request body for creating a new game state.
// Omitted toggles keep their defaults; omitted world date starts the calendar.
type CreateGameStateRequest struct {
	WorldConfig     state.WorldConfig      `json:"world_config"`
	RuleToggles     state.RuleToggleConfig `json:"rule_toggles,omitempty"`
	WorldDate       *state.WorldDate       `json:"world_date,omitempty"`
	Events          []state.Event          `json:"events,omitempty"`
	UserCustomRules []string               `json:"user_custom_rules,omitempty"`
	PlayerStatus    *state.SpecialStatus   `json:"player_status,omitempty"`
}

// toGameState builds a new game from the request.
func (req *CreateGameStateRequest) toGameState() *state.GameState {
	gs := state.NewGameState(req.WorldConfig)
	maps.Copy(gs.RuleToggles, req.RuleToggles)
	if req.WorldDate != nil {
		gs.WorldDate = *req.WorldDate
	}
	gs.Events = req.Events
	gs.PlayerStatus = req.PlayerStatus
	for _, rule := range req.UserCustomRules {
		if rule = strings.TrimSpace(rule); rule != "" {
			gs.UserCustomRules = append(gs.UserCustomRules, rule)
		}
	}
	return gs
}

func (h *GameStateHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	h.logger.Debug("Creating new game state")

	var req CreateGameStateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid JSON in request body", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	gs := req.toGameState()

	// Reject games the compiler cannot render before they are stored
	snapshot := gs.Clone()
	if _, err := directives.Compile(snapshot, snapshot.RuleToggles, snapshot.WorldDate); err != nil {
		writeCompileError(w, h.logger, gs.ID, err)
		return
	}

	if err := h.storage.SaveGameState(r.Context(), gs.ID, gs); err != nil {
		h.logger.Error("Failed to save new game state", "error", err, "id", gs.ID.String())
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to create game state")
		return
	}

	h.logger.Info("Game state created", "id", gs.ID.String(), "genre", gs.WorldConfig.EffectiveGenre())
	writeJSON(w, h.logger, http.StatusCreated, gs)
}

func (h *GameStateHandler) handleRead(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
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
	writeJSON(w, h.logger, http.StatusOK, gs)
}

func (h *GameStateHandler) handleDelete(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
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

	if err := h.storage.DeleteGameState(r.Context(), id); err != nil {
		h.logger.Error("Failed to delete game state", "error", err, "id", id.String())
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to delete game state")
		return
	}

	h.logger.Info("Game state deleted", "id", id.String())
	w.WriteHeader(http.StatusNoContent)
}
