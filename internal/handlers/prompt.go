package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jwebster45206/story-directives/pkg/chat"
	"github.com/jwebster45206/story-directives/pkg/directives"
	"github.com/jwebster45206/story-directives/pkg/input"
	"github.com/jwebster45206/story-directives/pkg/prompts"
	"github.com/jwebster45206/story-directives/pkg/storage"
	"github.com/jwebster45206/story-directives/pkg/textfilter"
)

type PromptHandler struct {
	storage      storage.Storage
	logger       *slog.Logger
	historyLimit int
	filter       *textfilter.Filter
}

func NewPromptHandler(storage storage.Storage, historyLimit int, logger *slog.Logger) *PromptHandler {
	return &PromptHandler{
		storage:      storage,
		logger:       logger,
		historyLimit: historyLimit,
		filter:       textfilter.New(),
	}
}

// ServeHTTP handles POST /v1/gamestate/{id}/prompt
// The response carries the messages that would be sent to the narrator model.
func (h *PromptHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok := parseGameStateID(w, r, h.logger)
	if !ok {
		return
	}

	var req chat.PromptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid JSON in request body", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	req.GameStateID = id
	if req.Kind == "" {
		req.Kind = string(prompts.KindContinue)
	}

	kind, err := prompts.ParseKind(req.Kind)
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	actionType := input.ActionTypeAction
	if req.InputType != "" {
		actionType = input.ActionType(req.InputType)
		if actionType != input.ActionTypeAction && actionType != input.ActionTypeStory {
			writeError(w, h.logger, http.StatusBadRequest, "input_type must be action or story")
			return
		}
	}
	responseLength := input.ResponseLengthDefault
	if req.ResponseLength != "" {
		responseLength = input.ResponseLength(req.ResponseLength)
		if prompts.GetResponseLengthPrompt(responseLength) == "" && responseLength != input.ResponseLengthDefault {
			writeError(w, h.logger, http.StatusBadRequest, "response_length must be default, short, medium or long")
			return
		}
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

	action := input.Action{InputType: actionType, ResponseLength: responseLength}
	if kind != prompts.KindInitial {
		ctrl := input.NewController(nil)
		if !gs.WorldConfig.NSFWMode {
			ctrl.WithCleaner(h.filter)
		}
		ctrl.SetActionType(actionType)
		ctrl.SetResponseLength(responseLength)

		var accepted bool
		if req.IsChoice && strings.TrimSpace(req.Message) != "" {
			action, accepted = ctrl.Choose(req.Message)
		} else {
			ctrl.SetText(req.Message)
			action, accepted = ctrl.Submit()
		}
		if !accepted {
			writeError(w, h.logger, http.StatusBadRequest, "message cannot be empty")
			return
		}
	}

	snapshot := gs.Clone()
	doc, err := directives.Compile(snapshot, snapshot.RuleToggles, snapshot.WorldDate)
	if err != nil {
		writeCompileError(w, h.logger, id, err)
		return
	}

	messages, err := prompts.BuildPrompt(kind, &snapshot, doc, action, h.historyLimit)
	if err != nil {
		h.logger.Warn("Failed to build prompt", "id", id.String(), "kind", kind, "error", err)
		writeError(w, h.logger, http.StatusUnprocessableEntity, err.Error())
		return
	}

	h.logger.Debug("Built prompt", "id", id.String(), "kind", kind, "messages", len(messages))
	writeJSON(w, h.logger, http.StatusOK, chat.PromptResponse{
		GameStateID: id,
		Kind:        string(kind),
		Messages:    messages,
	})
}
