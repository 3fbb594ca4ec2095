package chat

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// MaxMessageLength caps a single player action sent through the API.
const MaxMessageLength = 2000

const (
	ChatRoleUser   = "user"      // Player
	ChatRoleAgent  = "assistant" // Narrator output
	ChatRoleSystem = "system"    // Directives and instructions
)

// ChatMessage is a single message in an LLM conversation.
// The shape follows the role/content convention shared by the common chat APIs.
type ChatMessage struct {
	Role    string `json:"role"` // "user", "assistant", "system"
	Content string `json:"content"`
}

// PromptRequest asks the API to assemble a prompt for a stored game.
type PromptRequest struct {
	GameStateID    uuid.UUID `json:"gamestate_id"`
	Kind           string    `json:"kind"`            // continue, continue_prison, initial
	Message        string    `json:"message"`         // player action text, unused for initial
	InputType      string    `json:"input_type"`      // action or story
	ResponseLength string    `json:"response_length"` // default, short, medium, long
	IsChoice       bool      `json:"is_choice"`       // action came from a suggested choice
}

// PromptResponse returns the assembled messages for a prompt request.
type PromptResponse struct {
	GameStateID uuid.UUID     `json:"gamestate_id,omitempty"`
	Kind        string        `json:"kind,omitempty"`
	Messages    []ChatMessage `json:"messages,omitempty"`
	Error       string        `json:"error,omitempty"`
}

// Validate checks the player action text. Initial prompts carry no action.
func (pr *PromptRequest) Validate() error {
	if pr.Kind == "initial" {
		return nil
	}
	if pr.Message == "" {
		return fmt.Errorf("message cannot be empty")
	}
	if len(pr.Message) > MaxMessageLength {
		return fmt.Errorf("message exceeds maximum length of %d characters", MaxMessageLength)
	}
	return nil
}

// FormatWithPlayerName prefixes a player message with the player's name
// unless it already starts with a short "Speaker:" prefix.
func FormatWithPlayerName(message, playerName string) string {
	if idx := strings.Index(message, ":"); idx > 0 && idx <= 50 {
		return message
	}
	return playerName + ": " + message
}
