package prompts

import (
	"fmt"
	"strings"

	"github.com/jwebster45206/story-directives/pkg/chat"
	"github.com/jwebster45206/story-directives/pkg/directives"
	"github.com/jwebster45206/story-directives/pkg/input"
	"github.com/jwebster45206/story-directives/pkg/state"
)

// Builder constructs chat messages for LLM interaction using a fluent interface.
// The directive document is compiled by the caller and embedded verbatim.
type Builder struct {
	kind         Kind
	gs           *state.GameState
	doc          *directives.Document
	action       input.Action
	historyLimit int
	messages     []chat.ChatMessage
}

// New creates a new prompt builder for continue prompts.
func New() *Builder {
	return &Builder{
		kind:         KindContinue,
		historyLimit: 20, // default history limit
		messages:     make([]chat.ChatMessage, 0),
	}
}

// WithKind sets the prompt kind.
func (b *Builder) WithKind(kind Kind) *Builder {
	b.kind = kind
	return b
}

// WithGameState sets the game state snapshot.
func (b *Builder) WithGameState(gs *state.GameState) *Builder {
	b.gs = gs
	return b
}

// WithDirectives sets the compiled directive document.
func (b *Builder) WithDirectives(doc *directives.Document) *Builder {
	b.doc = doc
	return b
}

// WithAction sets the player's accepted action.
func (b *Builder) WithAction(a input.Action) *Builder {
	b.action = a
	return b
}

// WithHistoryLimit sets the chat history window size.
func (b *Builder) WithHistoryLimit(limit int) *Builder {
	b.historyLimit = limit
	return b
}

// Build constructs and returns the final message array for LLM consumption.
func (b *Builder) Build() ([]chat.ChatMessage, error) {
	if b.gs == nil {
		return nil, fmt.Errorf("gamestate is required")
	}
	if b.doc == nil {
		return nil, fmt.Errorf("directives are required")
	}
	if b.kind != KindInitial && strings.TrimSpace(b.action.Text) == "" {
		return nil, fmt.Errorf("player action is required for %s prompts", b.kind)
	}
	if b.kind == KindContinuePrison && !b.gs.IsPrisoner() {
		return nil, fmt.Errorf("%s prompt requires a prisoner player status", b.kind)
	}

	b.messages = make([]chat.ChatMessage, 0)

	// 1. System prompt with directives
	b.addSystemPrompt()

	// 2. Windowed chat history and the player's turn, or the opening request
	if b.kind == KindInitial {
		b.addOpeningRequest()
	} else {
		b.addHistory()
		b.addPlayerAction()
	}

	// 3. Final reminders
	b.addFinalPrompt()

	return b.messages, nil
}

func (b *Builder) addSystemPrompt() {
	var sb strings.Builder
	sb.WriteString(BuildSystemPrompt(b.gs))
	sb.WriteString("\n\n" + fmt.Sprintf(WorldStateTemplate, b.gs.WorldDate, b.gs.TurnCounter))

	if b.kind == KindContinuePrison {
		sb.WriteString("\n\n" + BuildPrisonPrompt(b.gs))
	}

	if directiveText := b.doc.String(); directiveText != "" {
		sb.WriteString("\n\n" + directiveText)
	}

	b.messages = append(b.messages, chat.ChatMessage{
		Role:    chat.ChatRoleSystem,
		Content: sb.String(),
	})
}

func (b *Builder) addHistory() {
	if len(b.gs.ChatHistory) == 0 || b.historyLimit <= 0 {
		return
	}
	if len(b.gs.ChatHistory) <= b.historyLimit {
		b.messages = append(b.messages, b.gs.ChatHistory...)
	} else {
		b.messages = append(b.messages, b.gs.ChatHistory[len(b.gs.ChatHistory)-b.historyLimit:]...)
	}
}

func (b *Builder) addPlayerAction() {
	b.messages = append(b.messages, chat.ChatMessage{
		Role:    chat.ChatRoleUser,
		Content: formatAction(b.action, b.gs.WorldConfig.PlayerName),
	})
}

func (b *Builder) addOpeningRequest() {
	player := b.gs.WorldConfig.PlayerName
	if player == "" {
		player = "the protagonist"
	}
	goal := b.gs.WorldConfig.PlayerGoal
	if goal == "" {
		goal = "unknown"
	}
	b.messages = append(b.messages, chat.ChatMessage{
		Role:    chat.ChatRoleUser,
		Content: fmt.Sprintf(InitialPromptTemplate, player, goal),
	})
}

func (b *Builder) addFinalPrompt() {
	parts := make([]string, 0, 2)
	if lengthPrompt := GetResponseLengthPrompt(b.action.ResponseLength); lengthPrompt != "" {
		parts = append(parts, lengthPrompt)
	}
	if b.kind != KindInitial {
		parts = append(parts, UserPostPrompt)
	}
	if len(parts) == 0 {
		return
	}
	b.messages = append(b.messages, chat.ChatMessage{
		Role:    chat.ChatRoleSystem,
		Content: strings.Join(parts, " "),
	})
}

// BuildPrompt is a convenience function for the common case.
// It creates a builder, sets all parameters, and builds the messages in one call.
func BuildPrompt(
	kind Kind,
	gs *state.GameState,
	doc *directives.Document,
	action input.Action,
	historyLimit int,
) ([]chat.ChatMessage, error) {
	return New().
		WithKind(kind).
		WithGameState(gs).
		WithDirectives(doc).
		WithAction(action).
		WithHistoryLimit(historyLimit).
		Build()
}
