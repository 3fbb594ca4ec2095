package prompts

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jwebster45206/story-directives/pkg/chat"
	"github.com/jwebster45206/story-directives/pkg/directives"
	"github.com/jwebster45206/story-directives/pkg/input"
	"github.com/jwebster45206/story-directives/pkg/state"
)

func testGameState() *state.GameState {
	return state.NewGameState(state.WorldConfig{
		Genre:      "fantasy",
		Difficulty: state.DifficultyNormal,
		PlayerName: "Aria",
		PlayerGoal: "find the lost crown",
	})
}

func testDocument(t *testing.T, gs *state.GameState) *directives.Document {
	t.Helper()
	doc, err := directives.Compile(gs.Clone(), gs.RuleToggles, gs.WorldDate)
	if err != nil {
		t.Fatalf("compile directives: %v", err)
	}
	return doc
}

func TestNew(t *testing.T) {
	builder := New()
	if builder == nil {
		t.Fatal("Expected builder to be created, got nil")
	}
	if builder.historyLimit != 20 {
		t.Errorf("Expected default history limit of 20, got %d", builder.historyLimit)
	}
	if builder.kind != KindContinue {
		t.Errorf("Expected default kind %q, got %q", KindContinue, builder.kind)
	}
	if builder.messages == nil {
		t.Error("Expected messages slice to be initialized")
	}
}

func TestBuilder_FluentInterface(t *testing.T) {
	gs := testGameState()
	doc := testDocument(t, gs)
	action := input.Action{Text: "Hello", InputType: input.ActionTypeAction}

	builder := New().
		WithKind(KindInitial).
		WithGameState(gs).
		WithDirectives(doc).
		WithAction(action).
		WithHistoryLimit(10)

	if builder.kind != KindInitial {
		t.Error("WithKind did not set kind")
	}
	if builder.gs != gs {
		t.Error("WithGameState did not set gamestate")
	}
	if builder.doc != doc {
		t.Error("WithDirectives did not set directives")
	}
	if builder.action != action {
		t.Error("WithAction did not set action")
	}
	if builder.historyLimit != 10 {
		t.Error("WithHistoryLimit did not set limit")
	}
}

func TestBuilder_Build_Requirements(t *testing.T) {
	gs := testGameState()
	doc := testDocument(t, gs)
	action := input.Action{Text: "look around"}

	tests := []struct {
		name    string
		builder *Builder
		wantErr string
	}{
		{
			name:    "missing gamestate",
			builder: New().WithDirectives(doc).WithAction(action),
			wantErr: "gamestate is required",
		},
		{
			name:    "missing directives",
			builder: New().WithGameState(gs).WithAction(action),
			wantErr: "directives are required",
		},
		{
			name:    "continue without action",
			builder: New().WithGameState(gs).WithDirectives(doc).WithAction(input.Action{Text: "   "}),
			wantErr: "player action is required",
		},
		{
			name:    "prison prompt for a free player",
			builder: New().WithKind(KindContinuePrison).WithGameState(gs).WithDirectives(doc).WithAction(action),
			wantErr: "requires a prisoner",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder.Build()
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestBuilder_Build_BasicMessages(t *testing.T) {
	gs := testGameState()
	doc := testDocument(t, gs)

	messages, err := New().
		WithGameState(gs).
		WithDirectives(doc).
		WithAction(input.Action{Text: "I open the door", InputType: input.ActionTypeAction}).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	// system, user action, final reminder
	if len(messages) != 3 {
		t.Fatalf("Expected 3 messages, got %d", len(messages))
	}

	system := messages[0]
	if system.Role != chat.ChatRoleSystem {
		t.Errorf("Expected first message to be system, got %s", system.Role)
	}
	if !strings.Contains(system.Content, "interactive fantasy story") {
		t.Error("Expected system prompt to name the genre")
	}
	if !strings.Contains(system.Content, doc.String()) {
		t.Error("Expected system prompt to embed the directive document verbatim")
	}
	if !strings.Contains(system.Content, "Turn: 0") {
		t.Error("Expected system prompt to include the world state")
	}

	if messages[1].Role != chat.ChatRoleUser || messages[1].Content != "Aria: I open the door" {
		t.Errorf("Unexpected player message: %+v", messages[1])
	}

	if messages[2].Content != UserPostPrompt {
		t.Errorf("Expected final prompt %q, got %q", UserPostPrompt, messages[2].Content)
	}
}

func TestBuilder_Build_StoryDirection(t *testing.T) {
	gs := testGameState()
	messages, err := BuildPrompt(KindContinue, gs, testDocument(t, gs),
		input.Action{Text: "a storm rolls in", InputType: input.ActionTypeStory}, 20)
	if err != nil {
		t.Fatalf("BuildPrompt failed: %v", err)
	}
	if got := messages[1].Content; got != "STORY DIRECTION: a storm rolls in" {
		t.Errorf("Unexpected story direction message: %q", got)
	}
}

func TestBuilder_Build_ResponseLength(t *testing.T) {
	gs := testGameState()
	messages, err := BuildPrompt(KindContinue, gs, testDocument(t, gs),
		input.Action{Text: "wait", ResponseLength: input.ResponseLengthShort}, 20)
	if err != nil {
		t.Fatalf("BuildPrompt failed: %v", err)
	}
	final := messages[len(messages)-1].Content
	if !strings.HasPrefix(final, GetResponseLengthPrompt(input.ResponseLengthShort)) {
		t.Errorf("Expected final prompt to start with the length guidance, got %q", final)
	}
	if !strings.HasSuffix(final, UserPostPrompt) {
		t.Errorf("Expected final prompt to end with the post prompt, got %q", final)
	}
}

func TestBuilder_Build_HistoryWindowing(t *testing.T) {
	gs := testGameState()
	for i := 0; i < 30; i++ {
		gs.ChatHistory = append(gs.ChatHistory, chat.ChatMessage{
			Role:    chat.ChatRoleUser,
			Content: fmt.Sprintf("message %d", i),
		})
	}

	messages, err := New().
		WithGameState(gs).
		WithDirectives(testDocument(t, gs)).
		WithAction(input.Action{Text: "go on"}).
		WithHistoryLimit(5).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	// system + 5 history + action + final
	if len(messages) != 8 {
		t.Fatalf("Expected 8 messages, got %d", len(messages))
	}
	if messages[1].Content != "message 25" {
		t.Errorf("Expected window to start at message 25, got %q", messages[1].Content)
	}
	if messages[5].Content != "message 29" {
		t.Errorf("Expected window to end at message 29, got %q", messages[5].Content)
	}
}

func TestBuilder_Build_Prison(t *testing.T) {
	gs := testGameState()
	gs.PlayerStatus = &state.SpecialStatus{
		Type:       state.SpecialStatusPrisoner,
		OwnerName:  "Lord Varek",
		Willpower:  70,
		Resistance: 55,
		Obedience:  10,
	}

	messages, err := BuildPrompt(KindContinuePrison, gs, testDocument(t, gs), input.Action{Text: "test the bars"}, 20)
	if err != nil {
		t.Fatalf("BuildPrompt failed: %v", err)
	}
	system := messages[0].Content
	if !strings.Contains(system, "### Captivity") {
		t.Error("Expected captivity block in system prompt")
	}
	if !strings.Contains(system, "prisoner of Lord Varek") {
		t.Error("Expected captor name in system prompt")
	}
	if !strings.Contains(system, "willpower is 70, resistance 55 and obedience 10") {
		t.Error("Expected prisoner stats in system prompt")
	}
}

func TestBuilder_Build_Initial(t *testing.T) {
	gs := testGameState()
	gs.ChatHistory = append(gs.ChatHistory, chat.ChatMessage{Role: chat.ChatRoleUser, Content: "stale"})

	messages, err := BuildPrompt(KindInitial, gs, testDocument(t, gs), input.Action{}, 20)
	if err != nil {
		t.Fatalf("BuildPrompt failed: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("Expected system and opening request only, got %d messages", len(messages))
	}
	if !strings.Contains(messages[1].Content, "Introduce Aria") {
		t.Errorf("Expected opening request to name the player, got %q", messages[1].Content)
	}
	if !strings.Contains(messages[1].Content, "find the lost crown") {
		t.Errorf("Expected opening request to name the goal, got %q", messages[1].Content)
	}
	for _, m := range messages {
		if m.Content == "stale" {
			t.Error("Initial prompt must not include chat history")
		}
	}
}
