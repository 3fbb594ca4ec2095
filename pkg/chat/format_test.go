package chat

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestFormatWithPlayerName(t *testing.T) {
	tests := []struct {
		name       string
		message    string
		playerName string
		expected   string
	}{
		{
			name:       "adds player name prefix to plain message",
			message:    "I bow to the elder.",
			playerName: "Lin",
			expected:   "Lin: I bow to the elder.",
		},
		{
			name:       "preserves existing speaker prefix",
			message:    "Narrator: The bell tolls.",
			playerName: "Lin",
			expected:   "Narrator: The bell tolls.",
		},
		{
			name:       "preserves colon in sentence",
			message:    "I read the scroll: it names a valley.",
			playerName: "Lin",
			expected:   "I read the scroll: it names a valley.",
		},
		{
			name:       "handles empty message",
			message:    "",
			playerName: "Lin",
			expected:   "Lin: ",
		},
		{
			name:       "long text before colon is not a speaker",
			message:    "This is a really really really really really long name: message",
			playerName: "Lin",
			expected:   "Lin: This is a really really really really really long name: message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWithPlayerName(tt.message, tt.playerName)
			if result != tt.expected {
				t.Errorf("FormatWithPlayerName(%q, %q) = %q; want %q",
					tt.message, tt.playerName, result, tt.expected)
			}
		})
	}
}

func TestPromptRequest_Validate(t *testing.T) {
	id := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")

	tests := []struct {
		name    string
		req     PromptRequest
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid short message",
			req:     PromptRequest{GameStateID: id, Kind: "continue", Message: "I meditate."},
			wantErr: false,
		},
		{
			name:    "valid message at max length",
			req:     PromptRequest{GameStateID: id, Kind: "continue", Message: strings.Repeat("a", MaxMessageLength)},
			wantErr: false,
		},
		{
			name:    "message too long",
			req:     PromptRequest{GameStateID: id, Kind: "continue", Message: strings.Repeat("a", MaxMessageLength+1)},
			wantErr: true,
			errMsg:  "exceeds maximum length",
		},
		{
			name:    "empty message",
			req:     PromptRequest{GameStateID: id, Kind: "continue"},
			wantErr: true,
			errMsg:  "cannot be empty",
		},
		{
			name:    "initial prompt needs no message",
			req:     PromptRequest{GameStateID: id, Kind: "initial"},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("Validate() error = %v, want error containing %q", err, tt.errMsg)
			}
		})
	}
}
