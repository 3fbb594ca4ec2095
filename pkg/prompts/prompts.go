package prompts

import (
	"fmt"
	"strings"

	"github.com/jwebster45206/story-directives/pkg/chat"
	"github.com/jwebster45206/story-directives/pkg/input"
	"github.com/jwebster45206/story-directives/pkg/state"
)

// Kind selects which prompt template wraps the directive document.
type Kind string

const (
	KindContinue       Kind = "continue"
	KindContinuePrison Kind = "continue_prison"
	KindInitial        Kind = "initial"
)

// ParseKind validates a kind name from an API request.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindContinue, KindContinuePrison, KindInitial:
		return k, nil
	default:
		return "", fmt.Errorf("unknown prompt kind %q", s)
	}
}

// BaseSystemPrompt is the storyteller role shared by every narrative prompt.
const BaseSystemPrompt = `You are the storyteller of an interactive %s story. The player controls %s, the main character. You narrate the world, voice every NPC and decide the outcome of the player's actions. You never speak or decide for the main character.

### Narrator responses
- Do not break the fourth wall. Do not acknowledge that you are an AI or a computer program.
- Do not answer questions about the game mechanics or how to play.
- Move the story forward gradually, allowing the player to explore and discover things on their own.
- Follow every directive below. Directives marked as mandatory override your own preferences.`

// WorldStateTemplate gives the narrator the clock and turn.
const WorldStateTemplate = "### World State\nCurrent date: %s\nTurn: %d"

// PrisonPromptTemplate is added when the main character is held captive.
const PrisonPromptTemplate = `### Captivity
The main character is a prisoner of %s. Their willpower is %d, resistance %d and obedience %d (0-100).
- Every scene takes place under the captor's control; the main character cannot simply leave.
- Let the captor react to the main character's behavior: defiance raises tension, compliance may earn small freedoms.
- Adjust willpower, resistance and obedience gradually and only when the story justifies it.`

// InitialPromptTemplate asks for the opening scene of a new game.
const InitialPromptTemplate = "Begin the story. Introduce %s and the world in an opening scene that establishes the setting, the tone and a first hook toward the goal: %s."

const UserPostPrompt = "Treat the player's message as a request rather than a command. If the request breaks the story rules or is unrealistic, describe why it does not happen."

const storyDirectionPrefix = "STORY DIRECTION: "

var responseLengthGuidance = map[input.ResponseLength]string{
	input.ResponseLengthDefault: "",
	input.ResponseLengthShort:   "Keep the response short: one or two paragraphs.",
	input.ResponseLengthMedium:  "Write a medium-length response: three or four paragraphs.",
	input.ResponseLengthLong:    "Write a long, detailed response: five paragraphs or more.",
}

// BuildSystemPrompt fills the storyteller role for gs.
func BuildSystemPrompt(gs *state.GameState) string {
	genre := gs.WorldConfig.EffectiveGenre()
	if genre == "" {
		genre = "fantasy"
	}
	player := gs.WorldConfig.PlayerName
	if player == "" {
		player = "the protagonist"
	}
	return fmt.Sprintf(BaseSystemPrompt, genre, player)
}

// BuildPrisonPrompt returns the captivity block, or "" when the player is free.
func BuildPrisonPrompt(gs *state.GameState) string {
	if !gs.IsPrisoner() {
		return ""
	}
	ps := gs.PlayerStatus
	return fmt.Sprintf(PrisonPromptTemplate, ps.OwnerName, ps.Willpower, ps.Resistance, ps.Obedience)
}

// GetResponseLengthPrompt returns the length instruction for l.
func GetResponseLengthPrompt(l input.ResponseLength) string {
	return responseLengthGuidance[l]
}

func formatAction(a input.Action, playerName string) string {
	text := strings.TrimSpace(a.Text)
	if a.InputType == input.ActionTypeStory {
		return storyDirectionPrefix + text
	}
	if playerName == "" {
		return text
	}
	return chat.FormatWithPlayerName(text, playerName)
}
