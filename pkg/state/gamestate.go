package state

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jwebster45206/story-directives/pkg/chat"
)

// Difficulty selects how forgiving the narrator is.
type Difficulty string

const (
	DifficultyEasy      Difficulty = "easy"
	DifficultyNormal    Difficulty = "normal"
	DifficultyHard      Difficulty = "hard"
	DifficultyNightmare Difficulty = "nightmare"
)

// UnmarshalText accepts any casing and surrounding whitespace.
func (d *Difficulty) UnmarshalText(text []byte) error {
	*d = Difficulty(normalizeName(text))
	return nil
}

// NSFWTier selects the register of adult content when NSFW mode is on.
type NSFWTier string

const (
	NSFWTierRomantic NSFWTier = "romantic"
	NSFWTierExplicit NSFWTier = "explicit"
	NSFWTierRough    NSFWTier = "rough"
)

// UnmarshalText accepts any casing and surrounding whitespace.
func (t *NSFWTier) UnmarshalText(text []byte) error {
	*t = NSFWTier(normalizeName(text))
	return nil
}

func normalizeName(text []byte) string {
	return strings.ToLower(strings.TrimSpace(string(text)))
}

// GenreCustom marks a world whose genre name is supplied by the player.
const GenreCustom = "custom"

// WorldConfig holds the settings chosen when the world was created.
type WorldConfig struct {
	Genre              string     `json:"genre"`
	CustomGenreName    string     `json:"custom_genre_name,omitempty"` // Used when Genre is "custom"
	Difficulty         Difficulty `json:"difficulty"`
	NSFWMode           bool       `json:"nsfw_mode"`
	NSFWTier           NSFWTier   `json:"nsfw_tier,omitempty"`
	PlayerName         string     `json:"player_name,omitempty"`
	PlayerGoal         string     `json:"player_goal,omitempty"`
	WritingStyleSample string     `json:"writing_style_sample,omitempty"` // Prose sample the narrator should imitate
}

// EffectiveGenre returns the genre name to show in prompts.
func (wc WorldConfig) EffectiveGenre() string {
	if wc.Genre == GenreCustom && wc.CustomGenreName != "" {
		return wc.CustomGenreName
	}
	return wc.Genre
}

// SpecialStatusPrisoner is the only special status with its own prompt kind.
const SpecialStatusPrisoner = "prisoner"

// SpecialStatus describes a player who is held by someone else.
type SpecialStatus struct {
	Type       string `json:"type"`       // e.g. "prisoner"
	OwnerName  string `json:"owner_name"` // Captor or master
	Willpower  int    `json:"willpower"`
	Resistance int    `json:"resistance"`
	Obedience  int    `json:"obedience"`
}

// GameState is a snapshot of a running game.
// Values handed to the directive compiler must not be shared with a live game loop;
// use Clone or a freshly decoded copy.
type GameState struct {
	ID              uuid.UUID          `json:"id"`
	WorldConfig     WorldConfig        `json:"world_config"`
	RuleToggles     RuleToggleConfig   `json:"rule_toggles,omitempty"`
	TurnCounter     int                `json:"turn_counter"`             // Successful player turns so far
	WorldDate       WorldDate          `json:"world_date"`               // Current in-world time
	Events          []Event            `json:"events,omitempty"`         // Known world events, in creation order
	UserCustomRules []string           `json:"user_custom_rules,omitempty"`
	PlayerStatus    *SpecialStatus     `json:"player_status,omitempty"`
	ChatHistory     []chat.ChatMessage `json:"chat_history,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// NewGameState creates a game with default rule toggles and a fresh ID.
func NewGameState(wc WorldConfig) *GameState {
	now := time.Now()
	return &GameState{
		ID:          uuid.New(),
		WorldConfig: wc,
		RuleToggles: DefaultRuleToggles(),
		WorldDate:   WorldDate{Day: 1, Month: 1, Year: 1, Hour: 8},
		ChatHistory: make([]chat.ChatMessage, 0),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Validate checks invariants that do not depend on enumerations.
func (gs *GameState) Validate() error {
	if gs.TurnCounter < 0 {
		return fmt.Errorf("turn counter must not be negative, got %d", gs.TurnCounter)
	}
	return nil
}

// IsPrisoner reports whether the player is currently held captive.
func (gs *GameState) IsPrisoner() bool {
	return gs.PlayerStatus != nil && gs.PlayerStatus.Type == SpecialStatusPrisoner
}

// Clone returns a deep copy that shares no slices, maps or pointers with gs.
func (gs *GameState) Clone() GameState {
	c := *gs
	c.RuleToggles = maps.Clone(gs.RuleToggles)
	c.Events = slices.Clone(gs.Events)
	c.UserCustomRules = slices.Clone(gs.UserCustomRules)
	c.ChatHistory = slices.Clone(gs.ChatHistory)
	if gs.PlayerStatus != nil {
		ps := *gs.PlayerStatus
		c.PlayerStatus = &ps
	}
	return c
}
