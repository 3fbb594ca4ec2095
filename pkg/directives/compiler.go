// Package directives compiles a game state snapshot into the instruction
// document that narrative prompts embed.
package directives

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jwebster45206/story-directives/pkg/state"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SpecialEventInterval is the number of turns between major story beats.
const SpecialEventInterval = 10

// SectionID identifies a directive section.
type SectionID string

const (
	SectionNarration    SectionID = "narration"
	SectionDifficulty   SectionID = "difficulty"
	SectionNSFW         SectionID = "nsfw"
	SectionWorldEvents  SectionID = "world_events"
	SectionSpecialEvent SectionID = "special_event"
	SectionWritingStyle SectionID = "writing_style"
	SectionCustomRules  SectionID = "custom_rules"
)

// Section is one titled block of directive text.
type Section struct {
	ID    SectionID `json:"id"`
	Title string    `json:"title"`
	Body  string    `json:"body"`
}

// Document is the ordered set of included sections.
type Document struct {
	Sections []Section `json:"sections"`
}

// String renders the document as prompt text. Each section is a "### Title"
// heading followed by its body; sections are separated by a blank line.
func (d *Document) String() string {
	if d == nil || len(d.Sections) == 0 {
		return ""
	}
	parts := make([]string, 0, len(d.Sections))
	for _, s := range d.Sections {
		parts = append(parts, "### "+s.Title+"\n"+s.Body)
	}
	return strings.Join(parts, "\n\n")
}

// Section returns the section with the given ID, if it was included.
func (d *Document) Section(id SectionID) (Section, bool) {
	if d == nil {
		return Section{}, false
	}
	for _, s := range d.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// Has reports whether the section was included.
func (d *Document) Has(id SectionID) bool {
	_, ok := d.Section(id)
	return ok
}

// compileInput is everything a section builder may read.
type compileInput struct {
	gs      *state.GameState
	toggles state.RuleToggleConfig
	now     state.WorldDate
	preview bool
}

// sectionBuilder returns the section body and whether to include it.
// A builder computes its whole body before returning.
type sectionBuilder func(in *compileInput) (body string, include bool, err error)

type sectionDef struct {
	id    SectionID
	title string
	build sectionBuilder
}

// sections is the fixed section order of every compiled document.
var sections = []sectionDef{
	{SectionNarration, "Narration & Vividness Rules", buildNarration},
	{SectionDifficulty, "Difficulty Guidance", buildDifficulty},
	{SectionNSFW, "Adult Content Guidance (18+)", buildNSFW},
	{SectionWorldEvents, "World Event Guidance", buildWorldEvents},
	{SectionSpecialEvent, "Special Event Guidance (every " + strconv.Itoa(SpecialEventInterval) + " turns)", buildSpecialEvent},
	{SectionWritingStyle, "Writing Style Guidance", buildWritingStyle},
	{SectionCustomRules, "Player Custom Rules", buildCustomRules},
}

// Compiler assembles directive documents. The zero value compiles in
// production mode; preview mode also emits informational placeholders.
type Compiler struct {
	preview bool
}

// New creates a compiler in production mode.
func New() *Compiler {
	return &Compiler{}
}

// WithPreview toggles preview mode.
func (c *Compiler) WithPreview(preview bool) *Compiler {
	c.preview = preview
	return c
}

// Compile builds the directive document for gs.
//
// gs is taken by value and must be an owned snapshot (see state.GameState.Clone).
// now is the current world date used to derive event status; it is never
// read from a clock. On error no document is returned.
func (c *Compiler) Compile(gs state.GameState, toggles state.RuleToggleConfig, now state.WorldDate) (*Document, error) {
	for id := range toggles {
		if !state.IsKnownRule(id) {
			return nil, &ConfigError{Field: "rule_toggles", Value: string(id), Reason: "unknown rule"}
		}
	}
	if err := gs.Validate(); err != nil {
		return nil, &ConfigError{Field: "turn_counter", Value: strconv.Itoa(gs.TurnCounter), Reason: err.Error()}
	}

	in := &compileInput{gs: &gs, toggles: toggles, now: now, preview: c.preview}
	doc := &Document{Sections: make([]Section, 0, len(sections))}
	for _, def := range sections {
		body, include, err := def.build(in)
		if err != nil {
			return nil, fmt.Errorf("compile %s section: %w", def.id, err)
		}
		if !include {
			continue
		}
		doc.Sections = append(doc.Sections, Section{ID: def.id, Title: def.title, Body: body})
	}
	return doc, nil
}

// Compile is a convenience for production-mode compilation.
func Compile(gs state.GameState, toggles state.RuleToggleConfig, now state.WorldDate) (*Document, error) {
	return New().Compile(gs, toggles, now)
}

// IsSpecialEventTurn reports whether turn triggers a special story event.
func IsSpecialEventTurn(turn int) bool {
	return turn > 0 && turn%SpecialEventInterval == 0
}

func buildNarration(in *compileInput) (string, bool, error) {
	enabled := in.toggles.Enabled()
	if len(enabled) == 0 {
		return "", false, nil
	}
	blocks := make([]string, 0, len(enabled))
	for _, id := range enabled {
		blocks = append(blocks, narrationRules[id])
	}
	return strings.Join(blocks, "\n\n"), true, nil
}

func buildDifficulty(in *compileInput) (string, bool, error) {
	d := in.gs.WorldConfig.Difficulty
	text, ok := difficultyGuidance[d]
	if !ok {
		return "", false, &ConfigError{Field: "world_config.difficulty", Value: string(d), Reason: "unknown difficulty"}
	}
	return text, true, nil
}

func buildNSFW(in *compileInput) (string, bool, error) {
	wc := in.gs.WorldConfig
	if !wc.NSFWMode {
		return "", false, nil
	}
	if wc.NSFWTier == "" {
		return "", false, &ConfigError{Field: "world_config.nsfw_tier", Reason: "required when nsfw mode is enabled"}
	}
	text, ok := nsfwGuidance[wc.NSFWTier]
	if !ok {
		return "", false, &ConfigError{Field: "world_config.nsfw_tier", Value: string(wc.NSFWTier), Reason: "unknown nsfw tier"}
	}
	return text, true, nil
}

func buildWorldEvents(in *compileInput) (string, bool, error) {
	events := in.gs.Events
	if len(events) == 0 {
		return "", false, nil
	}
	if err := in.now.Validate(); err != nil {
		return "", false, &ConfigError{Field: "world_date", Value: in.now.String(), Reason: err.Error()}
	}

	upper := cases.Upper(language.English)
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(eventGuidanceHeader, in.gs.WorldConfig.EffectiveGenre()))
	for i, ev := range events {
		if err := ev.ValidateWindow(); err != nil {
			return "", false, &ConfigError{Field: fmt.Sprintf("events[%d]", i), Value: ev.ID, Reason: err.Error()}
		}
		status := ev.StatusAt(in.now)
		sb.WriteString(fmt.Sprintf("\n- **%s (%s) %s (%s).** %s",
			ev.Title, ev.Type, upper.String(string(status)), eventTimeDelta(ev, in.now), eventStatusGuidance[status]))
	}
	return sb.String(), true, nil
}

func buildSpecialEvent(in *compileInput) (string, bool, error) {
	turn := in.gs.TurnCounter
	if IsSpecialEventTurn(turn) {
		goal := in.gs.WorldConfig.PlayerGoal
		if goal == "" {
			goal = "unknown"
		}
		return fmt.Sprintf(specialEventTriggered, turn, goal), true, nil
	}
	if in.preview {
		return fmt.Sprintf(specialEventPlaceholder, SpecialEventInterval, turn), true, nil
	}
	return "", false, nil
}

func buildWritingStyle(in *compileInput) (string, bool, error) {
	sample := strings.TrimSpace(in.gs.WorldConfig.WritingStyleSample)
	if sample == "" {
		return "", false, nil
	}
	return fmt.Sprintf(writingStyleGuidance, sample), true, nil
}

func buildCustomRules(in *compileInput) (string, bool, error) {
	var sb strings.Builder
	n := 0
	for _, rule := range in.gs.UserCustomRules {
		// Each rule stays on its own bullet line; embedded line breaks
		// would otherwise start new list items or headings.
		rule = strings.Join(strings.Fields(rule), " ")
		if rule == "" {
			continue
		}
		if n == 0 {
			sb.WriteString(customRulesHeader)
		}
		sb.WriteString("\n- " + rule)
		n++
	}
	if n == 0 {
		return "", false, nil
	}
	return sb.String(), true, nil
}
