package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jwebster45206/story-directives/pkg/directives"
	"github.com/jwebster45206/story-directives/pkg/state"
)

// GameStateValidator checks a saved game state file and compiles its directives.
type GameStateValidator struct {
	Preview bool
	errors  []string
}

// ValidateFile reads, strictly decodes and compiles filename.
func (v *GameStateValidator) ValidateFile(filename string) (*directives.Document, error) {
	fmt.Printf("Validating %s...\n", filename)

	baseName := filepath.Base(filename)
	if !strings.HasSuffix(baseName, ".json") {
		return nil, fmt.Errorf("game state file must have .json extension: %s", baseName)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	return v.Validate(data)
}

// Validate strictly decodes data and compiles it. Structural problems are
// collected and reported together; compile errors are reported as-is.
func (v *GameStateValidator) Validate(data []byte) (*directives.Document, error) {
	v.errors = nil

	if !json.Valid(data) {
		return nil, fmt.Errorf("file contains invalid JSON")
	}

	var gs state.GameState
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&gs); err != nil {
		return nil, fmt.Errorf("failed strict JSON unmarshaling: %w", err)
	}

	v.validateGameState(&gs)
	if len(v.errors) > 0 {
		return nil, fmt.Errorf("validation errors:\n%s", strings.Join(v.errors, "\n"))
	}

	doc, err := directives.New().WithPreview(v.Preview).Compile(gs.Clone(), gs.RuleToggles, gs.WorldDate)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (v *GameStateValidator) validateGameState(gs *state.GameState) {
	if err := gs.WorldDate.Validate(); err != nil {
		v.addError(fmt.Sprintf("world_date: %v", err))
	}

	seen := make(map[string]bool, len(gs.Events))
	for i, ev := range gs.Events {
		v.validateIDFormat(fmt.Sprintf("events[%d].id", i), ev.ID)
		if ev.ID != "" && seen[ev.ID] {
			v.addError(fmt.Sprintf("events[%d].id '%s' is duplicated", i, ev.ID))
		}
		seen[ev.ID] = true
		if strings.TrimSpace(ev.Title) == "" {
			v.addError(fmt.Sprintf("events[%d].title is required", i))
		}
		v.validateIDFormat(fmt.Sprintf("events[%d].location_id", i), ev.LocationID)
	}

	for i, rule := range gs.UserCustomRules {
		if strings.TrimSpace(rule) == "" {
			v.addError(fmt.Sprintf("user_custom_rules[%d] is blank", i))
		}
	}

	if ps := gs.PlayerStatus; ps != nil && ps.Type == state.SpecialStatusPrisoner {
		if ps.OwnerName == "" {
			v.addError("player_status.owner_name is required for prisoners")
		}
		for name, val := range map[string]int{"willpower": ps.Willpower, "resistance": ps.Resistance, "obedience": ps.Obedience} {
			if val < 0 || val > 100 {
				v.addError(fmt.Sprintf("player_status.%s %d must be between 0 and 100", name, val))
			}
		}
	}
}

func (v *GameStateValidator) validateIDFormat(fieldName, id string) {
	if id == "" {
		return
	}

	if !isValidID(id) {
		v.addError(fmt.Sprintf("%s '%s' should be lowercase snake_case", fieldName, id))
	}
}

func (v *GameStateValidator) addError(msg string) {
	v.errors = append(v.errors, "  - "+msg)
}

var validIDRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)

func isValidID(id string) bool {
	return validIDRegex.MatchString(id)
}
