package main

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jwebster45206/story-directives/pkg/chat"
	"github.com/jwebster45206/story-directives/pkg/directives"
	"github.com/jwebster45206/story-directives/pkg/input"
	"github.com/jwebster45206/story-directives/pkg/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUI(t *testing.T) ConsoleUI {
	t.Helper()
	gs := state.NewGameState(state.WorldConfig{
		Genre:      "fantasy",
		Difficulty: state.DifficultyNormal,
		PlayerName: "Aria",
	})
	gs.TurnCounter = 3
	cfg := &ConsoleConfig{Preview: true, TurnMinutes: 30, HistoryLimit: 20}
	m := NewConsoleUI(cfg, gs)
	require.NoError(t, m.compileErr)
	return m
}

func update(t *testing.T, m ConsoleUI, msg tea.Msg) (ConsoleUI, tea.Cmd) {
	t.Helper()
	model, cmd := m.Update(msg)
	next, ok := model.(ConsoleUI)
	require.True(t, ok)
	return next, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestConsoleUI_PreviewPlaceholder(t *testing.T) {
	m := newTestUI(t)
	assert.True(t, m.doc.Has(directives.SectionSpecialEvent))

	m, _ = update(t, m, runes("p"))
	assert.False(t, m.config.Preview)
	assert.False(t, m.doc.Has(directives.SectionSpecialEvent))
}

func TestConsoleUI_CollapseSections(t *testing.T) {
	m := newTestUI(t)
	first := m.doc.Sections[0].ID

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.True(t, m.collapsed[first])

	m, _ = update(t, m, runes("j"))
	assert.Equal(t, 1, m.cursor)

	m, _ = update(t, m, runes("a"))
	assert.True(t, allCollapsed(m.doc, m.collapsed))
	m, _ = update(t, m, runes("a"))
	for _, s := range m.doc.Sections {
		assert.False(t, m.collapsed[s.ID])
	}
}

func TestConsoleUI_ToggleRule(t *testing.T) {
	m := newTestUI(t)
	narration, ok := m.doc.Section(directives.SectionNarration)
	require.True(t, ok)
	before := narration.Body

	m, _ = update(t, m, runes("1"))
	assert.False(t, m.gameState.RuleToggles[state.RuleShowDontTell])

	narration, ok = m.doc.Section(directives.SectionNarration)
	require.True(t, ok)
	assert.NotEqual(t, before, narration.Body)
	assert.True(t, strings.HasSuffix(before, narration.Body))
}

func TestConsoleUI_TakeTurn(t *testing.T) {
	m := newTestUI(t)
	startDate := m.gameState.WorldDate

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, focusInput, m.focus)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.Equal(t, input.ResponseLengthShort, m.controller.ResponseLength())

	m.textarea.SetValue("I open the damn door")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, 4, m.gameState.TurnCounter)
	assert.Equal(t, startDate.AddMinutes(30), m.gameState.WorldDate)
	assert.Empty(t, m.textarea.Value())
	require.Len(t, m.gameState.ChatHistory, 1)
	assert.Equal(t, chat.ChatMessage{Role: chat.ChatRoleUser, Content: "Aria: I open the dang door"}, m.gameState.ChatHistory[0])
	assert.NotEmpty(t, m.lastPrompt)

	// Blank input is not a turn
	m.textarea.SetValue("   ")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 4, m.gameState.TurnCounter)
}

func TestConsoleUI_SpecialEventAfterTurn(t *testing.T) {
	m := newTestUI(t)
	m.config.Preview = false
	m.gameState.TurnCounter = 9
	m.recompile()
	assert.False(t, m.doc.Has(directives.SectionSpecialEvent))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m.textarea.SetValue("wait")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, 10, m.gameState.TurnCounter)
	assert.True(t, m.doc.Has(directives.SectionSpecialEvent))
}

func TestConsoleUI_Copy(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	defer func() { writeClipboard = orig }()

	m := newTestUI(t)
	m, cmd := update(t, m, runes("c"))
	require.NotNil(t, cmd)

	m, _ = update(t, m, cmd())
	assert.Equal(t, m.doc.String(), copied)
	assert.Equal(t, "Directives copied to clipboard", m.status)

	m, _ = update(t, m, copiedMsg{err: errors.New("no clipboard")})
	assert.Contains(t, m.status, "no clipboard")
}

func TestConsoleUI_CompileError(t *testing.T) {
	gs := state.NewGameState(state.WorldConfig{Difficulty: "legendary"})
	m := NewConsoleUI(&ConsoleConfig{}, gs)
	assert.Error(t, m.compileErr)
	assert.Nil(t, m.doc)

	m.applyAction(input.Action{Text: "go"})
	assert.Equal(t, 0, gs.TurnCounter)
}

func TestConsoleUI_QuitModal(t *testing.T) {
	m := newTestUI(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.showQuitModal)

	m, _ = update(t, m, runes("n"))
	assert.False(t, m.showQuitModal)
}

func TestRenderSections(t *testing.T) {
	doc := &directives.Document{Sections: []directives.Section{
		{ID: directives.SectionDifficulty, Title: "Difficulty Guidance", Body: "Be fair."},
		{ID: directives.SectionCustomRules, Title: "Player Custom Rules", Body: "- No magic"},
	}}

	out := renderSections(doc, map[directives.SectionID]bool{directives.SectionCustomRules: true}, 0, 80, true)
	assert.Contains(t, out, "Difficulty Guidance")
	assert.Contains(t, out, "Be fair.")
	assert.Contains(t, out, "Player Custom Rules")
	assert.NotContains(t, out, "No magic")

	assert.Contains(t, renderSections(nil, nil, 0, 80, false), "No directive sections.")
}
