package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jwebster45206/story-directives/pkg/chat"
	"github.com/jwebster45206/story-directives/pkg/directives"
	"github.com/jwebster45206/story-directives/pkg/input"
	"github.com/jwebster45206/story-directives/pkg/prompts"
	"github.com/jwebster45206/story-directives/pkg/state"
	"github.com/jwebster45206/story-directives/pkg/textfilter"
)

const PlaceHolderText = "Type an action here..."

type focusArea int

const (
	focusSections focusArea = iota
	focusInput
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// ConsoleUI is the BubbleTea model for the directive preview screen.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	config     *ConsoleConfig
	gameState  *state.GameState
	controller *input.Controller

	doc        *directives.Document
	compileErr error
	collapsed  map[directives.SectionID]bool
	cursor     int
	focus      focusArea
	lastPrompt []chat.ChatMessage
	status     string

	sectionsViewport viewport.Model
	metaViewport     viewport.Model
	textarea         textarea.Model
	ready            bool
	width            int
	height           int

	// Quit confirmation state
	showQuitModal bool
}

type copiedMsg struct {
	err error
}

var (
	sectionsPanelStyle = lipgloss.NewStyle().
				PaddingTop(1).
				PaddingLeft(2)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(1).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	sectionTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("86")). // green
				Bold(true)

	selectedTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("205")).
				Bold(true)

	bodyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)
)

var separatorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("240")) // dark grey

func NewConsoleUI(cfg *ConsoleConfig, gs *state.GameState) ConsoleUI {
	ta := textarea.New()
	ta.Placeholder = PlaceHolderText
	ta.Prompt = promptStyle.Render(":: ")
	ta.CharLimit = chat.MaxMessageLength
	ta.SetWidth(50)
	ta.SetHeight(3)
	ta.ShowLineNumbers = false

	ctrl := input.NewController(nil)
	if !gs.WorldConfig.NSFWMode {
		ctrl.WithCleaner(textfilter.New())
	}

	m := ConsoleUI{
		config:           cfg,
		gameState:        gs,
		controller:       ctrl,
		collapsed:        make(map[directives.SectionID]bool),
		focus:            focusSections,
		sectionsViewport: viewport.New(60, 20),
		metaViewport:     viewport.New(30, 20),
		textarea:         ta,
	}
	m.recompile()
	return m
}

// recompile rebuilds the directive document from the current game state.
func (m *ConsoleUI) recompile() {
	snapshot := m.gameState.Clone()
	m.doc, m.compileErr = directives.New().
		WithPreview(m.config.Preview).
		Compile(snapshot, snapshot.RuleToggles, snapshot.WorldDate)
	if m.doc != nil && m.cursor >= len(m.doc.Sections) {
		m.cursor = max(len(m.doc.Sections)-1, 0)
	}
	m.refreshContent()
}

func (m *ConsoleUI) refreshContent() {
	width := m.sectionsViewport.Width - 2
	if m.compileErr != nil {
		m.sectionsViewport.SetContent(errorStyle.Render("Compile failed: " + m.compileErr.Error()))
	} else {
		m.sectionsViewport.SetContent(renderSections(m.doc, m.collapsed, m.cursor, width, m.focus == focusSections))
	}
	m.metaViewport.SetContent(m.writeMetadata())
}

func (m ConsoleUI) Init() tea.Cmd {
	return nil
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.sectionsViewport, vpCmd = m.sectionsViewport.Update(msg)
		return m, vpCmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		sectionsWidth := int(float64(m.width)*0.7) - 4
		metaWidth := m.width - sectionsWidth - 6

		m.sectionsViewport.Width = sectionsWidth - 2
		m.sectionsViewport.Height = m.height - 8
		m.metaViewport.Width = metaWidth - 2
		m.metaViewport.Height = m.height - 2
		m.textarea.SetWidth(sectionsWidth - 4)
		m.ready = true
		m.refreshContent()
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.status = "Copy failed: " + msg.err.Error()
		} else {
			m.status = "Directives copied to clipboard"
		}
		m.refreshContent()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		case tea.KeyTab:
			m.toggleFocus()
			return m, nil
		}

		if m.focus == focusSections {
			return m.updateSections(msg)
		}
		if cmd, handled := m.updateInput(msg); handled {
			return m, cmd
		}
	}

	if m.focus == focusInput {
		m.textarea, tiCmd = m.textarea.Update(msg)
	}
	return m, tiCmd
}

func (m *ConsoleUI) toggleFocus() {
	if m.focus == focusSections {
		m.focus = focusInput
		m.textarea.Focus()
	} else {
		m.focus = focusSections
		m.textarea.Blur()
	}
	m.refreshContent()
}

func (m ConsoleUI) updateSections(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var count int
	if m.doc != nil {
		count = len(m.doc.Sections)
	}

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < count-1 {
			m.cursor++
		}
	case " ", "enter":
		if count > 0 {
			id := m.doc.Sections[m.cursor].ID
			m.collapsed[id] = !m.collapsed[id]
		}
	case "a":
		collapseAll := !allCollapsed(m.doc, m.collapsed)
		if m.doc != nil {
			for _, s := range m.doc.Sections {
				m.collapsed[s.ID] = collapseAll
			}
		}
	case "c":
		if m.doc == nil {
			m.status = "Nothing to copy"
			break
		}
		return m, copyDocument(m.doc.String())
	case "p":
		m.config.Preview = !m.config.Preview
		m.recompile()
		return m, nil
	case "1", "2", "3", "4":
		id := state.RuleOrder[int(msg.String()[0]-'1')]
		m.gameState.RuleToggles[id] = !m.gameState.RuleToggles[id]
		m.recompile()
		return m, nil
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.sectionsViewport, cmd = m.sectionsViewport.Update(msg)
		return m, cmd
	}

	m.refreshContent()
	return m, nil
}

// updateInput handles keys that belong to the controller rather than the textarea.
func (m *ConsoleUI) updateInput(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.Type {
	case tea.KeyEnter:
		m.controller.SetText(m.textarea.Value())
		action, ok := m.controller.Submit()
		if !ok {
			return nil, true
		}
		m.textarea.Reset()
		m.applyAction(action)
		return nil, true
	case tea.KeyCtrlT:
		if m.controller.ActionType() == input.ActionTypeAction {
			m.controller.SetActionType(input.ActionTypeStory)
		} else {
			m.controller.SetActionType(input.ActionTypeAction)
		}
		m.refreshContent()
		return nil, true
	case tea.KeyCtrlL:
		m.controller.SetResponseLength(nextResponseLength(m.controller.ResponseLength()))
		m.refreshContent()
		return nil, true
	}
	return nil, false
}

// applyAction builds the prompt for the current turn, then advances the game
// one turn and recompiles so the next turn's directives are shown.
func (m *ConsoleUI) applyAction(a input.Action) {
	if m.compileErr != nil {
		m.status = "Fix the game state before taking a turn"
		m.refreshContent()
		return
	}

	kind := prompts.KindContinue
	if m.gameState.IsPrisoner() {
		kind = prompts.KindContinuePrison
	}
	snapshot := m.gameState.Clone()
	msgs, err := prompts.BuildPrompt(kind, &snapshot, m.doc, a, m.config.HistoryLimit)
	if err != nil {
		m.status = "Prompt failed: " + err.Error()
		m.refreshContent()
		return
	}
	m.lastPrompt = msgs

	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Role == chat.ChatRoleUser {
			m.gameState.ChatHistory = append(m.gameState.ChatHistory, msgs[i])
			break
		}
	}
	m.gameState.TurnCounter++
	m.gameState.WorldDate = m.gameState.WorldDate.AddMinutes(m.config.TurnMinutes)
	m.status = fmt.Sprintf("Turn %d taken", m.gameState.TurnCounter)
	m.recompile()
}

func nextResponseLength(l input.ResponseLength) input.ResponseLength {
	switch l {
	case input.ResponseLengthDefault:
		return input.ResponseLengthShort
	case input.ResponseLengthShort:
		return input.ResponseLengthMedium
	case input.ResponseLengthMedium:
		return input.ResponseLengthLong
	default:
		return input.ResponseLengthDefault
	}
}

func allCollapsed(doc *directives.Document, collapsed map[directives.SectionID]bool) bool {
	if doc == nil {
		return false
	}
	for _, s := range doc.Sections {
		if !collapsed[s.ID] {
			return false
		}
	}
	return true
}

func copyDocument(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(text)}
	}
}

func (m ConsoleUI) writeMetadata() string {
	gs := m.gameState
	var content strings.Builder
	content.WriteString(titleStyle.Render("GAME STATE") + "\n\n")

	content.WriteString("Game ID:\n")
	content.WriteString(gs.ID.String()[:8] + "...\n\n")

	genre := gs.WorldConfig.EffectiveGenre()
	if genre == "" {
		genre = "none"
	}
	content.WriteString(fmt.Sprintf("Genre: %s\n", genre))
	content.WriteString(fmt.Sprintf("Difficulty: %s\n", gs.WorldConfig.Difficulty))
	if gs.WorldConfig.NSFWMode {
		content.WriteString(fmt.Sprintf("NSFW: %s\n", gs.WorldConfig.NSFWTier))
	}
	content.WriteString(fmt.Sprintf("Turn: %d\n", gs.TurnCounter))
	content.WriteString(fmt.Sprintf("Date: %s\n", gs.WorldDate))
	content.WriteString(fmt.Sprintf("Events: %d\n\n", len(gs.Events)))

	content.WriteString("Narration rules:\n")
	for i, id := range state.RuleOrder {
		mark := " "
		if gs.RuleToggles[id] {
			mark = "x"
		}
		content.WriteString(fmt.Sprintf("%d [%s] %s\n", i+1, mark, id))
	}
	content.WriteString("\n")

	mode := "production"
	if m.config.Preview {
		mode = "preview"
	}
	content.WriteString(fmt.Sprintf("Mode: %s\n", mode))
	content.WriteString(fmt.Sprintf("Input: %s, %s\n", m.controller.ActionType(), m.controller.ResponseLength()))
	if len(m.lastPrompt) > 0 {
		content.WriteString(fmt.Sprintf("Last prompt: %d messages\n", len(m.lastPrompt)))
	}
	content.WriteString("\n")

	content.WriteString("Commands:\n")
	content.WriteString("• Tab: Sections/Input\n")
	content.WriteString("• ↑/↓ Space: Collapse\n")
	content.WriteString("• a: Collapse all\n")
	content.WriteString("• c: Copy\n")
	content.WriteString("• p: Preview mode\n")
	content.WriteString("• 1-4: Toggle rules\n")
	content.WriteString("• Enter: Take turn\n")
	content.WriteString("• Ctrl+T: Action/Story\n")
	content.WriteString("• Ctrl+L: Length\n")
	content.WriteString("• Esc: Quit\n")

	return content.String()
}

func (m ConsoleUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyEnter:
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y":
				return m, tea.Quit
			case "n", "N":
				m.showQuitModal = false
				return m, nil
			}
		}
	}

	return m, nil
}

func (m ConsoleUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Quit Preview?"))
	content.WriteString("\n\n")
	content.WriteString("Changes made here are not saved.")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit, N to continue, or Ctrl+C to force quit"))

	modal := modalStyle.Width(50).Render(content.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) View() string {
	if m.showQuitModal {
		return m.renderQuitModal()
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	sectionsWidth := int(float64(m.width)*0.7) - 4
	metaWidth := m.width - sectionsWidth - 6

	statusLine := ""
	if m.status != "" {
		statusLine = statusStyle.Render(m.status)
	}

	sectionsPanel := sectionsPanelStyle.Width(sectionsWidth).Height(m.height - 2).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.sectionsViewport.View(),
			statusLine,
			separatorStyle.Render(strings.Repeat("─", max(sectionsWidth-4, 0))),
			m.textarea.View(),
		),
	)

	metaPanel := metaPanelStyle.Width(metaWidth).Height(m.height - 2).Render(
		m.metaViewport.View(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, sectionsPanel, metaPanel)
}
