// Package input turns raw player input into actions for the next turn.
package input

import (
	"strings"
	"sync"
)

// ActionType tells the narrator how to read the player's text.
type ActionType string

const (
	ActionTypeAction ActionType = "action" // Something the character does or says
	ActionTypeStory  ActionType = "story"  // A steer for the story itself
)

// ResponseLength is the player's requested narration length.
type ResponseLength string

const (
	ResponseLengthDefault ResponseLength = "default"
	ResponseLengthShort   ResponseLength = "short"
	ResponseLengthMedium  ResponseLength = "medium"
	ResponseLengthLong    ResponseLength = "long"
)

// Action is one accepted player submission.
type Action struct {
	Text           string         `json:"text"`
	IsChoice       bool           `json:"is_choice"`
	InputType      ActionType     `json:"input_type"`
	ResponseLength ResponseLength `json:"response_length"`
}

// Status is what the surrounding screen knows about the game right now.
type Status struct {
	Loading          bool   // Waiting on a narrator response
	Summarizing      bool   // Summarizing a finished page
	ActivePage       bool   // Viewing the latest page, not history
	EditingMessageID string // Non-empty while a past message is being edited
}

func (s Status) canAct() bool {
	return !s.Loading && !s.Summarizing && s.ActivePage
}

// Cleaner rewrites player text before it is accepted.
type Cleaner interface {
	Clean(text string) string
}

// Controller holds the input box state and decides when a submission counts.
// Accepted submissions are passed to the handler and clear the input.
type Controller struct {
	mu             sync.Mutex
	text           string
	actionType     ActionType
	responseLength ResponseLength
	status         Status
	cleaner        Cleaner
	onAction       func(Action)
}

// NewController creates a controller on the active page with default settings.
// onAction may be nil when the caller only uses the returned actions.
func NewController(onAction func(Action)) *Controller {
	return &Controller{
		actionType:     ActionTypeAction,
		responseLength: ResponseLengthDefault,
		status:         Status{ActivePage: true},
		onAction:       onAction,
	}
}

// WithCleaner sets a text cleaner applied to accepted submissions.
func (c *Controller) WithCleaner(cl Cleaner) *Controller {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cleaner = cl
	return c
}

func (c *Controller) SetText(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = text
}

func (c *Controller) Text() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text
}

func (c *Controller) SetActionType(t ActionType) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.actionType = t
}

func (c *Controller) ActionType() ActionType {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.actionType
}

func (c *Controller) SetResponseLength(l ResponseLength) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.responseLength = l
}

func (c *Controller) ResponseLength() ResponseLength {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.responseLength
}

func (c *Controller) SetStatus(s Status) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = s
}

// Submit accepts the typed text when it is non-blank and the game can take a
// turn: not loading, not summarizing, on the active page, and no message is
// being edited.
func (c *Controller) Submit() (Action, bool) {
	c.mu.Lock()
	text := strings.TrimSpace(c.text)
	if text == "" || !c.status.canAct() || c.status.EditingMessageID != "" {
		c.mu.Unlock()
		return Action{}, false
	}
	a := Action{
		Text:           c.clean(text),
		InputType:      c.actionType,
		ResponseLength: c.responseLength,
	}
	c.text = ""
	handler := c.onAction
	c.mu.Unlock()

	if handler != nil {
		handler(a)
	}
	return a, true
}

// Choose accepts a suggested choice. Choices are always actions and are
// allowed while a message is being edited.
func (c *Controller) Choose(choice string) (Action, bool) {
	c.mu.Lock()
	if !c.status.canAct() {
		c.mu.Unlock()
		return Action{}, false
	}
	a := Action{
		Text:           c.clean(choice),
		IsChoice:       true,
		InputType:      ActionTypeAction,
		ResponseLength: c.responseLength,
	}
	c.text = ""
	handler := c.onAction
	c.mu.Unlock()

	if handler != nil {
		handler(a)
	}
	return a, true
}

// clean must be called with mu held.
func (c *Controller) clean(text string) string {
	if c.cleaner == nil {
		return text
	}
	return c.cleaner.Clean(text)
}
