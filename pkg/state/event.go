package state

import "fmt"

// EventStatus is derived from the world date and an event's window.
type EventStatus string

const (
	EventUpcoming  EventStatus = "upcoming"
	EventActive    EventStatus = "active"
	EventConcluded EventStatus = "concluded"
)

// Event is a scheduled happening in the world, such as a tournament or festival.
// Events are created by world generation; their status is never stored.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Type        string    `json:"type"` // e.g. "tournament", "festival"
	Start       WorldDate `json:"start"`
	End         WorldDate `json:"end"`
	Discovered  bool      `json:"discovered"`
	LocationID  string    `json:"location_id,omitempty"`
}

// StatusAt derives the event status at now. Both window ends are inclusive.
func (e Event) StatusAt(now WorldDate) EventStatus {
	switch {
	case now.Compare(e.Start) < 0:
		return EventUpcoming
	case now.Compare(e.End) <= 0:
		return EventActive
	default:
		return EventConcluded
	}
}

// ValidateWindow checks both dates and that the window does not run backwards.
func (e Event) ValidateWindow() error {
	if err := e.Start.Validate(); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	if err := e.End.Validate(); err != nil {
		return fmt.Errorf("end: %w", err)
	}
	if e.End.Compare(e.Start) < 0 {
		return fmt.Errorf("end %s is before start %s", e.End, e.Start)
	}
	return nil
}
