package directives

import (
	"fmt"
	"strings"

	"github.com/jwebster45206/story-directives/pkg/state"
)

// eventTimeDelta describes how far now is from the part of the event window
// that matters for its status.
//
//	upcoming:  "starts in 2 days, 3 hours"
//	active:    "ends in 40 minutes"
//	concluded: "ended 1 day ago"
func eventTimeDelta(ev state.Event, now state.WorldDate) string {
	switch ev.StatusAt(now) {
	case state.EventUpcoming:
		return "starts in " + formatDuration(ev.Start.Minutes()-now.Minutes())
	case state.EventActive:
		left := ev.End.Minutes() - now.Minutes()
		if left == 0 {
			return "ends now"
		}
		return "ends in " + formatDuration(left)
	default:
		return "ended " + formatDuration(now.Minutes()-ev.End.Minutes()) + " ago"
	}
}

// formatDuration renders a positive minute count as days, hours and minutes,
// skipping zero units.
func formatDuration(minutes int64) string {
	const perDay = state.HoursPerDay * state.MinutesPerHour

	days := minutes / perDay
	minutes -= days * perDay
	hours := minutes / state.MinutesPerHour
	minutes -= hours * state.MinutesPerHour

	var parts []string
	if days > 0 {
		parts = append(parts, plural(days, "day"))
	}
	if hours > 0 {
		parts = append(parts, plural(hours, "hour"))
	}
	if minutes > 0 {
		parts = append(parts, plural(minutes, "minute"))
	}
	if len(parts) == 0 {
		return "less than a minute"
	}
	return strings.Join(parts, ", ")
}

func plural(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
