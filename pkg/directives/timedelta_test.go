package directives

import "testing"

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes  int64
		expected string
	}{
		{0, "less than a minute"},
		{1, "1 minute"},
		{45, "45 minutes"},
		{60, "1 hour"},
		{61, "1 hour, 1 minute"},
		{24 * 60, "1 day"},
		{2*24*60 + 3*60, "2 days, 3 hours"},
		{3*24*60 + 5, "3 days, 5 minutes"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.minutes); got != tt.expected {
			t.Errorf("formatDuration(%d) = %q, want %q", tt.minutes, got, tt.expected)
		}
	}
}
