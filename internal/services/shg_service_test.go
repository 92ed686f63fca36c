package services

import "testing"

func TestNextSHGNumber(t *testing.T) {
	tests := []struct {
		name    string
		prefix  string
		highest string
		want    string
	}{
		{"first of the year", "NAV2025", "", "NAV20250001"},
		{"increments sequence", "NAV2025", "NAV20250007", "NAV20250008"},
		{"pads to four digits", "NAV2025", "NAV20250099", "NAV20250100"},
		{"crosses a thousand", "NAV2025", "NAV20250999", "NAV20251000"},
		{"ignores other year", "NAV2026", "NAV20250042", "NAV20260001"},
		{"garbage suffix restarts", "NAV2025", "NAV2025abcd", "NAV20250001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nextSHGNumber(tt.prefix, tt.highest); got != tt.want {
				t.Errorf("nextSHGNumber(%q, %q) = %q, want %q", tt.prefix, tt.highest, got, tt.want)
			}
		})
	}
}
