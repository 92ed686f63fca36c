package timeutil

import (
	"testing"
	"time"
)

func TestStartOfDay(t *testing.T) {
	in := time.Date(2025, 6, 10, 23, 45, 12, 999, IST)
	got := StartOfDay(in)

	want := time.Date(2025, 6, 10, 0, 0, 0, 0, IST)
	if !got.Equal(want) {
		t.Errorf("StartOfDay = %v, want %v", got, want)
	}
}

func TestStartOfDayConvertsToIST(t *testing.T) {
	// 2025-06-10 20:00 UTC is already 2025-06-11 in IST.
	in := time.Date(2025, 6, 10, 20, 0, 0, 0, time.UTC)
	got := StartOfDay(in)

	want := time.Date(2025, 6, 11, 0, 0, 0, 0, IST)
	if !got.Equal(want) {
		t.Errorf("StartOfDay = %v, want %v", got, want)
	}
}

func TestDaysBetween(t *testing.T) {
	base := time.Date(2025, 6, 10, 15, 30, 0, 0, IST)

	tests := []struct {
		name string
		to   time.Time
		want int
	}{
		{"same day earlier hour", time.Date(2025, 6, 10, 1, 0, 0, 0, IST), 0},
		{"same day later hour", time.Date(2025, 6, 10, 23, 59, 0, 0, IST), 0},
		{"tomorrow", time.Date(2025, 6, 11, 0, 30, 0, 0, IST), 1},
		{"three days out", time.Date(2025, 6, 13, 9, 0, 0, 0, IST), 3},
		{"yesterday", time.Date(2025, 6, 9, 23, 0, 0, 0, IST), -1},
		{"across month boundary", time.Date(2025, 7, 1, 0, 0, 0, 0, IST), 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(base, tt.to); got != tt.want {
				t.Errorf("DaysBetween = %d, want %d", got, tt.want)
			}
		})
	}
}
