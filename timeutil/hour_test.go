package timeutil

import (
	"testing"
	"time"
)

func TestCurrentHour(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{"rounds down below half past", time.Date(2024, 3, 1, 14, 29, 59, 999, time.UTC), "2024-03-01T14:00"},
		{"exact hour", time.Date(2024, 3, 1, 14, 0, 0, 0, time.UTC), "2024-03-01T14:00"},
		{"rounds up at half past", time.Date(2024, 3, 1, 14, 30, 0, 0, time.UTC), "2024-03-01T15:00"},
		{"carries into next day", time.Date(2024, 3, 1, 23, 45, 10, 0, time.UTC), "2024-03-02T00:00"},
		{"carries into next month", time.Date(2024, 2, 29, 23, 31, 0, 0, time.UTC), "2024-03-01T00:00"},
		{"carries into next year", time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC), "2024-01-01T00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CurrentHour(tt.now, nil); got != tt.want {
				t.Fatalf("CurrentHour(%v) = %q, want %q", tt.now, got, tt.want)
			}
		})
	}
}

func TestCurrentHourInLocation(t *testing.T) {
	berlin := time.FixedZone("CET", 3600)
	now := time.Date(2024, 3, 1, 22, 40, 0, 0, time.UTC)

	if got, want := CurrentHour(now, berlin), "2024-03-02T00:00"; got != want {
		t.Fatalf("CurrentHour in CET = %q, want %q", got, want)
	}
}

func TestRoundToHourKeepsLocation(t *testing.T) {
	loc := time.FixedZone("X", -5*3600)
	got := RoundToHour(time.Date(2024, 6, 10, 8, 15, 42, 5, loc))

	if got.Location() != loc {
		t.Fatalf("location changed to %v", got.Location())
	}
	if got.Minute() != 0 || got.Second() != 0 || got.Nanosecond() != 0 || got.Hour() != 8 {
		t.Fatalf("RoundToHour = %v, want 08:00:00", got)
	}
}
