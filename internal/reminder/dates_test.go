package reminder

import (
	"testing"
	"time"
)

func TestParseDateLayouts(t *testing.T) {
	valid := []string{
		"2026-03-15",
		"2026-03-15T10:30:00Z",
		"2026-03-15T10:30:00",
		"Mar 15, 2026",
		"March 15, 2026",
	}
	for _, s := range valid {
		d, err := ParseDate(s, time.UTC)
		if err != nil {
			t.Fatalf("ParseDate(%q) failed: %v", s, err)
		}
		if d.Year() != 2026 || d.Month() != time.March || d.Day() != 15 {
			t.Fatalf("ParseDate(%q) = %v, want March 15 2026", s, d)
		}
	}

	invalid := []string{"", "15/03/2026", "next tuesday"}
	for _, s := range invalid {
		if _, err := ParseDate(s, time.UTC); err == nil {
			t.Fatalf("ParseDate(%q) succeeded, want error", s)
		}
	}
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2026, time.September, 1, 18, 45, 0, 0, time.UTC)

	tests := []struct {
		date string
		want int
		ok   bool
	}{
		{"2026-09-02", 1, true},
		{"2026-10-01", 30, true},
		{"2026-09-01", 0, true},
		{"2026-08-31", -1, true},
		{"", 0, false},
		{"garbage", 0, false},
	}

	for _, tt := range tests {
		got, ok := DaysUntil(now, tt.date)
		if ok != tt.ok || got != tt.want {
			t.Fatalf("DaysUntil(%q) = (%d, %v), want (%d, %v)", tt.date, got, ok, tt.want, tt.ok)
		}
	}
}

// The count is anchored to local midnight, so the time of day never shifts
// the day count.
func TestDaysUntilIgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2026, time.September, 1, 0, 1, 0, 0, time.UTC)
	night := time.Date(2026, time.September, 1, 23, 59, 0, 0, time.UTC)

	a, _ := DaysUntil(morning, "2026-09-10")
	b, _ := DaysUntil(night, "2026-09-10")
	if a != b {
		t.Fatalf("day count changed with time of day: %d vs %d", a, b)
	}
	if a != 9 {
		t.Fatalf("DaysUntil = %d, want 9", a)
	}
}

func TestParseAgeYears(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"40", 40, true},
		{"40 years", 40, true},
		{"  8", 8, true},
		{"12 yrs old", 12, true},
		{"", 0, false},
		{"forty", 0, false},
		{"about 40", 0, false},
	}

	for _, tt := range tests {
		got, ok := parseAgeYears(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Fatalf("parseAgeYears(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
