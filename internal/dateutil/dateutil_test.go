package dateutil

import (
	"testing"
	"time"
)

// TestWeekDatesMondayStart verifies the Monday-to-Sunday week around a
// mid-week date, and that Sunday maps into the preceding Monday's week.
func TestWeekDatesMondayStart(t *testing.T) {
	want := []string{
		"2025-10-06", "2025-10-07", "2025-10-08", "2025-10-09",
		"2025-10-10", "2025-10-11", "2025-10-12",
	}

	for _, dateStr := range []string{"2025-10-08", "2025-10-06", "2025-10-12"} {
		got := WeekDates(ParseDate(dateStr))
		if len(got) != 7 {
			t.Fatalf("WeekDates(%s) returned %d dates, want 7", dateStr, len(got))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("WeekDates(%s)[%d] = %s, want %s", dateStr, i, got[i], want[i])
			}
		}
	}
}

// TestMonthDates verifies full month enumeration, including a leap February.
func TestMonthDates(t *testing.T) {
	tests := []struct {
		date  string
		days  int
		first string
		last  string
	}{
		{"2024-02-10", 29, "2024-02-01", "2024-02-29"},
		{"2025-02-01", 28, "2025-02-01", "2025-02-28"},
		{"2025-10-15", 31, "2025-10-01", "2025-10-31"},
	}

	for _, tt := range tests {
		got := MonthDates(ParseDate(tt.date))
		if len(got) != tt.days {
			t.Errorf("MonthDates(%s) = %d days, want %d", tt.date, len(got), tt.days)
			continue
		}
		if got[0] != tt.first {
			t.Errorf("MonthDates(%s)[0] = %s, want %s", tt.date, got[0], tt.first)
		}
		if got[len(got)-1] != tt.last {
			t.Errorf("MonthDates(%s) last = %s, want %s", tt.date, got[len(got)-1], tt.last)
		}
	}
}

// TestParseDatePermissive verifies malformed input yields the zero-time
// sentinel instead of an error.
func TestParseDatePermissive(t *testing.T) {
	for _, s := range []string{"", "not-a-date", "2025-13-40", "08.10.2025"} {
		if got := ParseDate(s); !got.IsZero() {
			t.Errorf("ParseDate(%q) = %v, want zero time", s, got)
		}
	}

	got := ParseDate("2025-10-08")
	if got.IsZero() {
		t.Fatal("ParseDate(2025-10-08) returned zero time")
	}
	if FormatDate(got) != "2025-10-08" {
		t.Errorf("round trip = %s, want 2025-10-08", FormatDate(got))
	}
}

// TestWeekNumber verifies the day-of-year based week numbering.
func TestWeekNumber(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2025-01-01", 1},
		{"2025-10-08", 41},
		{"2025-12-31", 53},
	}

	for _, tt := range tests {
		if got := WeekNumber(ParseDate(tt.date)); got != tt.want {
			t.Errorf("WeekNumber(%s) = %d, want %d", tt.date, got, tt.want)
		}
	}
}

// TestLocalizedNames verifies the day/month lookup tables and the fallback
// to Russian for unknown languages.
func TestLocalizedNames(t *testing.T) {
	wed := ParseDate("2025-10-08")

	if got := DayName(wed, "ru"); got != "Ср" {
		t.Errorf("DayName(ru) = %q, want Ср", got)
	}
	if got := DayName(wed, "en"); got != "Wed" {
		t.Errorf("DayName(en) = %q, want Wed", got)
	}
	if got := DayName(wed, "xx"); got != "Ср" {
		t.Errorf("DayName(xx) = %q, want fallback Ср", got)
	}

	if got := MonthName(wed, "ru"); got != "Октябрь" {
		t.Errorf("MonthName(ru) = %q, want Октябрь", got)
	}
	if got := MonthName(wed, "en"); got != "October" {
		t.Errorf("MonthName(en) = %q, want October", got)
	}

	// Sunday is index 0 in the weekday table
	sun := ParseDate("2025-10-12")
	if sun.Weekday() != time.Sunday {
		t.Fatal("2025-10-12 is not a Sunday")
	}
	if got := DayName(sun, "en"); got != "Sun" {
		t.Errorf("DayName(Sunday, en) = %q, want Sun", got)
	}
}
