package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/anachung/itinera/internal/trip"
)

func TestActivityRow(t *testing.T) {
	DisableColor()

	a := trip.Activity{
		ID:           "a1",
		StartTime:    "11:00",
		Title:        "London Eye",
		LocationName: "South Bank",
		Category:     trip.CategorySightseeing,
		Price:        "£35 pp",
	}

	row := activityRow(2, a, 44)

	for _, want := range []string{"2.", "11:00", "London Eye", "(1h)", "[sightseeing]", "@ South Bank", "£35 pp"} {
		if !strings.Contains(row, want) {
			t.Errorf("activityRow() = %q, missing %q", row, want)
		}
	}
}

func TestActivityRow_TruncatesTitle(t *testing.T) {
	DisableColor()

	a := trip.Activity{
		StartTime: "09:00",
		Title:     "A very long activity title that will not fit on one line",
		Category:  trip.CategoryFood,
	}

	row := activityRow(1, a, 20)

	if !strings.Contains(row, "A very long activit...") {
		t.Errorf("activityRow() = %q, want truncated title", row)
	}
	if strings.Contains(row, "will not fit") {
		t.Errorf("activityRow() = %q, title was not truncated", row)
	}
}

func TestDayLine(t *testing.T) {
	DisableColor()

	day := trip.DaySchedule{
		Date:  "2025-12-14",
		Label: "Day 2",
		Theme: "Classic London Landmarks",
		Activities: []trip.Activity{
			{ID: "1", StartTime: "09:00", Title: "Big Ben", Category: trip.CategorySightseeing, DurationMinutes: 90},
			{ID: "2", StartTime: "10:30", Title: "London Eye", Category: trip.CategorySightseeing, DurationMinutes: 60},
		},
	}

	line := dayLine(day, true)

	for _, want := range []string{"* ", "Day 2", "2025-12-14", "Classic London Landmarks", "2 activities", "2h30m", "ends 11:30"} {
		if !strings.Contains(line, want) {
			t.Errorf("dayLine() = %q, missing %q", line, want)
		}
	}

	if got := dayLine(day, false); strings.Contains(got, "* ") {
		t.Errorf("dayLine(inactive) = %q, should not carry the active marker", got)
	}
}

func TestDayLine_EmptyDay(t *testing.T) {
	DisableColor()

	day := trip.DaySchedule{Date: "2025-12-19", Label: "Day 7", Theme: "Free Day"}
	line := dayLine(day, false)

	if !strings.Contains(line, "no activities") {
		t.Errorf("dayLine() = %q, want %q", line, "no activities")
	}
	if strings.Contains(line, "ends") {
		t.Errorf("dayLine() = %q, empty day should not report an end time", line)
	}
}

func TestCountdownLine(t *testing.T) {
	now := time.Date(2025, 12, 10, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		startDate string
		want      string
	}{
		{"future departure", "2025-12-13", "Departure in 2d 6h"},
		{"past departure", "2025-12-01", "The trip has started. Enjoy!"},
		{"malformed date", "not-a-date", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := countdownLine(now, tt.startDate); got != tt.want {
				t.Errorf("countdownLine(%q) = %q, want %q", tt.startDate, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		s    string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"a longer string here", 10, "a longe..."},
		{"tiny", 3, "tiny"},
	}

	for _, tt := range tests {
		if got := truncate(tt.s, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.s, tt.max, got, tt.want)
		}
	}
}
