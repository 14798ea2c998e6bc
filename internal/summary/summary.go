// Package summary builds plain-text itinerary digests for the clipboard and
// for grounding LLM prompts.
package summary

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/anachung/itinera/internal/trip"
)

// Day renders a single day's schedule as plain text.
func Day(day trip.DaySchedule) string {
	var sb strings.Builder

	sb.WriteString(day.Label)
	sb.WriteString(fmt.Sprintf(" (%s)", day.Date))
	if day.WeatherNote != "" {
		sb.WriteString(" - ")
		sb.WriteString(day.WeatherNote)
	}
	sb.WriteString("\n")

	if len(day.Activities) == 0 {
		sb.WriteString("  (nothing planned)\n")
		return sb.String()
	}

	for _, a := range day.Activities {
		sb.WriteString(fmt.Sprintf("  %s  %s (%s) [%s]",
			a.StartTime, a.Title, FormatDuration(a.EffectiveDuration()), a.Category))
		if a.LocationName != "" {
			sb.WriteString(" @ ")
			sb.WriteString(a.LocationName)
		}
		if a.Price != "" {
			sb.WriteString(" · ")
			sb.WriteString(a.Price)
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("  Total: %s, ends %s\n",
		FormatDuration(day.TotalMinutes()), day.EndTime()))

	return sb.String()
}

// Trip renders the whole itinerary as plain text.
func Trip(name string, days []trip.DaySchedule) string {
	var sb strings.Builder

	sb.WriteString(name)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", utf8.RuneCountInString(name)))
	sb.WriteString("\n\n")

	if len(days) == 0 {
		sb.WriteString("(no days planned)\n")
		return sb.String()
	}

	for i, d := range days {
		sb.WriteString(Day(d))
		if i < len(days)-1 {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// Packing renders the packing checklist as plain text.
func Packing(items []trip.PackingItem) string {
	if len(items) == 0 {
		return "Packing list is empty.\n"
	}

	var sb strings.Builder
	sb.WriteString("Packing list\n")
	for _, it := range items {
		mark := "[ ]"
		if it.Checked {
			mark = "[x]"
		}
		sb.WriteString(fmt.Sprintf("  %s %s\n", mark, it.Text))
	}
	return sb.String()
}

// FormatDuration formats minutes as a human-readable duration.
func FormatDuration(minutes int) string {
	if minutes == 0 {
		return "0m"
	}
	hours := minutes / 60
	mins := minutes % 60
	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh%dm", hours, mins)
}
