package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/anachung/itinera/internal/dateutil"
	"github.com/anachung/itinera/internal/summary"
	"github.com/anachung/itinera/internal/trip"
)

// PrintOpts configures schedule printing behavior.
type PrintOpts struct {
	Verbose       bool // Show descriptions and notes under each row
	MaxTitleWidth int  // Maximum title width (0 = auto)
}

// CalcMaxTitleWidth calculates the maximum title width based on options.
func (o PrintOpts) CalcMaxTitleWidth(defaultWidth int) int {
	if o.MaxTitleWidth > 0 {
		return o.MaxTitleWidth
	}
	tw := termWidth()
	// Base: "  NN. HH:MM  " prefix plus " (1h30m) [sightseeing]" suffix
	overhead := 36
	available := tw - overhead
	if available > defaultWidth {
		return available
	}
	return defaultWidth
}

// activityRow renders a single schedule row without colors applied to the
// dynamic parts, e.g.
//
//	 2. 11:00  London Eye (1h) [sightseeing] @ London Eye
func activityRow(index int, a trip.Activity, maxTitleWidth int) string {
	title := truncate(a.Title, maxTitleWidth)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%3d. %s  %s (%s) %s",
		index,
		formatTime(a.StartTime),
		title,
		summary.FormatDuration(a.EffectiveDuration()),
		formatCategory(a.Category, "["+string(a.Category)+"]"))
	if a.LocationName != "" {
		sb.WriteString(formatMuted(" @ " + a.LocationName))
	}
	if a.Price != "" {
		sb.WriteString(formatMuted(" " + a.Price))
	}
	return sb.String()
}

// PrintDay prints a full day: header, rows, and the totals line.
func PrintDay(day trip.DaySchedule, opts PrintOpts) {
	header := fmt.Sprintf("%s · %s", day.Label, day.Date)
	if day.Theme != "" {
		header += " · " + day.Theme
	}
	fmt.Println(formatHeader(header))
	if day.WeatherNote != "" {
		fmt.Println(formatMuted("  " + day.WeatherNote))
	}
	fmt.Println()

	if len(day.Activities) == 0 {
		fmt.Println("  Nothing planned yet.")
		return
	}

	maxTitleWidth := opts.CalcMaxTitleWidth(44)
	for i, a := range day.Activities {
		fmt.Println(activityRow(i+1, a, maxTitleWidth))
		if opts.Verbose {
			if a.Description != "" {
				fmt.Println(formatMuted("       " + a.Description))
			}
			if a.Notes != "" {
				fmt.Println(formatMuted("       Note: " + a.Notes))
			}
		}
	}

	fmt.Println()
	fmt.Printf("  %s\n", formatStats(fmt.Sprintf("Total: %s, ends %s",
		summary.FormatDuration(day.TotalMinutes()), day.EndTime())))
}

// dayLine renders one row of the day overview, e.g.
//
//	Day 2  2025-12-14  Classic London Landmarks      4 activities, 6h, ends 17:00
func dayLine(day trip.DaySchedule, active bool) string {
	marker := "  "
	if active {
		marker = "* "
	}

	count := "no activities"
	switch n := len(day.Activities); n {
	case 0:
	case 1:
		count = "1 activity"
	default:
		count = fmt.Sprintf("%d activities", n)
	}

	line := fmt.Sprintf("%s%s  %s  %-32s %s",
		marker, formatHeader(day.Label), day.Date, day.Theme, count)
	if len(day.Activities) > 0 {
		line += formatMuted(fmt.Sprintf(", %s, ends %s",
			summary.FormatDuration(day.TotalMinutes()), day.EndTime()))
	}
	return line
}

// countdownLine renders the time remaining until departure.
func countdownLine(now time.Time, startDate string) string {
	dep, err := dateutil.ParseDate(startDate)
	if err != nil {
		return ""
	}
	c := dateutil.Until(now, dep)
	if c.Started() {
		return "The trip has started. Enjoy!"
	}
	return fmt.Sprintf("Departure in %dd %dh", c.Days, c.Hours)
}

// truncate shortens s to at most max characters, ellipsized.
func truncate(s string, max int) string {
	if max <= 3 || len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
