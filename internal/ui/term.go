package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/anachung/itinera/internal/trip"
)

// Color definitions for consistent styling across the UI.
var (
	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Times: cyan, they are the backbone of every row
	colorTime = color.New(color.FgCyan)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)

	// Stats: green for totals and confirmations
	colorStats = color.New(color.FgGreen)

	// Warnings and LLM answers: yellow to make them pop
	colorWarn = color.New(color.FgYellow)

	// Per-category accents for the tag column
	categoryColors = map[trip.Category]*color.Color{
		trip.CategoryFlight:      color.New(color.FgBlue, color.Bold),
		trip.CategoryFood:        color.New(color.FgYellow),
		trip.CategorySightseeing: color.New(color.FgCyan),
		trip.CategoryTransport:   color.New(color.FgMagenta),
		trip.CategoryLodging:     color.New(color.FgGreen),
		trip.CategoryShopping:    color.New(color.FgRed),
		trip.CategoryEvent:       color.New(color.FgHiMagenta),
	}
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatTime formats a clock time.
func formatTime(s string) string {
	return colorTime.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}

// formatStats formats text for totals.
func formatStats(s string) string {
	return colorStats.Sprint(s)
}

// formatWarn formats warnings and assistant output.
func formatWarn(s string) string {
	return colorWarn.Sprint(s)
}

// formatCategory formats text in the category's accent color.
func formatCategory(c trip.Category, s string) string {
	if col, ok := categoryColors[c]; ok {
		return col.Sprint(s)
	}
	return s
}
