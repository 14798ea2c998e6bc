package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/anachung/itinera/internal/trip"
	"github.com/anachung/itinera/internal/tui/theme"
)

// Styles holds precomputed lipgloss styles derived from a theme.
type Styles struct {
	palette *theme.Palette

	Title       lipgloss.Style
	Countdown   lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	DayTheme    lipgloss.Style
	Weather     lipgloss.Style

	Row         lipgloss.Style
	RowSelected lipgloss.Style
	RowMoving   lipgloss.Style
	Time        lipgloss.Style
	Muted       lipgloss.Style
	Total       lipgloss.Style

	Status      lipgloss.Style
	StatusError lipgloss.Style
	Help        lipgloss.Style
	Panel       lipgloss.Style
	InputLabel  lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	p := theme.NewPalette(t)

	return &Styles{
		palette: p,

		Title:       lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		Countdown:   lipgloss.NewStyle().Foreground(p.FgMuted),
		TabActive:   lipgloss.NewStyle().Bold(true).Foreground(p.TextOnAccent).Background(p.Accent).Padding(0, 1),
		TabInactive: lipgloss.NewStyle().Foreground(p.FgMuted).Padding(0, 1),
		DayTheme:    lipgloss.NewStyle().Bold(true).Foreground(p.Fg),
		Weather:     lipgloss.NewStyle().Italic(true).Foreground(p.FgMuted),

		Row:         lipgloss.NewStyle().Foreground(p.Fg),
		RowSelected: lipgloss.NewStyle().Foreground(p.Fg).Background(p.BgSelection).Bold(true),
		RowMoving:   lipgloss.NewStyle().Foreground(p.TextOnWarning).Background(p.Warning).Bold(true),
		Time:        lipgloss.NewStyle().Foreground(p.Accent),
		Muted:       lipgloss.NewStyle().Foreground(p.FgMuted),
		Total:       lipgloss.NewStyle().Foreground(p.FgMuted).Italic(true),

		Status:      lipgloss.NewStyle().Foreground(p.Fg),
		StatusError: lipgloss.NewStyle().Foreground(p.Warning).Bold(true),
		Help:        lipgloss.NewStyle().Foreground(p.FgMuted),
		Panel:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Accent).Padding(0, 1),
		InputLabel:  lipgloss.NewStyle().Bold(true).Foreground(p.Warning),
	}
}

// CategoryBadge returns the badge style for an activity category.
func (s *Styles) CategoryBadge(c trip.Category) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(s.palette.Category[c]).
		Background(s.palette.CategoryBg[c]).
		Padding(0, 1)
}

// CategoryText returns the plain accent style for a category.
func (s *Styles) CategoryText(c trip.Category) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.palette.Category[c])
}
