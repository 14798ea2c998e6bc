package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/anachung/itinera/internal/dateutil"
	"github.com/anachung/itinera/internal/llm"
	"github.com/anachung/itinera/internal/summary"
	"github.com/anachung/itinera/internal/trip"
)

// View renders the TUI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	switch m.mode {
	case ModePacking:
		b.WriteString(m.viewPacking())
	case ModeAnswer:
		b.WriteString(m.viewAnswer())
	default:
		b.WriteString(m.viewDay())
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())
	return b.String()
}

// viewHeader renders the trip title, countdown, and day tabs.
func (m Model) viewHeader() string {
	t := m.engine.Trip()

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(t.Name))
	if c := m.countdown(); c != "" {
		b.WriteString("  ")
		b.WriteString(m.styles.Countdown.Render(c))
	}
	b.WriteString("\n")

	tabs := make([]string, 0, len(t.Days))
	for i, d := range t.Days {
		style := m.styles.TabInactive
		if i == t.ActiveDayIndex() {
			style = m.styles.TabActive
		}
		tabs = append(tabs, style.Render(d.Label))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n")
	return b.String()
}

// countdown renders the days/hours until departure.
func (m Model) countdown() string {
	dep, err := dateutil.ParseDate(m.engine.Trip().StartDate)
	if err != nil {
		return ""
	}
	c := dateutil.Until(time.Now(), dep)
	if c.Started() {
		return "underway"
	}
	return fmt.Sprintf("departs in %dd %dh", c.Days, c.Hours)
}

// viewDay renders the active day's schedule.
func (m Model) viewDay() string {
	day := m.activeDay()
	if day == nil {
		return "\n  No days planned.\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(m.styles.DayTheme.Render(fmt.Sprintf("%s · %s", day.Date, day.Theme)))
	if day.WeatherNote != "" {
		b.WriteString("  ")
		b.WriteString(m.styles.Weather.Render(day.WeatherNote))
	}
	b.WriteString("\n\n")

	if len(day.Activities) == 0 {
		b.WriteString(m.styles.Muted.Render("  Nothing planned yet. Press a to add something."))
		b.WriteString("\n")
		return b.String()
	}

	for i, a := range day.Activities {
		b.WriteString(m.viewActivityRow(i, a))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Total.Render(fmt.Sprintf("  Total %s · ends %s",
		summary.FormatDuration(day.TotalMinutes()), day.EndTime())))
	b.WriteString("\n")
	return b.String()
}

// viewActivityRow renders one schedule row with cursor and move markers.
func (m Model) viewActivityRow(i int, a trip.Activity) string {
	marker := "  "
	rowStyle := m.styles.Row
	switch {
	case m.mode == ModeMove && i == m.drag.Target():
		marker = "> "
		rowStyle = m.styles.RowMoving
	case m.mode != ModeMove && i == m.cursor:
		marker = "> "
		rowStyle = m.styles.RowSelected
	}

	line := fmt.Sprintf("%s%s  %s (%s)",
		marker,
		m.styles.Time.Render(a.StartTime),
		a.Title,
		summary.FormatDuration(a.EffectiveDuration()))

	badge := m.styles.CategoryBadge(a.Category).Render(string(a.Category))
	line += " " + badge
	if a.LocationName != "" {
		line += m.styles.Muted.Render(" @ " + a.LocationName)
	}
	return rowStyle.Render(line)
}

// viewPacking renders the packing checklist.
func (m Model) viewPacking() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(m.styles.DayTheme.Render("Packing list"))
	b.WriteString("\n\n")

	if len(m.packing) == 0 {
		b.WriteString(m.styles.Muted.Render("  Nothing on the list. Press a to add an item."))
		b.WriteString("\n")
		return b.String()
	}

	checked := 0
	for i, item := range m.packing {
		marker := "  "
		style := m.styles.Row
		if i == m.packCursor {
			marker = "> "
			style = m.styles.RowSelected
		}
		box := "[ ]"
		text := item.Text
		if item.Checked {
			box = "[x]"
			checked++
		}
		line := fmt.Sprintf("%s%s %s", marker, box, text)
		if item.Checked {
			line = m.styles.Muted.Render(line)
		} else {
			line = style.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Total.Render(fmt.Sprintf("  %d of %d packed", checked, len(m.packing))))
	b.WriteString("\n")
	return b.String()
}

// viewAnswer renders the assistant answer or alternatives panel.
func (m Model) viewAnswer() string {
	width := m.width - 4
	if width < 40 {
		width = 40
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(m.styles.DayTheme.Render(m.answerTitle))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Panel.Width(width).Render(m.answerBody))
	b.WriteString("\n")
	return b.String()
}

// viewFooter renders the status line, prompt, and key help.
func (m Model) viewFooter() string {
	var b strings.Builder

	if m.mode == ModeInput {
		b.WriteString(m.styles.InputLabel.Render("> "))
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	if m.statusMsg != "" {
		style := m.styles.Status
		if m.statusErr {
			style = m.styles.StatusError
		}
		b.WriteString(style.Render(m.statusMsg))
		b.WriteString("\n")
	} else if m.busy {
		b.WriteString(m.styles.Status.Render("Working..."))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render(m.helpLine()))
	return b.String()
}

// helpLine returns the context-sensitive key hint line.
func (m Model) helpLine() string {
	switch m.mode {
	case ModeMove:
		return "j/k choose slot · enter drop · esc cancel"
	case ModeInput:
		return "enter submit · esc cancel"
	case ModeAnswer:
		return "y copy · esc close"
	case ModePacking:
		return "j/k navigate · space toggle · a add · x delete · esc back"
	default:
		return "h/l day · j/k select · m move · a add · x delete · +/- duration · ? ask · b backups · p packing · y copy · q quit"
	}
}

// formatAlternatives renders alternative suggestions as panel text.
func formatAlternatives(alts []llm.Alternative) string {
	if len(alts) == 0 {
		return "No suggestions this time."
	}

	var b strings.Builder
	for i, alt := range alts {
		act := alt.ToActivity()
		fmt.Fprintf(&b, "%d. %s (%s) [%s]", i+1, act.Title,
			summary.FormatDuration(act.EffectiveDuration()), act.Category)
		if act.LocationName != "" {
			fmt.Fprintf(&b, "\n   @ %s", act.LocationName)
		}
		if alt.Reason != "" {
			fmt.Fprintf(&b, "\n   %s", alt.Reason)
		}
		if i < len(alts)-1 {
			b.WriteString("\n\n")
		}
	}
	return b.String()
}
