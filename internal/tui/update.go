package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/anachung/itinera/internal/tui/commands"
)

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case commands.ActivityAddedMsg:
		m.busy = false
		m.clampCursor()
		m.setStatus(fmt.Sprintf("Added: %s %s", msg.Activity.StartTime, msg.Activity.Title), false)
		return m, nil

	case commands.AnswerMsg:
		m.busy = false
		m.mode = ModeAnswer
		m.answerTitle = msg.Question
		m.answerBody = msg.Answer
		return m, nil

	case commands.AlternativesMsg:
		m.busy = false
		m.mode = ModeAnswer
		day := m.activeDay()
		m.answerTitle = "Backup ideas"
		if day != nil {
			m.answerTitle = fmt.Sprintf("Backup ideas for %s", day.Label)
		}
		m.answerBody = formatAlternatives(msg.Alternatives)
		return m, nil

	case commands.PackingLoadedMsg:
		m.packing = msg.Items
		if m.packCursor >= len(m.packing) {
			m.packCursor = max(0, len(m.packing)-1)
		}
		return m, nil

	case commands.DaySavedMsg:
		m.setStatus("Saved", false)
		return m, nil

	case commands.ErrMsg:
		m.busy = false
		LogError("command", msg.Err)
		m.setStatus(msg.Err.Error(), true)
		return m, nil
	}

	return m, nil
}
