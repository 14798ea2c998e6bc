package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/anachung/itinera/internal/summary"
	"github.com/anachung/itinera/internal/tui/commands"
)

// durationStep is how much +/- changes an activity's duration, in minutes.
const durationStep = 15

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	// Mode-specific handling
	switch m.mode {
	case ModeInput:
		return m.handleInputKeys(msg)
	case ModeMove:
		return m.handleMoveKeys(msg)
	case ModeAnswer:
		return m.handleAnswerKeys(msg)
	case ModePacking:
		return m.handlePackingKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	day := m.activeDay()

	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Day navigation
	case "h", "left", "shift+tab":
		m.engine.SelectDay(m.engine.Trip().ActiveDayIndex() - 1)
		m.cursor = 0
		if d := m.activeDay(); d != nil {
			LogDayChange(m.engine.Trip().ActiveDayIndex(), d.Date)
		}
		return m, nil
	case "l", "right", "tab":
		m.engine.SelectDay(m.engine.Trip().ActiveDayIndex() + 1)
		m.cursor = 0
		if d := m.activeDay(); d != nil {
			LogDayChange(m.engine.Trip().ActiveDayIndex(), d.Date)
		}
		return m, nil

	// Activity navigation
	case "j", "down":
		if day != nil && m.cursor < len(day.Activities)-1 {
			m.cursor++
		}
		return m, nil
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "g", "home":
		m.cursor = 0
		return m, nil
	case "G", "end":
		if day != nil && len(day.Activities) > 0 {
			m.cursor = len(day.Activities) - 1
		}
		return m, nil

	// Reorder
	case "m":
		if day == nil || len(day.Activities) < 2 {
			m.setStatus("Nothing to move", false)
			return m, nil
		}
		m.drag.Start(m.cursor)
		LogModeChange(m.mode, ModeMove, "start_move")
		m.mode = ModeMove
		m.setStatus("Move: j/k to choose the new slot, Enter to drop, Esc to cancel", false)
		return m, nil

	// Quick reorder without entering move mode
	case "J":
		if day == nil || m.cursor >= len(day.Activities)-1 {
			return m, nil
		}
		m.engine.Move(m.cursor, m.cursor+1)
		m.cursor++
		return m, commands.SaveDay(m.repo, *m.activeDay())
	case "K":
		if day == nil || m.cursor == 0 || len(day.Activities) == 0 {
			return m, nil
		}
		m.engine.Move(m.cursor, m.cursor-1)
		m.cursor--
		return m, commands.SaveDay(m.repo, *m.activeDay())

	// Delete
	case "x":
		if day == nil || len(day.Activities) == 0 {
			m.setStatus("Nothing to delete", false)
			return m, nil
		}
		victim := day.Activities[m.cursor]
		m.engine.Delete(victim.ID)
		m.clampCursor()
		m.setStatus(fmt.Sprintf("Deleted: %s", victim.Title), false)
		return m, commands.SaveDay(m.repo, *m.activeDay())

	// Duration tweaks
	case "+", "=":
		return m.adjustDuration(durationStep)
	case "-":
		return m.adjustDuration(-durationStep)

	// Prompt-backed actions
	case "a":
		return m.openInput(inputAdd, "Describe the activity (or paste a link)")
	case "?":
		return m.openInput(inputAsk, "Ask about your trip")

	case "b":
		if m.busy {
			return m, nil
		}
		if err := m.ensureAdvisor(); err != nil {
			m.setStatus(fmt.Sprintf("LLM unavailable: %v", err), true)
			return m, nil
		}
		m.busy = true
		m.setStatus("Looking for alternatives...", false)
		return m, commands.Alternatives(m.adv, 0)

	// Packing view
	case "p":
		m.mode = ModePacking
		return m, commands.LoadPacking(m.repo)

	// Clipboard
	case "y":
		if day == nil {
			return m, nil
		}
		if err := clipboard.WriteAll(summary.Day(*day)); err != nil {
			m.setStatus(fmt.Sprintf("Copy failed: %v", err), true)
			return m, nil
		}
		m.setStatus(fmt.Sprintf("Copied %s", day.Label), false)
		return m, nil
	case "Y":
		t := m.engine.Trip()
		if err := clipboard.WriteAll(summary.Trip(t.Name, t.Days)); err != nil {
			m.setStatus(fmt.Sprintf("Copy failed: %v", err), true)
			return m, nil
		}
		m.setStatus("Copied the whole trip", false)
		return m, nil
	}

	return m, nil
}

// handleMoveKeys handles keys in move mode. The gesture only previews the
// new position; nothing moves until the drop.
func (m Model) handleMoveKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	day := m.activeDay()

	switch msg.String() {
	case "esc":
		m.cursor = m.drag.Source()
		m.drag.Cancel()
		m.drag.Reset()
		LogModeChange(m.mode, ModeNormal, "move_cancelled")
		m.mode = ModeNormal
		m.setStatus("Move cancelled", false)
		return m, nil

	case "j", "down":
		if day != nil && m.drag.Target() < len(day.Activities)-1 {
			m.drag.Over(m.drag.Target() + 1)
		}
		return m, nil
	case "k", "up":
		if m.drag.Target() > 0 {
			m.drag.Over(m.drag.Target() - 1)
		}
		return m, nil

	case "enter":
		from, to, ok := m.drag.Drop()
		m.drag.Reset()
		LogModeChange(m.mode, ModeNormal, "move_dropped")
		m.mode = ModeNormal
		if !ok {
			m.setStatus("Move cancelled", false)
			return m, nil
		}
		m.engine.Move(from, to)
		m.cursor = to
		m.setStatus("Moved", false)
		return m, commands.SaveDay(m.repo, *m.activeDay())
	}

	return m, nil
}

// handleInputKeys handles keys while the prompt is open.
func (m Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		m.input.Blur()
		m.input.SetValue("")
		return m, nil

	case "enter":
		value := strings.TrimSpace(m.input.Value())
		m.mode = ModeNormal
		m.input.Blur()
		m.input.SetValue("")
		if value == "" {
			return m, nil
		}
		return m.submitInput(value)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleAnswerKeys handles keys while an answer panel is open.
func (m Model) handleAnswerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "q":
		m.mode = ModeNormal
		m.answerTitle = ""
		m.answerBody = ""
		return m, nil
	case "y":
		if err := clipboard.WriteAll(m.answerBody); err != nil {
			m.setStatus(fmt.Sprintf("Copy failed: %v", err), true)
			return m, nil
		}
		m.setStatus("Copied", false)
		return m, nil
	}
	return m, nil
}

// handlePackingKeys handles keys in the packing checklist view.
func (m Model) handlePackingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "p":
		m.mode = ModeNormal
		return m, nil

	case "j", "down":
		if m.packCursor < len(m.packing)-1 {
			m.packCursor++
		}
		return m, nil
	case "k", "up":
		if m.packCursor > 0 {
			m.packCursor--
		}
		return m, nil

	case " ", "enter":
		if len(m.packing) == 0 {
			return m, nil
		}
		return m, commands.TogglePackingItem(m.repo, m.packing[m.packCursor].ID)

	case "x":
		if len(m.packing) == 0 {
			return m, nil
		}
		item := m.packing[m.packCursor]
		m.setStatus(fmt.Sprintf("Removed: %s", item.Text), false)
		return m, commands.DeletePackingItem(m.repo, item.ID)

	case "a":
		return m.openInput(inputPackingItem, "New packing item")
	}
	return m, nil
}

// openInput switches to prompt mode for the given purpose.
func (m Model) openInput(kind inputKind, placeholder string) (tea.Model, tea.Cmd) {
	m.inputFor = kind
	m.input.Placeholder = placeholder
	m.input.SetValue("")
	m.input.Focus()
	m.mode = ModeInput
	return m, textinput.Blink
}

// submitInput dispatches a submitted prompt value.
func (m Model) submitInput(value string) (tea.Model, tea.Cmd) {
	switch m.inputFor {
	case inputAdd:
		if err := m.ensureAdvisor(); err != nil {
			m.setStatus(fmt.Sprintf("LLM unavailable: %v", err), true)
			return m, nil
		}
		m.busy = true
		m.setStatus("Analyzing...", false)
		return m, commands.AddFromText(m.adv, value)

	case inputAsk:
		if err := m.ensureAdvisor(); err != nil {
			m.setStatus(fmt.Sprintf("LLM unavailable: %v", err), true)
			return m, nil
		}
		m.busy = true
		m.setStatus("Thinking...", false)
		return m, commands.Ask(m.adv, value)

	case inputPackingItem:
		m.mode = ModePacking
		return m, commands.AddPackingItem(m.repo, value)
	}
	return m, nil
}

// adjustDuration nudges the selected activity's duration and saves.
func (m Model) adjustDuration(delta int) (tea.Model, tea.Cmd) {
	day := m.activeDay()
	if day == nil || len(day.Activities) == 0 {
		return m, nil
	}
	act := day.Activities[m.cursor]
	minutes := act.EffectiveDuration() + delta
	if minutes < durationStep {
		m.setStatus(fmt.Sprintf("Cannot shrink below %d minutes", durationStep), false)
		return m, nil
	}
	m.engine.SetDuration(act.ID, minutes)
	return m, commands.SaveDay(m.repo, *m.activeDay())
}
