// Package commands provides async tea.Cmds shared by the TUI.
package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/anachung/itinera/internal/advisor"
	"github.com/anachung/itinera/internal/llm"
	"github.com/anachung/itinera/internal/trip"
)

// ErrMsg reports a failed command.
type ErrMsg struct {
	Err error
}

// ActivityAddedMsg reports a successful analyze-and-add.
type ActivityAddedMsg struct {
	Activity trip.Activity
}

// AnswerMsg carries the assistant's answer to a question.
type AnswerMsg struct {
	Question string
	Answer   string
}

// AlternativesMsg carries backup suggestions for the active day.
type AlternativesMsg struct {
	Alternatives []llm.Alternative
}

// PackingLoadedMsg carries the current packing checklist.
type PackingLoadedMsg struct {
	Items []trip.PackingItem
}

// DaySavedMsg reports a persisted day.
type DaySavedMsg struct {
	Date string
}

// AddFromText asks the advisor to analyze free-form input and append the
// resulting activity to the active day.
func AddFromText(adv *advisor.Advisor, input string) tea.Cmd {
	return func() tea.Msg {
		added, err := adv.AddFromText(context.Background(), input)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return ActivityAddedMsg{Activity: added}
	}
}

// Ask sends a free-form question about the trip to the assistant.
func Ask(adv *advisor.Advisor, question string) tea.Cmd {
	return func() tea.Msg {
		answer, err := adv.Ask(context.Background(), question)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return AnswerMsg{Question: question, Answer: answer}
	}
}

// Alternatives asks for backup activities for the active day.
func Alternatives(adv *advisor.Advisor, count int) tea.Cmd {
	return func() tea.Msg {
		alts, err := adv.Alternatives(context.Background(), count)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return AlternativesMsg{Alternatives: alts}
	}
}

// SaveDay persists a day's activity list.
func SaveDay(repo trip.Repository, day trip.DaySchedule) tea.Cmd {
	return func() tea.Msg {
		if err := repo.ReplaceDayActivities(context.Background(), day.Date, day.Activities); err != nil {
			return ErrMsg{Err: err}
		}
		return DaySavedMsg{Date: day.Date}
	}
}

// LoadPacking fetches the packing checklist.
func LoadPacking(repo trip.Repository) tea.Cmd {
	return func() tea.Msg {
		return reloadPacking(repo)
	}
}

// AddPackingItem appends a checklist entry and reloads the list.
func AddPackingItem(repo trip.Repository, text string) tea.Cmd {
	return func() tea.Msg {
		if err := repo.AddPackingItem(context.Background(), trip.NewPackingItem(text)); err != nil {
			return ErrMsg{Err: err}
		}
		return reloadPacking(repo)
	}
}

// TogglePackingItem flips an entry's checked state and reloads the list.
func TogglePackingItem(repo trip.Repository, id string) tea.Cmd {
	return func() tea.Msg {
		if err := repo.TogglePackingItem(context.Background(), id); err != nil {
			return ErrMsg{Err: err}
		}
		return reloadPacking(repo)
	}
}

// DeletePackingItem removes an entry and reloads the list.
func DeletePackingItem(repo trip.Repository, id string) tea.Cmd {
	return func() tea.Msg {
		if err := repo.DeletePackingItem(context.Background(), id); err != nil {
			return ErrMsg{Err: err}
		}
		return reloadPacking(repo)
	}
}

func reloadPacking(repo trip.Repository) tea.Msg {
	items, err := repo.ListPackingItems(context.Background())
	if err != nil {
		return ErrMsg{Err: err}
	}
	return PackingLoadedMsg{Items: items}
}
