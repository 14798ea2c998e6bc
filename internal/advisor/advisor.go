package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/anachung/itinera/internal/llm"
	"github.com/anachung/itinera/internal/schedule"
	"github.com/anachung/itinera/internal/summary"
	"github.com/anachung/itinera/internal/trip"
)

// ErrNoActiveDay is returned when the trip has no day to operate on.
var ErrNoActiveDay = errors.New("no active day in the trip")

// maxAnalyzeRetries is how many times a rejected LLM proposal is retried with
// error feedback appended to the conversation.
const maxAnalyzeRetries = 1

// Advisor coordinates the LLM, the scheduling engine, and the repository.
// Both CLI and TUI use it for analyze-and-add, questions, and alternatives.
type Advisor struct {
	analyzer  *llm.Analyzer
	assistant *llm.Assistant
	engine    *schedule.Engine
	repo      trip.Repository
}

// New creates a new Advisor with the given dependencies.
func New(client llm.Client, engine *schedule.Engine, repo trip.Repository) *Advisor {
	return &Advisor{
		analyzer:  llm.NewAnalyzer(client),
		assistant: llm.NewAssistant(client),
		engine:    engine,
		repo:      repo,
	}
}

// AddFromText analyzes free-form input (a note or a Google Maps link), appends
// the resulting activity to the active day, and persists the day.
//
// An invalid LLM proposal is retried once with the validation errors fed back
// into the conversation; if it still fails, the errors are returned and the
// day is left untouched.
func (a *Advisor) AddFromText(ctx context.Context, input string) (trip.Activity, error) {
	day := a.engine.ActiveDay()
	if day == nil {
		return trip.Activity{}, ErrNoActiveDay
	}

	messages := a.analyzer.BuildInitialMessages(llm.AnalyzeRequest{
		Input:    input,
		TripName: a.engine.Trip().Name,
		DayLabel: day.Label,
		DayDate:  day.Date,
		Existing: day.Activities,
	})

	var (
		proposal   *llm.AnalyzedActivity
		validation ValidationResult
	)
	for attempt := 0; attempt <= maxAnalyzeRetries; attempt++ {
		resp, err := a.analyzer.AnalyzeWithMessages(ctx, messages)
		if err != nil {
			return trip.Activity{}, fmt.Errorf("analyzing input (attempt %d): %w", attempt+1, err)
		}
		proposal = resp

		validation = Validate(resp)
		if validation.Valid {
			break
		}

		if attempt < maxAnalyzeRetries {
			respJSON, _ := json.Marshal(resp)
			messages = append(messages,
				llm.Message{Role: "assistant", Content: string(respJSON)},
				llm.Message{Role: "user", Content: validation.FormatErrors()},
			)
		}
	}

	if !validation.Valid {
		return trip.Activity{}, fmt.Errorf("proposal rejected after %d attempts: %s",
			maxAnalyzeRetries+1, validation.FormatErrors())
	}

	a.engine.Insert(proposal.ToActivity())

	day = a.engine.ActiveDay()
	if err := a.persistDay(ctx, day); err != nil {
		return trip.Activity{}, err
	}

	return day.Activities[len(day.Activities)-1], nil
}

// Ask answers a free-form question about the trip, grounded on the full
// itinerary digest.
func (a *Advisor) Ask(ctx context.Context, question string) (string, error) {
	t := a.engine.Trip()
	digest := summary.Trip(t.Name, t.Days)
	return a.assistant.Ask(ctx, t.Name, digest, question)
}

// Alternatives suggests backup activities for the active day.
func (a *Advisor) Alternatives(ctx context.Context, count int) ([]llm.Alternative, error) {
	day := a.engine.ActiveDay()
	if day == nil {
		return nil, ErrNoActiveDay
	}

	return a.analyzer.SuggestAlternatives(ctx, llm.AlternativesRequest{
		TripName: a.engine.Trip().Name,
		DayLabel: day.Label,
		DayDate:  day.Date,
		Existing: day.Activities,
		Count:    count,
	})
}

// persistDay writes the day's activity list through the repository, if one is
// configured.
func (a *Advisor) persistDay(ctx context.Context, day *trip.DaySchedule) error {
	if a.repo == nil {
		return nil
	}
	if err := a.repo.ReplaceDayActivities(ctx, day.Date, day.Activities); err != nil {
		return fmt.Errorf("persisting day %s: %w", day.Date, err)
	}
	return nil
}
