package ui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/anachung/itinera/internal/advisor"
	"github.com/anachung/itinera/internal/config"
	"github.com/anachung/itinera/internal/llm"
	"github.com/anachung/itinera/internal/schedule"
	"github.com/anachung/itinera/internal/trip"
	"github.com/anachung/itinera/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo   trip.Repository
	config *config.Config
	root   *cobra.Command
	engine *schedule.Engine // loaded lazily
	debug  bool             // Enable debug logging
}

// NewApp creates a new CLI application with the given repository and config.
func NewApp(repo trip.Repository, cfg *config.Config) *App {
	a := &App{repo: repo, config: cfg}

	a.root = &cobra.Command{
		Use:   "itinera",
		Short: "A day-by-day travel itinerary planner",
		Long: `Itinera is a travel itinerary planner for the terminal.

Each day is an ordered list of activities: the first activity anchors the
day and every later start time follows from the durations before it, so
the schedule always stays consistent as you add, move, and edit things.
Paste free-form notes or map links and the AI turns them into scheduled
activities.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			eng, err := a.loadEngine(context.Background())
			if err != nil {
				return err
			}
			return tui.RunWithDebug(eng, a.repo, a.config, a.debug)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to temp file)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.daysCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.insertCmd())
	a.root.AddCommand(a.deleteCmd())
	a.root.AddCommand(a.moveCmd())
	a.root.AddCommand(a.editCmd())
	a.root.AddCommand(a.durationCmd())
	a.root.AddCommand(a.askCmd())
	a.root.AddCommand(a.alternativesCmd())
	a.root.AddCommand(a.packingCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("itinera %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// loadEngine loads the stored itinerary into a scheduling engine, seeding
// the built-in sample trip on first run.
func (a *App) loadEngine(ctx context.Context) (*schedule.Engine, error) {
	if a.engine != nil {
		return a.engine, nil
	}

	days, err := a.repo.LoadTrip(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading itinerary: %w", err)
	}
	if len(days) == 0 {
		days = trip.SeedDays()
		for _, d := range days {
			if err := a.repo.CreateDay(ctx, d); err != nil {
				return nil, fmt.Errorf("seeding itinerary: %w", err)
			}
		}
	}

	t := trip.New(a.config.Trip.Name, a.config.Trip.StartDate, a.config.Trip.EndDate, days)
	a.engine = schedule.NewEngine(t)
	return a.engine, nil
}

// selectDay resolves a --day flag value (1-based day number or YYYY-MM-DD
// date) and makes that day active. An empty value keeps the current day.
func selectDay(eng *schedule.Engine, dayFlag string) (*trip.DaySchedule, error) {
	t := eng.Trip()
	if len(t.Days) == 0 {
		return nil, advisor.ErrNoActiveDay
	}
	if dayFlag == "" {
		return eng.ActiveDay(), nil
	}

	if n, err := strconv.Atoi(dayFlag); err == nil {
		if n < 1 || n > len(t.Days) {
			return nil, fmt.Errorf("day %d out of range (trip has %d days)", n, len(t.Days))
		}
		eng.SelectDay(n - 1)
		return eng.ActiveDay(), nil
	}

	for i := range t.Days {
		if t.Days[i].Date == dayFlag {
			eng.SelectDay(i)
			return eng.ActiveDay(), nil
		}
	}
	return nil, fmt.Errorf("no day with date %q: %w", dayFlag, trip.ErrDayNotFound)
}

// activityAt resolves a 1-based position on the active day.
func activityAt(day *trip.DaySchedule, position int) (trip.Activity, error) {
	if position < 1 || position > len(day.Activities) {
		return trip.Activity{}, fmt.Errorf("position %d out of range (day has %d activities)",
			position, len(day.Activities))
	}
	return day.Activities[position-1], nil
}

// persistActiveDay writes the active day's activity list back to storage.
func (a *App) persistActiveDay(ctx context.Context, eng *schedule.Engine) error {
	day := eng.ActiveDay()
	if day == nil {
		return advisor.ErrNoActiveDay
	}
	if err := a.repo.ReplaceDayActivities(ctx, day.Date, day.Activities); err != nil {
		return fmt.Errorf("saving day %s: %w", day.Date, err)
	}
	return nil
}

// newAdvisor builds an Advisor over a fresh LLM client from config.
func (a *App) newAdvisor(eng *schedule.Engine, modelFlag string) (*advisor.Advisor, error) {
	model := modelFlag
	if model == "" {
		model = a.config.LLM.Model
	}
	client, err := llm.NewClient(a.config.LLM.Provider, model, a.config.LLM.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("creating LLM client: %w", err)
	}
	return advisor.New(client, eng, a.repo), nil
}
