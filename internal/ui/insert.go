package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anachung/itinera/internal/trip"
)

func (a *App) insertCmd() *cobra.Command {
	var (
		dayFlag     string
		description string
		location    string
		category    string
		duration    int
		notes       string
		price       string
	)

	cmd := &cobra.Command{
		Use:   "insert [title]",
		Short: "Add an activity by hand",
		Long: `Add an activity without the AI: you supply the fields directly.

The activity goes to the end of the day; its start time is computed from
the activities before it.`,
		Example: `  itinera insert "Borough Market" --category food --duration 90 --location "Borough Market"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()
			eng, err := a.loadEngine(ctx)
			if err != nil {
				return err
			}
			day, err := selectDay(eng, dayFlag)
			if err != nil {
				return err
			}

			cat, err := trip.ParseCategory(category)
			if err != nil {
				return fmt.Errorf("category %q: %w", category, err)
			}
			act, err := trip.NewActivity(args[0], description, location, cat, duration)
			if err != nil {
				return err
			}
			act.Notes = notes
			act.Price = price

			eng.Insert(act)
			if err := a.persistActiveDay(ctx, eng); err != nil {
				return err
			}

			day = eng.ActiveDay()
			added := day.Activities[len(day.Activities)-1]
			fmt.Printf("Added to %s: %s %s\n", day.Label, formatTime(added.StartTime), added.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&dayFlag, "day", "", "Day number or date (YYYY-MM-DD, default: active day)")
	cmd.Flags().StringVar(&description, "description", "", "Short description")
	cmd.Flags().StringVar(&location, "location", "", "Location name")
	cmd.Flags().StringVar(&category, "category", "sightseeing", "Category: flight, food, sightseeing, transport, lodging, shopping, event")
	cmd.Flags().IntVar(&duration, "duration", 0, "Duration in minutes (0 = default)")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	cmd.Flags().StringVar(&price, "price", "", "Price text, e.g. \"£35 pp\"")
	return cmd
}
