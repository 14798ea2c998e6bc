package ui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/anachung/itinera/internal/trip"
)

func (a *App) editCmd() *cobra.Command {
	var (
		dayFlag     string
		title       string
		description string
		location    string
		category    string
		start       string
		duration    int
		notes       string
		price       string
	)

	cmd := &cobra.Command{
		Use:   "edit [position]",
		Short: "Edit an activity's fields",
		Long: `Edit the activity at the given position (1-based). Only the flags you
pass are changed.

Changing --start on the first activity shifts the whole day to the new
time; on any other activity the change is overwritten by the schedule,
since start times follow from the durations before them.`,
		Example: `  itinera edit 1 --start 10:00 --day 2
  itinera edit 3 --title "Dinner at Dishoom" --duration 120`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid position: %w", err)
			}

			ctx := context.Background()
			eng, err := a.loadEngine(ctx)
			if err != nil {
				return err
			}
			day, err := selectDay(eng, dayFlag)
			if err != nil {
				return err
			}
			act, err := activityAt(day, pos)
			if err != nil {
				return err
			}

			var p trip.Patch
			if cmd.Flags().Changed("title") {
				p.Title = trip.String(title)
			}
			if cmd.Flags().Changed("description") {
				p.Description = trip.String(description)
			}
			if cmd.Flags().Changed("location") {
				p.LocationName = trip.String(location)
			}
			if cmd.Flags().Changed("category") {
				cat, err := trip.ParseCategory(category)
				if err != nil {
					return fmt.Errorf("category %q: %w", category, err)
				}
				p.Category = trip.CategoryPtr(cat)
			}
			if cmd.Flags().Changed("start") {
				p.StartTime = trip.String(start)
			}
			if cmd.Flags().Changed("duration") {
				p.Duration = trip.Int(duration)
			}
			if cmd.Flags().Changed("notes") {
				p.Notes = trip.String(notes)
			}
			if cmd.Flags().Changed("price") {
				p.Price = trip.String(price)
			}

			eng.Edit(act.ID, p)
			if err := a.persistActiveDay(ctx, eng); err != nil {
				return err
			}

			updated := eng.ActiveDay().Activities[pos-1]
			fmt.Printf("Updated %s: %s %s\n", day.Label, formatTime(updated.StartTime), updated.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&dayFlag, "day", "", "Day number or date (YYYY-MM-DD, default: active day)")
	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().StringVar(&location, "location", "", "New location name")
	cmd.Flags().StringVar(&category, "category", "", "New category")
	cmd.Flags().StringVar(&start, "start", "", "New start time (HH:MM, first activity only)")
	cmd.Flags().IntVar(&duration, "duration", 0, "New duration in minutes")
	cmd.Flags().StringVar(&notes, "notes", "", "New notes")
	cmd.Flags().StringVar(&price, "price", "", "New price text")
	return cmd
}
