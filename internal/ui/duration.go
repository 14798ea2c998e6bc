package ui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/anachung/itinera/internal/summary"
)

func (a *App) durationCmd() *cobra.Command {
	var dayFlag string

	cmd := &cobra.Command{
		Use:   "duration [position] [minutes]",
		Short: "Change an activity's duration",
		Long: `Set how long the activity at the given position takes, in minutes.

Later activities on the day shift to follow the new duration.`,
		Example: `  itinera duration 2 45 --day 3`,
		Args:    cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			pos, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid position: %w", err)
			}
			minutes, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid minutes: %w", err)
			}
			if minutes <= 0 {
				return fmt.Errorf("duration must be a positive number of minutes, got %d", minutes)
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

			eng.SetDuration(act.ID, minutes)
			if err := a.persistActiveDay(ctx, eng); err != nil {
				return err
			}

			fmt.Printf("%s now takes %s; %s ends %s\n",
				act.Title, summary.FormatDuration(minutes), day.Label, eng.ActiveDay().EndTime())
			return nil
		},
	}

	cmd.Flags().StringVar(&dayFlag, "day", "", "Day number or date (YYYY-MM-DD, default: active day)")
	return cmd
}
