package ui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func (a *App) moveCmd() *cobra.Command {
	var dayFlag string

	cmd := &cobra.Command{
		Use:   "move [from] [to]",
		Short: "Move an activity within its day",
		Long: `Move the activity at position [from] to position [to] (both 1-based).

Every start time on the day is recomputed from the new order; the day
keeps the start time it had before the move.`,
		Example: `  itinera move 3 1 --day 2`,
		Args:    cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			from, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid from position: %w", err)
			}
			to, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid to position: %w", err)
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
			act, err := activityAt(day, from)
			if err != nil {
				return err
			}
			if _, err := activityAt(day, to); err != nil {
				return err
			}

			eng.Move(from-1, to-1)
			if err := a.persistActiveDay(ctx, eng); err != nil {
				return err
			}

			fmt.Printf("Moved %q to position %d on %s\n", act.Title, to, day.Label)
			return nil
		},
	}

	cmd.Flags().StringVar(&dayFlag, "day", "", "Day number or date (YYYY-MM-DD, default: active day)")
	return cmd
}
