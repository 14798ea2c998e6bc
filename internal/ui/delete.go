package ui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func (a *App) deleteCmd() *cobra.Command {
	var dayFlag string

	cmd := &cobra.Command{
		Use:   "delete [position]",
		Short: "Delete an activity",
		Long: `Delete the activity at the given position (1-based, see 'itinera show').

The rest of the day closes up: later activities shift earlier to fill the
gap, keeping the day's original start time.`,
		Example: `  itinera delete 2 --day 3`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
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

			eng.Delete(act.ID)
			if err := a.persistActiveDay(ctx, eng); err != nil {
				return err
			}

			fmt.Printf("Deleted from %s: %s\n", day.Label, act.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&dayFlag, "day", "", "Day number or date (YYYY-MM-DD, default: active day)")
	return cmd
}
