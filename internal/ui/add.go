package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (a *App) addCmd() *cobra.Command {
	var (
		dayFlag   string
		modelFlag string
	)

	cmd := &cobra.Command{
		Use:   "add [text]",
		Short: "Add an activity from free-form text",
		Long: `Use AI to turn a pasted note or map link into a scheduled activity.

The activity is appended to the end of the day and its start time follows
from the activities before it. Use 'itinera insert' to add one by hand.`,
		Example: `  itinera add "Afternoon tea at Fortnum & Mason, about 2 hours"
  itinera add "https://maps.app.goo.gl/abc123" --day 4`,
		Args: cobra.MinimumNArgs(1),
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

			adv, err := a.newAdvisor(eng, modelFlag)
			if err != nil {
				return err
			}

			fmt.Println("Analyzing...")
			added, err := adv.AddFromText(ctx, strings.Join(args, " "))
			if err != nil {
				return fmt.Errorf("adding activity: %w", err)
			}

			fmt.Printf("Added to %s: %s %s (%s)\n",
				day.Label, formatTime(added.StartTime), added.Title,
				formatCategory(added.Category, string(added.Category)))
			return nil
		},
	}

	cmd.Flags().StringVar(&dayFlag, "day", "", "Day number or date (YYYY-MM-DD, default: active day)")
	cmd.Flags().StringVar(&modelFlag, "model", "", "LLM model to use (from config if not set)")
	return cmd
}
