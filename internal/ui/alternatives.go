package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anachung/itinera/internal/summary"
)

func (a *App) alternativesCmd() *cobra.Command {
	var (
		dayFlag   string
		modelFlag string
		count     int
	)

	cmd := &cobra.Command{
		Use:   "alternatives",
		Short: "Suggest backup activities for a day",
		Long: `Ask the AI for backup activities that fit the day: things to swap in
when the weather turns or something is closed. Suggestions are printed,
not added; use 'itinera add' to schedule one.`,
		Example: `  itinera alternatives --day 7 --count 5`,
		RunE: func(_ *cobra.Command, _ []string) error {
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

			fmt.Println("Looking for alternatives...")
			alts, err := adv.Alternatives(ctx, count)
			if err != nil {
				return fmt.Errorf("suggesting alternatives: %w", err)
			}

			fmt.Printf("\n%s\n\n", formatHeader(fmt.Sprintf("Backup ideas for %s (%s)", day.Label, day.Date)))
			for i, alt := range alts {
				act := alt.ToActivity()
				fmt.Printf("%3d. %s (%s) %s\n", i+1, act.Title,
					summary.FormatDuration(act.EffectiveDuration()),
					formatCategory(act.Category, "["+string(act.Category)+"]"))
				if act.LocationName != "" {
					fmt.Println(formatMuted("       @ " + act.LocationName))
				}
				if alt.Reason != "" {
					fmt.Println(formatMuted("       " + alt.Reason))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dayFlag, "day", "", "Day number or date (YYYY-MM-DD, default: active day)")
	cmd.Flags().StringVar(&modelFlag, "model", "", "LLM model to use (from config if not set)")
	cmd.Flags().IntVar(&count, "count", 0, "How many suggestions to ask for (default 3)")
	return cmd
}
