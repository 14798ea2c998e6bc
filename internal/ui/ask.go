package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (a *App) askCmd() *cobra.Command {
	var modelFlag string

	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask the AI about your trip",
		Long: `Ask a free-form question. The AI sees the full itinerary, so it can
answer things like "which evening is free for a show?" or "is day 5 too
packed?".`,
		Example: `  itinera ask "What should I pack for the weather?"
  itinera ask "Which day has the most walking?"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()
			eng, err := a.loadEngine(ctx)
			if err != nil {
				return err
			}
			adv, err := a.newAdvisor(eng, modelFlag)
			if err != nil {
				return err
			}

			fmt.Println("Thinking...")
			answer, err := adv.Ask(ctx, strings.Join(args, " "))
			if err != nil {
				return fmt.Errorf("asking: %w", err)
			}

			fmt.Println()
			fmt.Println(formatWarn(answer))
			return nil
		},
	}

	cmd.Flags().StringVar(&modelFlag, "model", "", "LLM model to use (from config if not set)")
	return cmd
}
