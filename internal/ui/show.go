package ui

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/anachung/itinera/internal/summary"
)

func (a *App) showCmd() *cobra.Command {
	var (
		dayFlag string
		all     bool
		copyOut bool
		verbose bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a day's schedule",
		Long: `Display one day's schedule, or the whole trip with --all.

With --copy the plain-text digest is placed on the clipboard instead of
being printed, ready to paste into a chat or an email.`,
		Example: `  itinera show
  itinera show --day 3
  itinera show --day 2025-12-16 -v
  itinera show --all --copy`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}

			eng, err := a.loadEngine(context.Background())
			if err != nil {
				return err
			}

			if all {
				t := eng.Trip()
				digest := summary.Trip(t.Name, t.Days)
				if copyOut {
					if err := clipboard.WriteAll(digest); err != nil {
						return fmt.Errorf("copying to clipboard: %w", err)
					}
					fmt.Println("Trip summary copied to clipboard.")
					return nil
				}
				fmt.Print(digest)
				return nil
			}

			day, err := selectDay(eng, dayFlag)
			if err != nil {
				return err
			}

			if copyOut {
				if err := clipboard.WriteAll(summary.Day(*day)); err != nil {
					return fmt.Errorf("copying to clipboard: %w", err)
				}
				fmt.Printf("%s copied to clipboard.\n", day.Label)
				return nil
			}

			PrintDay(*day, PrintOpts{Verbose: verbose})
			return nil
		},
	}

	cmd.Flags().StringVar(&dayFlag, "day", "", "Day number or date (YYYY-MM-DD, default: active day)")
	cmd.Flags().BoolVar(&all, "all", false, "Show the whole trip")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "Copy the plain-text digest to the clipboard")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show descriptions and notes")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}
