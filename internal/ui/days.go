package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func (a *App) daysCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "days",
		Short: "List every day of the trip",
		Long: `Display a one-line overview of each day: label, date, theme, and how
full the schedule is. The active day is marked with *.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}

			eng, err := a.loadEngine(context.Background())
			if err != nil {
				return err
			}
			t := eng.Trip()

			fmt.Printf("%s\n", formatHeader(t.Name))
			if line := countdownLine(time.Now(), t.StartDate); line != "" {
				fmt.Println(formatMuted(line))
			}
			fmt.Println()

			if len(t.Days) == 0 {
				fmt.Println("No days planned.")
				return nil
			}
			for i, d := range t.Days {
				fmt.Println(dayLine(d, i == t.ActiveDayIndex()))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}
