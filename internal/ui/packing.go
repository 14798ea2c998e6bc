package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anachung/itinera/internal/trip"
)

func (a *App) packingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "packing",
		Short: "Manage the packing checklist",
		Long:  `A plain checklist, separate from the day schedules.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.printPacking(context.Background())
		},
	}

	cmd.AddCommand(a.packingAddCmd())
	cmd.AddCommand(a.packingToggleCmd())
	cmd.AddCommand(a.packingDeleteCmd())
	return cmd
}

func (a *App) packingAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "add [item]",
		Short:   "Add an item to the checklist",
		Example: `  itinera packing add "Travel adapter"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()
			item := trip.NewPackingItem(strings.Join(args, " "))
			if err := a.repo.AddPackingItem(ctx, item); err != nil {
				return fmt.Errorf("adding packing item: %w", err)
			}
			return a.printPacking(ctx)
		},
	}
}

func (a *App) packingToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle [position]",
		Short: "Check or uncheck an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()
			item, err := a.packingItemAt(ctx, args[0])
			if err != nil {
				return err
			}
			if err := a.repo.TogglePackingItem(ctx, item.ID); err != nil {
				return fmt.Errorf("toggling packing item: %w", err)
			}
			return a.printPacking(ctx)
		},
	}
}

func (a *App) packingDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [position]",
		Short: "Remove an item from the checklist",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()
			item, err := a.packingItemAt(ctx, args[0])
			if err != nil {
				return err
			}
			if err := a.repo.DeletePackingItem(ctx, item.ID); err != nil {
				return fmt.Errorf("deleting packing item: %w", err)
			}
			return a.printPacking(ctx)
		},
	}
}

// packingItemAt resolves a 1-based checklist position.
func (a *App) packingItemAt(ctx context.Context, arg string) (trip.PackingItem, error) {
	pos, err := strconv.Atoi(arg)
	if err != nil {
		return trip.PackingItem{}, fmt.Errorf("invalid position: %w", err)
	}
	items, err := a.repo.ListPackingItems(ctx)
	if err != nil {
		return trip.PackingItem{}, fmt.Errorf("listing packing items: %w", err)
	}
	if pos < 1 || pos > len(items) {
		return trip.PackingItem{}, fmt.Errorf("position %d out of range (checklist has %d items)",
			pos, len(items))
	}
	return items[pos-1], nil
}

func (a *App) printPacking(ctx context.Context) error {
	items, err := a.repo.ListPackingItems(ctx)
	if err != nil {
		return fmt.Errorf("listing packing items: %w", err)
	}
	if len(items) == 0 {
		fmt.Println("Packing list is empty.")
		return nil
	}

	checked := 0
	for i, it := range items {
		mark := "[ ]"
		text := it.Text
		if it.Checked {
			mark = "[x]"
			text = formatMuted(text)
			checked++
		}
		fmt.Printf("%3d. %s %s\n", i+1, mark, text)
	}
	fmt.Printf("\n%s\n", formatStats(fmt.Sprintf("%d of %d packed", checked, len(items))))
	return nil
}
