// Package theme provides color themes for the TUI.
package theme

import (
	"fmt"
	"strings"

	"github.com/anachung/itinera/internal/trip"
)

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name        string
	Bg          string // Base background
	BgHighlight string // Activity rows, subtle highlight
	BgSelection string // Cursor, selection
	Fg          string // Primary foreground
	FgMuted     string // Secondary text, times on past days
	Accent      string // Title, active day tab, borders
	Warning     string // Warnings, move mode

	// Per-category accents
	Flight      string
	Food        string
	Sightseeing string
	Transport   string
	Lodging     string
	Shopping    string
	Event       string
}

// CategoryColor returns the accent hex for an activity category.
func (t *Theme) CategoryColor(c trip.Category) string {
	switch c {
	case trip.CategoryFlight:
		return t.Flight
	case trip.CategoryFood:
		return t.Food
	case trip.CategorySightseeing:
		return t.Sightseeing
	case trip.CategoryTransport:
		return t.Transport
	case trip.CategoryLodging:
		return t.Lodging
	case trip.CategoryShopping:
		return t.Shopping
	case trip.CategoryEvent:
		return t.Event
	default:
		return t.Fg
	}
}

// The four Catppuccin flavors.
var themes = map[string]*Theme{
	"mocha": {
		Name:        "mocha",
		Bg:          "#1e1e2e",
		BgHighlight: "#313244",
		BgSelection: "#45475a",
		Fg:          "#cdd6f4",
		FgMuted:     "#6c7086",
		Accent:      "#cba6f7",
		Warning:     "#fab387",
		Flight:      "#89b4fa",
		Food:        "#f9e2af",
		Sightseeing: "#94e2d5",
		Transport:   "#b4befe",
		Lodging:     "#a6e3a1",
		Shopping:    "#f38ba8",
		Event:       "#f5c2e7",
	},
	"macchiato": {
		Name:        "macchiato",
		Bg:          "#24273a",
		BgHighlight: "#363a4f",
		BgSelection: "#494d64",
		Fg:          "#cad3f5",
		FgMuted:     "#6e738d",
		Accent:      "#c6a0f6",
		Warning:     "#f5a97f",
		Flight:      "#8aadf4",
		Food:        "#eed49f",
		Sightseeing: "#8bd5ca",
		Transport:   "#b7bdf8",
		Lodging:     "#a6da95",
		Shopping:    "#ed8796",
		Event:       "#f5bde6",
	},
	"frappe": {
		Name:        "frappe",
		Bg:          "#303446",
		BgHighlight: "#414559",
		BgSelection: "#51576d",
		Fg:          "#c6d0f5",
		FgMuted:     "#737994",
		Accent:      "#ca9ee6",
		Warning:     "#ef9f76",
		Flight:      "#8caaee",
		Food:        "#e5c890",
		Sightseeing: "#81c8be",
		Transport:   "#babbf1",
		Lodging:     "#a6d189",
		Shopping:    "#e78284",
		Event:       "#f4b8e4",
	},
	"latte": {
		Name:        "latte",
		Bg:          "#eff1f5",
		BgHighlight: "#ccd0da",
		BgSelection: "#bcc0cc",
		Fg:          "#4c4f69",
		FgMuted:     "#9ca0b0",
		Accent:      "#8839ef",
		Warning:     "#fe640b",
		Flight:      "#1e66f5",
		Food:        "#df8e1d",
		Sightseeing: "#179299",
		Transport:   "#7287fd",
		Lodging:     "#40a02b",
		Shopping:    "#d20f39",
		Event:       "#ea76cb",
	},
}

// Load loads a theme by name. Falls back to mocha if the theme is not found.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = "mocha"
	}
	name = strings.ToLower(name)

	t, ok := themes[name]
	if !ok {
		if name != "mocha" {
			return Load("mocha")
		}
		return nil, fmt.Errorf("unknown theme %q", name)
	}

	// Copy so callers cannot mutate the shared table.
	out := *t
	return &out, nil
}

// Available returns a list of available theme names.
func Available() []string {
	return []string{"mocha", "macchiato", "frappe", "latte"}
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	name = strings.ToLower(name)
	for _, themeName := range Available() {
		if themeName == name {
			return true
		}
	}
	return false
}
