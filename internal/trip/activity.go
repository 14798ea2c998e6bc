// Package trip defines the core domain types for itinera.
package trip

import (
	"errors"

	"github.com/google/uuid"
)

// Validation errors.
var (
	ErrEmptyTitle      = errors.New("title cannot be empty")
	ErrInvalidCategory = errors.New("unknown activity category")
	ErrInvalidDuration = errors.New("duration must be a positive number of minutes")
)

// Domain errors.
var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrDayNotFound      = errors.New("day not found")
)

// Category classifies an activity.
type Category string

const (
	CategoryFlight      Category = "flight"
	CategoryFood        Category = "food"
	CategorySightseeing Category = "sightseeing"
	CategoryTransport   Category = "transport"
	CategoryLodging     Category = "lodging"
	CategoryShopping    Category = "shopping"
	CategoryEvent       Category = "event"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryFlight,
	CategoryFood,
	CategorySightseeing,
	CategoryTransport,
	CategoryLodging,
	CategoryShopping,
	CategoryEvent,
}

// Valid returns true if the category is a known value.
func (c Category) Valid() bool {
	switch c {
	case CategoryFlight, CategoryFood, CategorySightseeing, CategoryTransport,
		CategoryLodging, CategoryShopping, CategoryEvent:
		return true
	default:
		return false
	}
}

// ParseCategory parses a category string.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

// DefaultDurationMinutes is assumed when an activity has no duration.
const DefaultDurationMinutes = 60

// AnalyzedDurationMinutes is assigned when the text analyzer returns an
// activity without a duration.
const AnalyzedDurationMinutes = 90

// Coordinates is an optional (latitude, longitude) pair. Informational only;
// the engine never validates or computes with it.
type Coordinates struct {
	Lat float64
	Lng float64
}

// Activity is one scheduled event in a day.
//
// StartTime is derived state: it is recomputed from the day anchor and the
// durations of all preceding activities, and must never be treated as
// authoritative ordering information.
type Activity struct {
	ID              string
	StartTime       string // "HH:MM", always recomputed
	Title           string
	Description     string
	LocationName    string
	Category        Category
	Coordinates     *Coordinates
	DurationMinutes int // 0 means unset
	Notes           string
	Price           string
}

// NewActivity creates an Activity with a fresh id and validated fields.
// duration may be 0 (unset); negative durations are rejected.
func NewActivity(title, description, location string, category Category, duration int) (Activity, error) {
	if title == "" {
		return Activity{}, ErrEmptyTitle
	}
	if !category.Valid() {
		return Activity{}, ErrInvalidCategory
	}
	if duration < 0 {
		return Activity{}, ErrInvalidDuration
	}
	return Activity{
		ID:              uuid.NewString(),
		Title:           title,
		Description:     description,
		LocationName:    location,
		Category:        category,
		DurationMinutes: duration,
	}, nil
}

// EffectiveDuration returns the duration used for schedule recomputation:
// the stated duration if positive, otherwise DefaultDurationMinutes.
func (a Activity) EffectiveDuration() int {
	if a.DurationMinutes > 0 {
		return a.DurationMinutes
	}
	return DefaultDurationMinutes
}

// Clone returns a deep copy of the activity.
func (a Activity) Clone() Activity {
	out := a
	if a.Coordinates != nil {
		c := *a.Coordinates
		out.Coordinates = &c
	}
	return out
}
