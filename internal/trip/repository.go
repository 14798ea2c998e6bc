package trip

import "context"

// Repository defines the storage interface for itineraries.
type Repository interface {
	// LoadTrip returns every stored day in date order, with activities in
	// visit order. An empty store returns an empty slice.
	LoadTrip(ctx context.Context) ([]DaySchedule, error)

	// CreateDay adds a new day. The date must not already exist.
	CreateDay(ctx context.Context, day DaySchedule) error

	// ReplaceDayActivities replaces the full activity list for a date in a
	// single transaction, preserving visit order.
	ReplaceDayActivities(ctx context.Context, date string, items []Activity) error

	// ListPackingItems returns the packing checklist in insertion order.
	ListPackingItems(ctx context.Context) ([]PackingItem, error)

	// AddPackingItem appends a checklist entry.
	AddPackingItem(ctx context.Context, item PackingItem) error

	// TogglePackingItem flips the checked state of an entry.
	TogglePackingItem(ctx context.Context, id string) error

	// DeletePackingItem removes an entry.
	DeletePackingItem(ctx context.Context, id string) error

	// Close releases any resources held by the repository.
	Close() error
}
