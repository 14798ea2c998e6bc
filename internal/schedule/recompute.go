// Package schedule implements the itinerary scheduling engine: the
// deterministic recomputation of activity start times and the day mutation
// operations built on top of it.
package schedule

import "github.com/anachung/itinera/internal/trip"

// Recompute reassigns every activity's start time by walking the list in its
// existing order from the anchor, advancing by each activity's effective
// duration. Minutes wrap at midnight, so a chain that runs past 24:00
// continues from 00:00.
//
// An empty anchor means "use the first activity's current start time"; an
// unparseable anchor resolves to 09:00. The input slice is never mutated;
// the result is a fresh, deeply copied list. Recompute is pure and total:
// same input and anchor always yield the same output, and there is no
// failure mode.
func Recompute(items []trip.Activity, anchor string) []trip.Activity {
	if len(items) == 0 {
		return items
	}

	if anchor == "" {
		anchor = items[0].StartTime
	}
	cursor := trip.ParseClock(anchor)

	out := make([]trip.Activity, len(items))
	for i, a := range items {
		next := a.Clone()
		next.StartTime = trip.FormatClock(cursor)
		out[i] = next
		cursor += a.EffectiveDuration()
	}
	return out
}
