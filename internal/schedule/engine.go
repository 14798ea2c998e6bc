package schedule

import (
	"github.com/google/uuid"

	"github.com/anachung/itinera/internal/trip"
)

// Engine owns a Trip and applies day mutation operations to its active day.
//
// Every operation follows the same pattern: capture the day's anchor (the
// current first activity's start time, or 09:00 for an empty day) before the
// structural change, apply the change to a copy of the list, recompute with
// the captured anchor, and install the new list wholesale. Capturing the
// anchor first preserves the day's intended start-of-day time even when the
// change removes or moves the original first activity.
//
// No operation returns an error: bad input is absorbed with best-effort
// defaults and the day is always left fully time-consistent.
type Engine struct {
	trip *trip.Trip
}

// NewEngine creates an Engine over the given trip.
func NewEngine(t *trip.Trip) *Engine {
	return &Engine{trip: t}
}

// Trip returns the underlying trip.
func (e *Engine) Trip() *trip.Trip {
	return e.trip
}

// SelectDay changes the active day. No recomputation happens on selection.
func (e *Engine) SelectDay(index int) {
	e.trip.SelectDay(index)
}

// ActiveDay returns the active day's schedule, or nil for an empty trip.
func (e *Engine) ActiveDay() *trip.DaySchedule {
	return e.trip.ActiveDay()
}

// Insert appends an activity to the active day and recomputes. The incoming
// StartTime, if any, is discarded: position in the list, not the raw time,
// determines the slot. Activities without an id get a fresh one.
func (e *Engine) Insert(a trip.Activity) {
	day := e.trip.ActiveDay()
	if day == nil {
		return
	}
	anchor := day.Anchor()

	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	a.StartTime = ""

	items := append(day.CloneActivities(), a)
	e.install(Recompute(items, anchor))
}

// Delete removes the activity with the given id and recomputes. Deleting an
// unknown id is a no-op, not an error. Deleting the first activity
// re-anchors the remainder at the previously captured first-activity time.
func (e *Engine) Delete(id string) {
	day := e.trip.ActiveDay()
	if day == nil {
		return
	}
	anchor := day.Anchor()

	idx := day.FindActivity(id)
	if idx < 0 {
		return
	}
	items := day.CloneActivities()
	items = append(items[:idx], items[idx+1:]...)
	e.install(Recompute(items, anchor))
}

// Move removes the activity at from and reinserts it at to (a move, not a
// swap), then recomputes with the anchor captured before the move. Equal or
// out-of-range indexes are a no-op.
func (e *Engine) Move(from, to int) {
	day := e.trip.ActiveDay()
	if day == nil {
		return
	}
	n := len(day.Activities)
	if from == to || from < 0 || from >= n || to < 0 || to >= n {
		return
	}
	anchor := day.Anchor()

	items := day.CloneActivities()
	moved := items[from]
	items = append(items[:from], items[from+1:]...)
	items = append(items[:to], append([]trip.Activity{moved}, items[to:]...)...)
	e.install(Recompute(items, anchor))
}

// Edit merges a partial field update into the matching activity and
// recomputes. Unlike the structural operations, the anchor is read after the
// merge, so an edited start time on the first activity becomes the day's new
// anchor. Editing an unknown id is a no-op.
func (e *Engine) Edit(id string, p trip.Patch) {
	day := e.trip.ActiveDay()
	if day == nil {
		return
	}
	idx := day.FindActivity(id)
	if idx < 0 {
		return
	}

	items := day.CloneActivities()
	items[idx] = p.Apply(items[idx])

	// Re-read the anchor after the merge: an explicit start-time edit on
	// the first activity re-anchors the whole day.
	anchor := "09:00"
	if len(items) > 0 {
		anchor = items[0].StartTime
	}
	e.install(Recompute(items, anchor))
}

// SetDuration changes an activity's duration and recomputes; equivalent to
// Edit restricted to the duration field. Non-positive minutes are ignored.
func (e *Engine) SetDuration(id string, minutes int) {
	if minutes <= 0 {
		return
	}
	e.Edit(id, trip.Patch{Duration: trip.Int(minutes)})
}

// install replaces the active day's list atomically.
func (e *Engine) install(items []trip.Activity) {
	e.trip.ReplaceActivities(e.trip.ActiveDayIndex(), items)
}
