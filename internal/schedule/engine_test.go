package schedule

import (
	"testing"

	"github.com/anachung/itinera/internal/trip"
)

func newTestEngine(items ...trip.Activity) *Engine {
	days := []trip.DaySchedule{
		{Date: "2025-12-13", Label: "Day 1", Activities: items},
		{Date: "2025-12-14", Label: "Day 2"},
	}
	return NewEngine(trip.New("London", "2025-12-13", "2025-12-14", days))
}

// checkChaining asserts the core invariant: every activity starts where the
// previous one ends, modulo midnight.
func checkChaining(t *testing.T, day *trip.DaySchedule) {
	t.Helper()
	for i := 1; i < len(day.Activities); i++ {
		prev := day.Activities[i-1]
		cur := day.Activities[i]
		want := (trip.ParseClock(prev.StartTime) + prev.EffectiveDuration()) % trip.MinutesPerDay
		if got := trip.ParseClock(cur.StartTime); got != want {
			t.Errorf("chain broken at %d: %q starts at %d, want %d", i, cur.Title, got, want)
		}
	}
}

func TestInsertAtEnd(t *testing.T) {
	e := newTestEngine(trip.Activity{ID: "a", StartTime: "09:00", Title: "First"})

	e.Insert(trip.Activity{Title: "Second", StartTime: "23:00"}) // incoming time discarded

	day := e.ActiveDay()
	if len(day.Activities) != 2 {
		t.Fatalf("got %d activities, want 2", len(day.Activities))
	}
	if got := day.Activities[0].StartTime; got != "09:00" {
		t.Errorf("first activity moved to %q, want 09:00", got)
	}
	// Default 60-minute duration on the first activity.
	if got := day.Activities[1].StartTime; got != "10:00" {
		t.Errorf("second activity at %q, want 10:00", got)
	}
	if day.Activities[1].ID == "" {
		t.Error("inserted activity was not assigned an id")
	}
	checkChaining(t, day)
}

func TestInsertIntoEmptyDay(t *testing.T) {
	e := newTestEngine()
	e.SelectDay(1)
	e.Insert(trip.Activity{ID: "x", Title: "Breakfast", DurationMinutes: 30})

	day := e.ActiveDay()
	if got := day.Activities[0].StartTime; got != "09:00" {
		t.Errorf("empty-day insert anchored at %q, want 09:00", got)
	}
}

func TestDelete(t *testing.T) {
	e := newTestEngine(
		trip.Activity{ID: "a", StartTime: "08:00", DurationMinutes: 60},
		trip.Activity{ID: "b", StartTime: "09:00", DurationMinutes: 60},
		trip.Activity{ID: "c", StartTime: "10:00", DurationMinutes: 60},
	)

	t.Run("middle delete keeps the anchor", func(t *testing.T) {
		e.Delete("b")
		day := e.ActiveDay()
		if !equalTimes(day.Activities, []string{"08:00", "09:00"}) {
			t.Errorf("times = %v", times(day.Activities))
		}
	})

	t.Run("deleting the first re-anchors at the captured time", func(t *testing.T) {
		e.Delete("a")
		day := e.ActiveDay()
		// The remaining activity inherits the old day start, not its own
		// previous 09:00 slot.
		if !equalTimes(day.Activities, []string{"08:00"}) {
			t.Errorf("times = %v", times(day.Activities))
		}
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		e.Delete("nope")
		if got := len(e.ActiveDay().Activities); got != 1 {
			t.Errorf("len = %d, want 1", got)
		}
	})
}

func TestMove(t *testing.T) {
	newEngine := func() *Engine {
		return newTestEngine(
			trip.Activity{ID: "a", StartTime: "09:00", Title: "A", DurationMinutes: 60},
			trip.Activity{ID: "b", StartTime: "10:00", Title: "B", DurationMinutes: 30},
			trip.Activity{ID: "c", StartTime: "10:30", Title: "C", DurationMinutes: 90},
		)
	}

	t.Run("move recomputes from the pre-move anchor", func(t *testing.T) {
		e := newEngine()
		e.Move(0, 2) // A to the back
		day := e.ActiveDay()
		wantOrder := []string{"b", "c", "a"}
		for i, id := range wantOrder {
			if day.Activities[i].ID != id {
				t.Fatalf("order = %v", times(day.Activities))
			}
		}
		if !equalTimes(day.Activities, []string{"09:00", "09:30", "11:00"}) {
			t.Errorf("times = %v", times(day.Activities))
		}
		checkChaining(t, day)
	})

	t.Run("inverse move restores order and times", func(t *testing.T) {
		e := newEngine()
		before := times(e.ActiveDay().Activities)
		e.Move(0, 2)
		e.Move(2, 0)
		day := e.ActiveDay()
		if day.Activities[0].ID != "a" || day.Activities[1].ID != "b" || day.Activities[2].ID != "c" {
			t.Fatalf("order not restored")
		}
		if !equalTimes(day.Activities, before) {
			t.Errorf("times = %v, want %v", times(day.Activities), before)
		}
	})

	t.Run("same index is a no-op", func(t *testing.T) {
		e := newEngine()
		before := times(e.ActiveDay().Activities)
		e.Move(1, 1)
		if !equalTimes(e.ActiveDay().Activities, before) {
			t.Errorf("times changed on no-op move")
		}
	})

	t.Run("out of range is a no-op", func(t *testing.T) {
		e := newEngine()
		before := times(e.ActiveDay().Activities)
		e.Move(-1, 2)
		e.Move(0, 3)
		if !equalTimes(e.ActiveDay().Activities, before) {
			t.Errorf("times changed on out-of-range move")
		}
	})
}

func TestInsertInMiddleRipple(t *testing.T) {
	e := newTestEngine(
		trip.Activity{ID: "a", StartTime: "09:00", DurationMinutes: 60},
		trip.Activity{ID: "b", StartTime: "10:00", DurationMinutes: 60},
		trip.Activity{ID: "c", StartTime: "11:00", DurationMinutes: 60},
	)

	// Insert appends, then a move places the new activity at position 1.
	e.Insert(trip.Activity{ID: "new", DurationMinutes: 30})
	e.Move(3, 1)

	day := e.ActiveDay()
	if !equalTimes(day.Activities, []string{"09:00", "10:00", "10:30", "11:30"}) {
		t.Errorf("times = %v, want [09:00 10:00 10:30 11:30]", times(day.Activities))
	}
	if day.Activities[1].ID != "new" {
		t.Errorf("position 1 = %q, want the inserted activity", day.Activities[1].ID)
	}
}

func TestEdit(t *testing.T) {
	t.Run("duration change ripples forward only", func(t *testing.T) {
		e := newTestEngine(
			trip.Activity{ID: "a", StartTime: "09:00", DurationMinutes: 60},
			trip.Activity{ID: "b", StartTime: "10:00", DurationMinutes: 60},
			trip.Activity{ID: "c", StartTime: "11:00", DurationMinutes: 60},
		)
		e.Edit("b", trip.Patch{Duration: trip.Int(150)})
		day := e.ActiveDay()
		if !equalTimes(day.Activities, []string{"09:00", "10:00", "12:30"}) {
			t.Errorf("times = %v", times(day.Activities))
		}
	})

	t.Run("editing the first start time re-anchors the day", func(t *testing.T) {
		e := newTestEngine(
			trip.Activity{ID: "a", StartTime: "09:00", DurationMinutes: 60},
			trip.Activity{ID: "b", StartTime: "10:00", DurationMinutes: 60},
		)
		e.Edit("a", trip.Patch{StartTime: trip.String("11:30")})
		day := e.ActiveDay()
		if !equalTimes(day.Activities, []string{"11:30", "12:30"}) {
			t.Errorf("times = %v", times(day.Activities))
		}
	})

	t.Run("editing a later start time is overridden by the chain", func(t *testing.T) {
		e := newTestEngine(
			trip.Activity{ID: "a", StartTime: "09:00", DurationMinutes: 60},
			trip.Activity{ID: "b", StartTime: "10:00", DurationMinutes: 60},
		)
		e.Edit("b", trip.Patch{StartTime: trip.String("15:00")})
		day := e.ActiveDay()
		if !equalTimes(day.Activities, []string{"09:00", "10:00"}) {
			t.Errorf("times = %v", times(day.Activities))
		}
	})

	t.Run("text edits do not disturb times", func(t *testing.T) {
		e := newTestEngine(
			trip.Activity{ID: "a", StartTime: "09:00", DurationMinutes: 60},
			trip.Activity{ID: "b", StartTime: "10:00", DurationMinutes: 60},
		)
		e.Edit("b", trip.Patch{Title: trip.String("Renamed"), Notes: trip.String("reservation #42")})
		day := e.ActiveDay()
		if !equalTimes(day.Activities, []string{"09:00", "10:00"}) {
			t.Errorf("times = %v", times(day.Activities))
		}
		if day.Activities[1].Title != "Renamed" {
			t.Errorf("title = %q", day.Activities[1].Title)
		}
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		e := newTestEngine(trip.Activity{ID: "a", StartTime: "09:00"})
		e.Edit("zzz", trip.Patch{Title: trip.String("X")})
		if got := e.ActiveDay().Activities[0].Title; got != "" {
			t.Errorf("title = %q, want unchanged", got)
		}
	})
}

func TestSetDuration(t *testing.T) {
	e := newTestEngine(
		trip.Activity{ID: "a", StartTime: "09:00", DurationMinutes: 60},
		trip.Activity{ID: "b", StartTime: "10:00", DurationMinutes: 60},
	)

	e.SetDuration("a", 90)
	day := e.ActiveDay()
	if !equalTimes(day.Activities, []string{"09:00", "10:30"}) {
		t.Errorf("times = %v", times(day.Activities))
	}

	e.SetDuration("a", 0) // ignored
	if got := e.ActiveDay().Activities[0].DurationMinutes; got != 90 {
		t.Errorf("duration = %d after invalid SetDuration", got)
	}
}

func TestOperationsTargetActiveDayOnly(t *testing.T) {
	e := newTestEngine(trip.Activity{ID: "a", StartTime: "14:00", DurationMinutes: 90})

	e.SelectDay(1)
	e.Insert(trip.Activity{Title: "Dinner"})
	e.SelectDay(0)

	if got := len(e.Trip().Days[0].Activities); got != 1 {
		t.Errorf("day 1 has %d activities, want 1", got)
	}
	if got := len(e.Trip().Days[1].Activities); got != 1 {
		t.Errorf("day 2 has %d activities, want 1", got)
	}
	// Switching back did not recompute day 1.
	if got := e.Trip().Days[0].Activities[0].StartTime; got != "14:00" {
		t.Errorf("day 1 time = %q, want 14:00", got)
	}
}

func TestChainingHoldsAfterMixedOperations(t *testing.T) {
	e := newTestEngine(
		trip.Activity{ID: "a", StartTime: "08:30", DurationMinutes: 45},
		trip.Activity{ID: "b", StartTime: "09:15", DurationMinutes: 200},
		trip.Activity{ID: "c", StartTime: "12:35"},
	)

	e.Insert(trip.Activity{Title: "Late show", DurationMinutes: 600})
	e.Move(3, 0)
	e.SetDuration("b", 25)
	e.Delete("c")
	e.Edit("a", trip.Patch{Duration: trip.Int(75)})

	checkChaining(t, e.ActiveDay())
}

func TestCopyOnWriteLeavesOldReadersIntact(t *testing.T) {
	e := newTestEngine(
		trip.Activity{ID: "a", StartTime: "09:00", DurationMinutes: 60},
		trip.Activity{ID: "b", StartTime: "10:00", DurationMinutes: 60},
	)
	snapshot := e.ActiveDay().Activities

	e.SetDuration("a", 300)

	if snapshot[1].StartTime != "10:00" {
		t.Errorf("old reader observed partial update: %q", snapshot[1].StartTime)
	}
}
