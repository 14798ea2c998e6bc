package schedule

import (
	"testing"

	"github.com/anachung/itinera/internal/trip"
)

func TestDragLifecycle(t *testing.T) {
	var d Drag

	if d.Phase() != DragIdle {
		t.Fatalf("initial phase = %d, want idle", d.Phase())
	}

	d.Start(2)
	if d.Phase() != DragActive || d.Source() != 2 {
		t.Fatalf("after Start: phase=%d source=%d", d.Phase(), d.Source())
	}

	d.Over(0)
	d.Over(1)
	from, to, ok := d.Drop()
	if !ok || from != 2 || to != 1 {
		t.Errorf("Drop() = %d, %d, %v; want 2, 1, true", from, to, ok)
	}
	if d.Phase() != DragDropped {
		t.Errorf("phase after drop = %d", d.Phase())
	}

	d.Reset()
	if d.Phase() != DragIdle {
		t.Errorf("phase after reset = %d", d.Phase())
	}
}

func TestDragDropOnSourceIsNoMove(t *testing.T) {
	var d Drag
	d.Start(1)
	d.Over(1)
	if _, _, ok := d.Drop(); ok {
		t.Error("Drop() on the source index should not request a move")
	}
}

func TestDragDropWhenIdle(t *testing.T) {
	var d Drag
	if _, _, ok := d.Drop(); ok {
		t.Error("Drop() with no active gesture should be a no-op")
	}
}

func TestDragCancelLeavesScheduleUntouched(t *testing.T) {
	e := newTestEngine(
		trip.Activity{ID: "a", StartTime: "09:00", DurationMinutes: 60},
		trip.Activity{ID: "b", StartTime: "10:00", DurationMinutes: 60},
	)
	before := times(e.ActiveDay().Activities)

	var d Drag
	d.Start(0)
	d.Over(1)
	d.Cancel()
	if d.Phase() != DragCancelled {
		t.Errorf("phase after cancel = %d", d.Phase())
	}
	if _, _, ok := d.Drop(); ok {
		t.Error("Drop() after cancel should be a no-op")
	}

	if !equalTimes(e.ActiveDay().Activities, before) {
		t.Errorf("schedule changed after cancelled drag: %v", times(e.ActiveDay().Activities))
	}
}

func TestDragDropAppliesMove(t *testing.T) {
	e := newTestEngine(
		trip.Activity{ID: "a", StartTime: "09:00", DurationMinutes: 30},
		trip.Activity{ID: "b", StartTime: "09:30", DurationMinutes: 30},
		trip.Activity{ID: "c", StartTime: "10:00", DurationMinutes: 30},
	)

	var d Drag
	d.Start(0)
	d.Over(2)
	if from, to, ok := d.Drop(); ok {
		e.Move(from, to)
	}
	d.Reset()

	day := e.ActiveDay()
	if day.Activities[2].ID != "a" {
		t.Errorf("order after drop = %q %q %q", day.Activities[0].ID, day.Activities[1].ID, day.Activities[2].ID)
	}
	checkChaining(t, day)
}
