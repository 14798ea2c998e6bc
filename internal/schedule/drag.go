package schedule

// DragPhase identifies where a drag-reorder gesture is in its lifecycle.
type DragPhase int

const (
	DragIdle DragPhase = iota
	DragActive
	DragDropped
	DragCancelled
)

// Drag tracks an in-progress reorder gesture as an explicit state machine:
// Idle -> Dragging(source) -> Dropped(target) | Cancelled. Only a drop may
// trigger the Move operation; cancelling leaves the day untouched.
type Drag struct {
	phase  DragPhase
	source int
	target int
}

// Phase returns the current phase.
func (d *Drag) Phase() DragPhase { return d.phase }

// Source returns the index the gesture started on. Valid only while
// dragging or after a drop.
func (d *Drag) Source() int { return d.source }

// Target returns the index currently hovered, or the drop index once
// dropped.
func (d *Drag) Target() int { return d.target }

// Start begins a drag from the given index. Starting while a gesture is in
// flight restarts it.
func (d *Drag) Start(source int) {
	d.phase = DragActive
	d.source = source
	d.target = source
}

// Over records the index currently hovered. Ignored unless dragging.
func (d *Drag) Over(index int) {
	if d.phase != DragActive {
		return
	}
	d.target = index
}

// Drop completes the gesture, returning the move to apply. ok is false when
// no gesture was active or the drop landed on the source index, in which
// case nothing should move.
func (d *Drag) Drop() (from, to int, ok bool) {
	if d.phase != DragActive {
		return 0, 0, false
	}
	d.phase = DragDropped
	if d.source == d.target {
		return 0, 0, false
	}
	return d.source, d.target, true
}

// Cancel abandons the gesture without mutating anything.
func (d *Drag) Cancel() {
	if d.phase == DragActive {
		d.phase = DragCancelled
	}
}

// Reset returns the machine to idle, ready for the next gesture.
func (d *Drag) Reset() {
	d.phase = DragIdle
}
