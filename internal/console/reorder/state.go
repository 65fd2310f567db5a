package reorder

import "fmt"

// State is the drag session: either Idle or Dragging.
type State interface {
	isState()
}

// Idle means no drag gesture is in progress.
type Idle struct{}

// Dragging tracks the index the lifted row currently occupies. It starts at
// the drag source and follows every hovered row.
type Dragging struct {
	Tracked int
}

func (Idle) isState()     {}
func (Dragging) isState() {}

func (Idle) String() string       { return "idle" }
func (d Dragging) String() string { return fmt.Sprintf("dragging(%d)", d.Tracked) }

// start handles dragstart(i). A gesture already in progress is replaced.
func start(i int) State {
	return Dragging{Tracked: i}
}

// over handles dragover(j): the tracked index re-targets to the hovered row.
func over(s State, j int) State {
	if d, ok := s.(Dragging); ok && d.Tracked != j {
		return Dragging{Tracked: j}
	}
	return s
}

// end handles dragend(k). It reports the move to apply (the row at k goes to
// position to) and whether the gesture produced one. The session always
// returns to Idle.
func end(s State, k int) (next State, to int, moved bool) {
	d, ok := s.(Dragging)
	if !ok || d.Tracked == k {
		return Idle{}, 0, false
	}
	return Idle{}, d.Tracked, true
}
