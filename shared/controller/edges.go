package controller

// EdgeState stores the previous tick's pressed flag per button for one slot.
// Edges are read against the stored state and Commit writes the new state,
// so every edge in a tick compares against last tick's value.
type EdgeState struct {
	previous map[int]bool
}

// NewEdgeState returns an empty tracker; every button starts unpressed.
func NewEdgeState() *EdgeState {
	return &EdgeState{previous: make(map[int]bool)}
}

// RiseEdge reports a transition from unpressed to pressed.
func (e *EdgeState) RiseEdge(button int, snap Snapshot) bool {
	return snap.Pressed(button) && !e.previous[button]
}

// Toggle flips flag on a rising edge and holds it otherwise.
func (e *EdgeState) Toggle(flag bool, button int, snap Snapshot) bool {
	if e.RiseEdge(button, snap) {
		return !flag
	}
	return flag
}

// Commit records this tick's pressed flags. Buttons missing from the
// snapshot are recorded as released.
func (e *EdgeState) Commit(snap Snapshot) {
	for b := range e.previous {
		if b >= len(snap.Buttons) {
			e.previous[b] = false
		}
	}
	for i, b := range snap.Buttons {
		e.previous[i] = b.Pressed
	}
}

// EdgeStore keys edge trackers by controller slot.
type EdgeStore struct {
	slots map[int]*EdgeState
}

// NewEdgeStore creates an empty store.
func NewEdgeStore() *EdgeStore {
	return &EdgeStore{slots: make(map[int]*EdgeState)}
}

// For returns the tracker for slot, creating it on first use.
func (s *EdgeStore) For(slot int) *EdgeState {
	e, ok := s.slots[slot]
	if !ok {
		e = NewEdgeState()
		s.slots[slot] = e
	}
	return e
}
