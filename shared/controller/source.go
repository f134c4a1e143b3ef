package controller

// Source reads controller state once per tick.
// Read returns false when no controller occupies the slot.
type Source interface {
	Read(slot int) (Snapshot, bool)
}

// Frame is one scripted tick of input for a slot. A nil Snapshot means the
// controller is disconnected for that tick.
type Frame struct {
	Snapshot *Snapshot
}

// Scripted replays a fixed list of frames per slot. Once a slot's script is
// exhausted the last frame is held.
type Scripted struct {
	frames map[int][]Frame
	cursor map[int]int
}

// NewScripted creates an empty scripted source.
func NewScripted() *Scripted {
	return &Scripted{
		frames: make(map[int][]Frame),
		cursor: make(map[int]int),
	}
}

// Push appends a connected frame for slot, repeated n times.
func (s *Scripted) Push(slot int, snap Snapshot, n int) *Scripted {
	for i := 0; i < n; i++ {
		copied := snap
		s.frames[slot] = append(s.frames[slot], Frame{Snapshot: &copied})
	}
	return s
}

// Disconnect appends n disconnected frames for slot.
func (s *Scripted) Disconnect(slot int, n int) *Scripted {
	for i := 0; i < n; i++ {
		s.frames[slot] = append(s.frames[slot], Frame{})
	}
	return s
}

// Read implements Source. Each call consumes one frame for the slot.
func (s *Scripted) Read(slot int) (Snapshot, bool) {
	frames := s.frames[slot]
	if len(frames) == 0 {
		return Snapshot{}, false
	}

	i := s.cursor[slot]
	if i >= len(frames) {
		i = len(frames) - 1
	} else {
		s.cursor[slot] = i + 1
	}

	f := frames[i]
	if f.Snapshot == nil {
		return Snapshot{}, false
	}
	return *f.Snapshot, true
}
