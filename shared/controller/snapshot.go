// Package controller holds the normalized per-tick view of a gamepad and the
// edge tracking derived from it. It must have zero dependencies on ebiten so
// the headless runner and tests can drive the simulation without a window.
package controller

// ButtonState is a single button as read on one tick.
type ButtonState struct {
	Pressed bool
	Value   float64 // 0.0 - 1.0, analog pressure for triggers
}

// Snapshot is the immutable read of one controller for one tick.
type Snapshot struct {
	Axes    []float64
	Buttons []ButtonState
}

// NewSnapshot copies and clamps raw device values into a Snapshot.
func NewSnapshot(axes []float64, buttons []ButtonState) Snapshot {
	s := Snapshot{
		Axes:    make([]float64, len(axes)),
		Buttons: make([]ButtonState, len(buttons)),
	}
	for i, v := range axes {
		s.Axes[i] = clamp(v, -1, 1)
	}
	for i, b := range buttons {
		s.Buttons[i] = ButtonState{Pressed: b.Pressed, Value: clamp(b.Value, 0, 1)}
	}
	return s
}

// Axis returns the axis value, or 0 when the device reports fewer axes.
func (s Snapshot) Axis(i int) float64 {
	if i < 0 || i >= len(s.Axes) {
		return 0
	}
	return s.Axes[i]
}

// Button returns the button state, or an unpressed button when out of range.
func (s Snapshot) Button(i int) ButtonState {
	if i < 0 || i >= len(s.Buttons) {
		return ButtonState{}
	}
	return s.Buttons[i]
}

// Pressed reports whether button i is held this tick.
func (s Snapshot) Pressed(i int) bool {
	return s.Button(i).Pressed
}

// Value returns the analog value of button i.
func (s Snapshot) Value(i int) float64 {
	return s.Button(i).Value
}

func clamp(v, lo, hi float64) float64 {
	if v != v { // NaN from a misbehaving driver
		return 0
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
