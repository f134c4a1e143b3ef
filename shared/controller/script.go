package controller

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// ScriptStep is one run of identical ticks in an input script.
//
//	slots:
//	  0:
//	    - repeat: 60
//	      axes: [0, -1, 0.5, 0]
//	      press: [0]
//	      analog: {7: 0.8}
//	    - repeat: 10
//	      disconnected: true
type ScriptStep struct {
	Repeat       int             `yaml:"repeat"`
	Axes         []float64       `yaml:"axes"`
	Press        []int           `yaml:"press"`
	Analog       map[int]float64 `yaml:"analog"`
	Disconnected bool            `yaml:"disconnected"`
}

// MaxScriptButtons bounds the button indices a script may name.
const MaxScriptButtons = 64

// Script is a YAML description of controller input per slot.
type Script struct {
	Slots map[int][]ScriptStep `yaml:"slots"`
}

// LoadScript reads and parses a YAML input script.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script %s: %w", path, err)
	}
	return ParseScript(data)
}

// ParseScript parses a YAML input script.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	for slot, steps := range s.Slots {
		for i, step := range steps {
			if step.Repeat < 0 {
				return nil, fmt.Errorf("slot %d step %d: negative repeat", slot, i)
			}
			if err := step.checkButtons(); err != nil {
				return nil, fmt.Errorf("slot %d step %d: %w", slot, i, err)
			}
		}
	}
	return &s, nil
}

// Ticks returns the length of the longest slot script.
func (s *Script) Ticks() int {
	longest := 0
	for _, steps := range s.Slots {
		n := 0
		for _, step := range steps {
			n += step.repeatCount()
		}
		if n > longest {
			longest = n
		}
	}
	return longest
}

// SlotIDs returns the scripted slots in ascending order.
func (s *Script) SlotIDs() []int {
	ids := make([]int, 0, len(s.Slots))
	for slot := range s.Slots {
		ids = append(ids, slot)
	}
	sort.Ints(ids)
	return ids
}

// Source builds a Scripted source replaying the script.
func (s *Script) Source() *Scripted {
	src := NewScripted()
	for _, slot := range s.SlotIDs() {
		for _, step := range s.Slots[slot] {
			if step.Disconnected {
				src.Disconnect(slot, step.repeatCount())
				continue
			}
			src.Push(slot, step.snapshot(), step.repeatCount())
		}
	}
	return src
}

func (st ScriptStep) checkButtons() error {
	for _, b := range st.Press {
		if b < 0 || b >= MaxScriptButtons {
			return fmt.Errorf("button %d out of range [0, %d)", b, MaxScriptButtons)
		}
	}
	for b := range st.Analog {
		if b < 0 || b >= MaxScriptButtons {
			return fmt.Errorf("button %d out of range [0, %d)", b, MaxScriptButtons)
		}
	}
	return nil
}

func (st ScriptStep) repeatCount() int {
	if st.Repeat == 0 {
		return 1
	}
	return st.Repeat
}

// snapshot builds the step's input. Indices outside [0, MaxScriptButtons)
// are ignored; ParseScript rejects them.
func (st ScriptStep) snapshot() Snapshot {
	valid := func(b int) bool { return b >= 0 && b < MaxScriptButtons }

	size := 0
	for _, b := range st.Press {
		if valid(b) && b+1 > size {
			size = b + 1
		}
	}
	for b := range st.Analog {
		if valid(b) && b+1 > size {
			size = b + 1
		}
	}

	buttons := make([]ButtonState, size)
	for _, b := range st.Press {
		if valid(b) {
			buttons[b] = ButtonState{Pressed: true, Value: 1}
		}
	}
	for b, v := range st.Analog {
		if valid(b) {
			buttons[b] = ButtonState{Pressed: v > 0, Value: v}
		}
	}
	return NewSnapshot(st.Axes, buttons)
}
