package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is the simulation clock (singleton component).
type ClockData struct {
	Now     time.Duration
	Step    time.Duration // advanced every tick
	Nominal time.Duration // step at which per-tick speeds are tuned
	Tick    uint64
}

// Scale returns the ratio between the step and the nominal step.
func (c *ClockData) Scale() float64 {
	if c.Nominal <= 0 {
		return 1
	}
	return float64(c.Step) / float64(c.Nominal)
}

var Clock = donburi.NewComponentType[ClockData]()
