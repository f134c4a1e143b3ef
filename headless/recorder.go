package headless

import (
	"sort"

	"github.com/automoto/gamepad-gun/components"
	cfg "github.com/automoto/gamepad-gun/config"
	"github.com/automoto/gamepad-gun/shared/gamemath"
	"github.com/automoto/gamepad-gun/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SlotReport is what one controller slot did during a run.
type SlotReport struct {
	Slot          int
	Connected     bool
	Shots         int
	AutoShots     int
	Sounds        int // sound requests with sound on
	Pulses        int // rumble requests with vibration on
	ModeChanges   int
	ToggleChanges int
	Disconnects   int
	Mode          cfg.BulletMode
	Vibration     bool
	Sound         bool
	Pose          gamemath.Pose
}

// Report summarizes a run.
type Report struct {
	Ticks       uint64
	Elapsed     string
	Projectiles int // alive at the end
	Slots       []SlotReport
}

// Recorder counts the events of one simulation.
type Recorder struct {
	ecs   *ecs.ECS
	slots map[int]*SlotReport
}

// NewRecorder subscribes a recorder to the simulation's events.
func NewRecorder(e *ecs.ECS) *Recorder {
	r := &Recorder{ecs: e, slots: make(map[int]*SlotReport)}

	components.ShotFired.Subscribe(e.World, func(w donburi.World, ev components.ShotFiredEvent) {
		s := r.slot(ev.Slot)
		s.Shots++
		if ev.Auto {
			s.AutoShots++
		}
	})
	components.SoundRequested.Subscribe(e.World, func(w donburi.World, ev components.SoundRequestEvent) {
		if ev.Enabled {
			r.slot(ev.Slot).Sounds++
		}
	})
	components.HapticRequested.Subscribe(e.World, func(w donburi.World, ev components.HapticRequestEvent) {
		if ev.Enabled {
			r.slot(ev.Slot).Pulses++
		}
	})
	components.ModeChanged.Subscribe(e.World, func(w donburi.World, ev components.ModeChangedEvent) {
		r.slot(ev.Slot).ModeChanges++
	})
	components.ToggleChanged.Subscribe(e.World, func(w donburi.World, ev components.ToggleChangedEvent) {
		r.slot(ev.Slot).ToggleChanges++
	})
	components.ControllerConnection.Subscribe(e.World, func(w donburi.World, ev components.ControllerConnectionEvent) {
		if !ev.Connected {
			r.slot(ev.Slot).Disconnects++
		}
	})

	return r
}

func (r *Recorder) slot(slot int) *SlotReport {
	s, ok := r.slots[slot]
	if !ok {
		s = &SlotReport{Slot: slot}
		r.slots[slot] = s
	}
	return s
}

// Report snapshots the counters and the final player state.
func (r *Recorder) Report() Report {
	components.Controller.Each(r.ecs.World, func(e *donburi.Entry) {
		c := components.Controller.Get(e)
		s := r.slot(c.Slot)
		s.Connected = c.Connected
		s.Mode = components.Weapon.Get(e).Mode
		t := components.Toggles.Get(e)
		s.Vibration, s.Sound = t.VibrationEnabled, t.SoundEnabled
		s.Pose = components.Transform.Get(e).Pose
	})

	clock := systems.GetOrCreateClock(r.ecs)
	rep := Report{
		Ticks:       clock.Tick,
		Elapsed:     clock.Now.String(),
		Projectiles: systems.ProjectileCount(r.ecs),
	}
	for _, s := range r.slots {
		rep.Slots = append(rep.Slots, *s)
	}
	sort.Slice(rep.Slots, func(i, j int) bool { return rep.Slots[i].Slot < rep.Slots[j].Slot })
	return rep
}
