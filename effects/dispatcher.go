// Package effects turns shot feedback requests into rumble and sound.
package effects

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/automoto/gamepad-gun/components"
	cfg "github.com/automoto/gamepad-gun/config"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
)

// Effect is a dual-motor rumble.
type Effect struct {
	StartDelay      time.Duration
	Duration        time.Duration
	WeakMagnitude   float64 // 0.0 - 1.0
	StrongMagnitude float64 // 0.0 - 1.0
}

// ShotEffect is the rumble played on every shot.
func ShotEffect() Effect {
	return Effect{
		StartDelay:      cfg.Haptics.StartDelay,
		Duration:        cfg.Haptics.Duration,
		WeakMagnitude:   cfg.Haptics.WeakMagnitude,
		StrongMagnitude: cfg.Haptics.StrongMagnitude,
	}
}

// Rumbler drives the vibration motors of a controller slot.
type Rumbler interface {
	SupportsHaptics(slot int) bool
	PlayEffect(slot int, e Effect) error
}

// SoundPlayer plays loaded sounds.
type SoundPlayer interface {
	Play(id cfg.SoundID)
}

// Stats counts dispatched and dropped work.
type Stats struct {
	Pulses  int64
	Sounds  int64
	Dropped int64
}

// Dispatcher runs feedback on a worker pool so the tick never waits on a
// device. Either output may be nil.
type Dispatcher struct {
	pool    *ants.Pool
	rumbler Rumbler
	sounds  SoundPlayer
	effect  Effect

	pulses  atomic.Int64
	played  atomic.Int64
	dropped atomic.Int64
}

// NewDispatcher creates a dispatcher with size workers.
func NewDispatcher(r Rumbler, s SoundPlayer, size int) (*Dispatcher, error) {
	if size <= 0 {
		size = 1
	}
	pool, err := ants.NewPool(
		size,
		ants.WithNonblocking(true),
		ants.WithPanicHandler(func(p interface{}) {
			log.Error().Interface("panic", p).Msg("Effect worker panicked")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create effect pool: %w", err)
	}
	return &Dispatcher{
		pool:    pool,
		rumbler: r,
		sounds:  s,
		effect:  ShotEffect(),
	}, nil
}

// Pulse plays the shot rumble on slot. It does nothing when enabled is false
// or the controller has no motors.
func (d *Dispatcher) Pulse(slot int, enabled bool) {
	if !enabled || d.rumbler == nil || !d.rumbler.SupportsHaptics(slot) {
		return
	}
	effect := d.effect
	d.submit(func() {
		if err := d.rumbler.PlayEffect(slot, effect); err != nil {
			log.Debug().Err(err).Int("slot", slot).Msg("Rumble failed")
			return
		}
		d.pulses.Add(1)
	})
}

// PlaySound plays id unless enabled is false.
func (d *Dispatcher) PlaySound(id cfg.SoundID, enabled bool) {
	if !enabled || d.sounds == nil || id == cfg.SoundNone {
		return
	}
	d.submit(func() {
		d.sounds.Play(id)
		d.played.Add(1)
	})
}

// Subscribe routes the world's feedback events to the dispatcher.
func (d *Dispatcher) Subscribe(w donburi.World) {
	components.HapticRequested.Subscribe(w, func(w donburi.World, ev components.HapticRequestEvent) {
		d.Pulse(ev.Slot, ev.Enabled)
	})
	components.SoundRequested.Subscribe(w, func(w donburi.World, ev components.SoundRequestEvent) {
		d.PlaySound(ev.Sound, ev.Enabled)
	})
}

// Stats returns the counters so far.
func (d *Dispatcher) Stats() Stats {
	return Stats{
		Pulses:  d.pulses.Load(),
		Sounds:  d.played.Load(),
		Dropped: d.dropped.Load(),
	}
}

// Close waits up to timeout for running effects, then stops the pool.
func (d *Dispatcher) Close(timeout time.Duration) error {
	return d.pool.ReleaseTimeout(timeout)
}

func (d *Dispatcher) submit(task func()) {
	if err := d.pool.Submit(task); err != nil {
		// Pool saturated or closed, feedback is best effort
		d.dropped.Add(1)
		log.Debug().Err(err).Msg("Effect dropped")
	}
}
