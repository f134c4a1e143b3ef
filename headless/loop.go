// Package headless drives a simulation without a window.
package headless

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

// Loop ticks a simulation either at a fixed rate or as fast as possible.
type Loop struct {
	ecs      *ecs.ECS
	tickRate int // 0 runs unthrottled
}

func NewLoop(e *ecs.ECS, tickRate int) *Loop {
	return &Loop{
		ecs:      e,
		tickRate: tickRate,
	}
}

// Run performs up to ticks updates and returns how many ran. It stops early
// when ctx is done.
func (l *Loop) Run(ctx context.Context, ticks int) (int, error) {
	log.Info().Int("ticks", ticks).Int("tps", l.tickRate).Msg("Simulation started")

	if l.tickRate <= 0 {
		for i := 0; i < ticks; i++ {
			if err := ctx.Err(); err != nil {
				return i, err
			}
			l.ecs.Update()
		}
		log.Info().Int("ticks", ticks).Msg("Simulation finished")
		return ticks, nil
	}

	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	for i := 0; i < ticks; {
		select {
		case <-ctx.Done():
			log.Info().Int("ticks", i).Msg("Simulation stopped")
			return i, ctx.Err()
		case <-ticker.C:
			l.ecs.Update()
			i++
		}
	}
	log.Info().Int("ticks", ticks).Msg("Simulation finished")
	return ticks, nil
}
