package gamemath

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// FireInterval maps trigger pressure onto the delay between automatic shots.
// A fully depressed trigger yields min, a barely touched one yields max.
func FireInterval(value float64, min, max time.Duration) time.Duration {
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	return min + time.Duration((1-value)*float64(max-min))
}

// AutoFireReady reports whether enough time passed since the last automatic shot.
func AutoFireReady(now, last, interval time.Duration) bool {
	return now-last > interval
}

// Ballistic is a projectile's kinematic state.
type Ballistic struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
}

// Launch returns the kinematic state of a projectile fired from pose.
func Launch(pose Pose, speed, height float64) Ballistic {
	start := pose.Position
	start[1] = height
	return Ballistic{
		Position: start,
		Velocity: Heading(pose.Yaw).Mul(speed),
	}
}

// Advance moves a projectile by one scaled velocity step.
func (b Ballistic) Advance(scale float64) Ballistic {
	b.Position = b.Position.Add(b.Velocity.Mul(scale))
	return b
}

// OutOfBounds reports whether p lies outside the cube of half-extent bound.
func OutOfBounds(p mgl64.Vec3, bound float64) bool {
	for i := 0; i < 3; i++ {
		if p[i] > bound || p[i] < -bound {
			return true
		}
	}
	return false
}

// Tracked pairs a projectile with the caller's handle for it.
type Tracked[K any] struct {
	Key K
	Ballistic
}

// AdvanceAndCull advances every projectile and returns the survivors, in
// input order, in a new slice; the input is left untouched.
func AdvanceAndCull[K any](all []Tracked[K], scale, bound float64) []Tracked[K] {
	survivors := make([]Tracked[K], 0, len(all))
	for _, t := range all {
		t.Ballistic = t.Advance(scale)
		if OutOfBounds(t.Position, bound) {
			continue
		}
		survivors = append(survivors, t)
	}
	return survivors
}
