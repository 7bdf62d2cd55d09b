// Package body holds the mutable disk state the scheduler advances.
package body

import "github.com/deveworld/simrelay/internal/geom"

// Particle is a single hard disk. Position and Velocity mutate as the
// scheduler advances simulated time; Radius is fixed at construction.
//
// CollisionCount is the invalidation token described in the event
// package: it is incremented every time the particle participates in a
// collision response, and a queued Event is stale once the token it
// recorded no longer matches.
type Particle struct {
	ID             int
	Position       geom.Vector2
	Velocity       geom.Vector2
	Radius         float64
	CollisionCount int
}

// NewParticle constructs a Particle with a zero collision count.
func NewParticle(id int, position, velocity geom.Vector2, radius float64) *Particle {
	return &Particle{
		ID:       id,
		Position: position,
		Velocity: velocity,
		Radius:   radius,
	}
}

// Advance moves the particle in a straight line for dt simulated time.
func (p *Particle) Advance(dt float64) {
	p.Position = p.Position.Add(p.Velocity.Scale(dt))
}

// KineticEnergy returns ½|v|² (unit mass; the core never models mass
// separately).
func (p *Particle) KineticEnergy() float64 {
	return 0.5 * p.Velocity.Dot(p.Velocity)
}

// State is an immutable, deep-copied view of a Particle suitable for
// handing to a Snapshot sink: the sink can retain it safely even after
// the scheduler mutates the live Particle.
type State struct {
	ID       int
	Position geom.Vector2
	Velocity geom.Vector2
	Radius   float64
}

// Snapshot returns an immutable copy of p's current state.
func (p *Particle) Snapshot() State {
	return State{ID: p.ID, Position: p.Position, Velocity: p.Velocity, Radius: p.Radius}
}

// Snapshots deep-copies a slice of particles into sink-safe State values.
func Snapshots(particles []*Particle) []State {
	out := make([]State, len(particles))
	for i, p := range particles {
		out[i] = p.Snapshot()
	}
	return out
}
