package collision

import (
	"github.com/deveworld/simrelay/internal/body"
	"github.com/deveworld/simrelay/internal/container"
)

// RespondDiskDisk applies the canonical hard-sphere elastic impulse to a
// and b and increments both collision counts.
func RespondDiskDisk(a, b *body.Particle) {
	dr := b.Position.Sub(a.Position)
	dv := b.Velocity.Sub(a.Velocity)
	sigma := a.Radius + b.Radius

	jScalar := (2 * dv.Dot(dr)) / (2 * sigma)
	j := dr.Scale(jScalar / sigma)

	a.Velocity = a.Velocity.Add(j)
	b.Velocity = b.Velocity.Sub(j)

	a.CollisionCount++
	b.CollisionCount++
}

// RespondDiskSegment reflects p's velocity component normal to seg and
// increments p's collision count.
func RespondDiskSegment(p *body.Particle, seg container.Obstacle) {
	if seg.Orientation == container.Horizontal {
		p.Velocity.Y = -p.Velocity.Y
	} else {
		p.Velocity.X = -p.Velocity.X
	}
	p.CollisionCount++
}

// RespondDiskVertex mirrors p's velocity across the line from the vertex
// to p's center and increments p's collision count.
func RespondDiskVertex(p *body.Particle, v container.Obstacle) {
	n := p.Position.Sub(v.Position).Normalize()
	p.Velocity = p.Velocity.Sub(n.Scale(2 * p.Velocity.Dot(n)))
	p.CollisionCount++
}
