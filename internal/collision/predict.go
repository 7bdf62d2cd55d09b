package collision

import (
	"math"

	"github.com/deveworld/simrelay/internal/body"
	"github.com/deveworld/simrelay/internal/container"
	"github.com/deveworld/simrelay/internal/geom"
)

// DiskDisk returns the time from now until particles a and b next touch,
// or NoContact. Neither particle is mutated.
func DiskDisk(a, b *body.Particle, gb Guardband) float64 {
	dr := b.Position.Sub(a.Position)
	dv := b.Velocity.Sub(a.Velocity)
	sigma := a.Radius + b.Radius

	dvdr := dv.Dot(dr)
	if dvdr >= -gb.Eps1 {
		return NoContact
	}

	dvdv := dv.Dot(dv)
	if dvdv <= gb.Eps2 {
		return NoContact
	}

	d := dvdr*dvdr - dvdv*(dr.Dot(dr)-sigma*sigma)
	if d < gb.Eps2 {
		return NoContact
	}

	t := -(dvdr + math.Sqrt(d)) / dvdv
	if t < gb.Eps3 {
		return NoContact
	}
	return t
}

// vertexGhost is a zero-radius, zero-velocity stand-in particle used to
// run the disk-disk predictor against a Vertex obstacle, treating the
// corner as a fixed point target.
func vertexGhost(position geom.Vector2) *body.Particle {
	return body.NewParticle(-1, position, geom.Vector2{}, 0)
}

// DiskVertex returns the time from now until p touches the concave
// corner v, or NoContact.
func DiskVertex(p *body.Particle, v container.Obstacle, gb Guardband) float64 {
	return DiskDisk(p, vertexGhost(v.Position), gb)
}

// DiskSegment returns the time from now until p touches the
// axis-aligned wall seg, or NoContact.
func DiskSegment(p *body.Particle, seg container.Obstacle) float64 {
	var u, vu, w, vw float64
	if seg.Orientation == container.Vertical {
		u, vu = p.Position.X, p.Velocity.X
		w, vw = p.Position.Y, p.Velocity.Y
	} else {
		u, vu = p.Position.Y, p.Velocity.Y
		w, vw = p.Position.X, p.Velocity.X
	}
	k := seg.FixedCoordinate()

	approachingFromBelow := u < k && vu > 0
	approachingFromAbove := u > k && vu < 0
	if !approachingFromBelow && !approachingFromAbove {
		return NoContact
	}

	offset := -p.Radius
	if !approachingFromBelow {
		offset = p.Radius
	}

	t := (k + offset - u) / vu
	if t < 0 {
		return NoContact
	}

	wAtContact := w + vw*t
	min, max := seg.Extent()
	if wAtContact < min || wAtContact > max {
		return NoContact
	}
	return t
}
