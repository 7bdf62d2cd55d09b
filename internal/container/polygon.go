package container

import (
	"fmt"
	"math"

	"github.com/deveworld/simrelay/internal/geom"
)

// Polygon owns the ordered obstacle list describing a closed piece-wise
// axis-aligned boundary plus the Vertex obstacles marking its concave
// corners.
type Polygon struct {
	Obstacles []Obstacle
	boundary  []geom.Vector2 // corner points of the Segment chain, in order
}

// NewPolygon validates obstacles and derives the boundary corner chain
// used for containment checks.
func NewPolygon(obstacles []Obstacle) (*Polygon, error) {
	var segs []Obstacle
	seenID := make(map[int]bool)
	for _, o := range obstacles {
		if seenID[o.ID] {
			return nil, fmt.Errorf("container: duplicate obstacle id %d", o.ID)
		}
		seenID[o.ID] = true
		if o.Kind == KindSegment {
			if o.Orientation == Vertical && o.A.X != o.B.X {
				return nil, fmt.Errorf("container: vertical segment %d endpoints disagree on x (%f != %f)", o.ID, o.A.X, o.B.X)
			}
			if o.Orientation == Horizontal && o.A.Y != o.B.Y {
				return nil, fmt.Errorf("container: horizontal segment %d endpoints disagree on y (%f != %f)", o.ID, o.A.Y, o.B.Y)
			}
			segs = append(segs, o)
		}
	}
	if len(segs) < 4 {
		return nil, fmt.Errorf("container: need at least 4 wall segments to close a polygon, got %d", len(segs))
	}

	boundary, err := chainSegments(segs)
	if err != nil {
		return nil, err
	}

	return &Polygon{Obstacles: obstacles, boundary: boundary}, nil
}

// chainSegments walks the ordered segment list, requiring each segment
// to share an endpoint with the previous one, and the last to close back
// onto the first.
func chainSegments(segs []Obstacle) ([]geom.Vector2, error) {
	corners := make([]geom.Vector2, 0, len(segs))
	cur := segs[0].A
	corners = append(corners, cur)

	for i, s := range segs {
		var next geom.Vector2
		switch cur {
		case s.A:
			next = s.B
		case s.B:
			next = s.A
		default:
			return nil, fmt.Errorf("container: segment %d (index %d) does not connect to the running boundary at %v", s.ID, i, cur)
		}
		corners = append(corners, next)
		cur = next
	}

	if cur != segs[0].A {
		return nil, fmt.Errorf("container: segment chain does not close (ends at %v, started at %v)", cur, segs[0].A)
	}
	return corners, nil
}

// Contains reports whether a disk of the given radius centered at p lies
// entirely within the polygon, to within eps. It combines a ray-casting
// point-in-polygon test with a
// nearest-edge distance check so a disk grazing a wall from the inside is
// accepted and one poking through is rejected.
func (poly *Polygon) Contains(p geom.Vector2, radius, eps float64) bool {
	if !poly.pointInside(p) {
		return false
	}
	return poly.distanceToBoundary(p) >= radius-eps
}

func (poly *Polygon) pointInside(p geom.Vector2) bool {
	inside := false
	n := len(poly.boundary)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := poly.boundary[j], poly.boundary[i]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			xCross := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if p.X < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

func (poly *Polygon) distanceToBoundary(p geom.Vector2) float64 {
	min := math.Inf(1)
	n := len(poly.boundary)
	for i := 0; i < n-1; i++ {
		d := distancePointSegment(p, poly.boundary[i], poly.boundary[i+1])
		if d < min {
			min = d
		}
	}
	return min
}

func distancePointSegment(p, a, b geom.Vector2) float64 {
	ab := b.Sub(a)
	t := 0.0
	denom := ab.Dot(ab)
	if denom > 0 {
		t = p.Sub(a).Dot(ab) / denom
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
	}
	closest := a.Add(ab.Scale(t))
	return p.Sub(closest).Length()
}

// Vertices returns the Vertex obstacles (concave corners) for the
// predictor's Disk–Vertex candidate pairing.
func (poly *Polygon) Vertices() []Obstacle {
	var out []Obstacle
	for _, o := range poly.Obstacles {
		if o.Kind == KindVertex {
			out = append(out, o)
		}
	}
	return out
}

// Segments returns the Segment obstacles for the predictor's
// Disk–Segment candidate pairing.
func (poly *Polygon) Segments() []Obstacle {
	var out []Obstacle
	for _, o := range poly.Obstacles {
		if o.Kind == KindSegment {
			out = append(out, o)
		}
	}
	return out
}
