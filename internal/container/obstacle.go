// Package container models the static geometry particles collide with:
// axis-aligned wall segments and the concave vertices between them.
package container

import "github.com/deveworld/simrelay/internal/geom"

// Orientation distinguishes a Segment fixed along X (Vertical wall) from
// one fixed along Y (Horizontal wall).
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "Horizontal"
	}
	return "Vertical"
}

// Kind tags which concrete obstacle a value holds.
type Kind int

const (
	KindSegment Kind = iota
	KindVertex
)

// Obstacle is the tagged variant Segment | Vertex. Only the fields for
// the active Kind are meaningful; dispatch is a closed switch on Kind,
// never a virtual call.
type Obstacle struct {
	ID          int
	Kind        Kind
	Orientation Orientation  // valid when Kind == KindSegment
	A, B        geom.Vector2 // valid when Kind == KindSegment; share the fixed coordinate
	Position    geom.Vector2 // valid when Kind == KindVertex
}

// NewSegment builds a Segment obstacle. a and b must share the
// coordinate fixed by orientation; NewPolygon re-checks it.
func NewSegment(id int, orientation Orientation, a, b geom.Vector2) Obstacle {
	return Obstacle{ID: id, Kind: KindSegment, Orientation: orientation, A: a, B: b}
}

// NewVertex builds a Vertex obstacle: a zero-radius frozen particle
// sitting at a concave corner of the polygon.
func NewVertex(id int, position geom.Vector2) Obstacle {
	return Obstacle{ID: id, Kind: KindVertex, Position: position}
}

// FixedCoordinate returns the coordinate a Segment is pinned to: X for a
// Vertical wall, Y for a Horizontal one.
func (o Obstacle) FixedCoordinate() float64 {
	if o.Orientation == Vertical {
		return o.A.X
	}
	return o.A.Y
}

// Extent returns the [min, max] range of the segment's free axis.
func (o Obstacle) Extent() (min, max float64) {
	var a, b float64
	if o.Orientation == Vertical {
		a, b = o.A.Y, o.B.Y
	} else {
		a, b = o.A.X, o.B.X
	}
	if a > b {
		a, b = b, a
	}
	return a, b
}
