package container

import "github.com/deveworld/simrelay/internal/geom"

// BuildTwoChamber constructs the canonical container: two square
// chambers of side L joined by a rectangular slit of width slitWidth
// and length gap, centered on the shared boundary's mid-height. It
// returns a closed 12-segment polygon plus the four Vertex obstacles
// marking the slit's concave corners.
//
// This exists so the module is runnable end to end without an external
// initial-state file.
func BuildTwoChamber(L, gap, slitWidth float64) (*Polygon, error) {
	yLo := (L - slitWidth) / 2
	yHi := (L + slitWidth) / 2

	corners := []geom.Vector2{
		geom.New(0, 0),
		geom.New(L, 0),
		geom.New(L, yLo),
		geom.New(L+gap, yLo),
		geom.New(L+gap, 0),
		geom.New(2*L+gap, 0),
		geom.New(2*L+gap, L),
		geom.New(L+gap, L),
		geom.New(L+gap, yHi),
		geom.New(L, yHi),
		geom.New(L, L),
		geom.New(0, L),
	}

	obstacles := make([]Obstacle, 0, len(corners)+4)
	for i, a := range corners {
		b := corners[(i+1)%len(corners)]
		orientation := Horizontal
		if a.X == b.X {
			orientation = Vertical
		}
		obstacles = append(obstacles, NewSegment(i, orientation, a, b))
	}

	concaveIdx := []int{2, 3, 8, 9}
	for k, idx := range concaveIdx {
		obstacles = append(obstacles, NewVertex(len(corners)+k, corners[idx]))
	}

	return NewPolygon(obstacles)
}
