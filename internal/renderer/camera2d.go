package renderer

import "github.com/deveworld/simrelay/internal/geom"

// Camera2D is a pan/zoom camera over the simulated plane, the 2D
// analogue of the teacher's 3D Camera (internal/renderer/camera.go in
// the original relativity simulator, trimmed from perspective/
// orthographic projection matrices to the simple world-to-screen affine
// map a top-down hard-disk viewer needs).
type Camera2D struct {
	Target geom.Vector2
	Zoom   float64
	Offset geom.Vector2 // screen-space point the Target maps to
}

// NewCamera2D centers view on target with 1:1 zoom and the given screen
// offset (typically the window center).
func NewCamera2D(target, offset geom.Vector2) *Camera2D {
	return &Camera2D{Target: target, Zoom: 1, Offset: offset}
}

// WorldToScreen maps a world-space point to screen-space pixels.
func (c *Camera2D) WorldToScreen(p geom.Vector2) geom.Vector2 {
	return p.Sub(c.Target).Scale(c.Zoom).Add(c.Offset)
}

// SetZoom clamps zoom to a sane positive range.
func (c *Camera2D) SetZoom(z float64) {
	if z < 0.05 {
		z = 0.05
	}
	if z > 50 {
		z = 50
	}
	c.Zoom = z
}
