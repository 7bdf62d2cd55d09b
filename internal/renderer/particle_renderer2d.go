package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/deveworld/simrelay/internal/body"
	"github.com/deveworld/simrelay/internal/container"
)

// Palette assigns a disk's draw color by its id, the 2D analogue of the
// teacher's mass-to-color mapping in particle_renderer.go (GetParticleColor),
// replaced here since disks in this domain carry no mass beyond unit
// mass — id parity is the only per-particle property worth coloring by.
func Palette(id int) rl.Color {
	if id%2 == 0 {
		return rl.SkyBlue
	}
	return rl.Orange
}

// ParticleRenderer2D draws the container boundary and the current disk
// positions through a Camera2D. Unlike the teacher's ParticleRenderer,
// which stubbed out every draw call behind "OpenGL context not
// available" (no GPU context ever reached internal/renderer in the
// original), this one issues real raylib-go draw calls — the teacher
// declared the dependency but the live viewer here is the first thing
// in the corpus that actually exercises it.
type ParticleRenderer2D struct {
	camera *Camera2D
}

// NewParticleRenderer2D returns a renderer bound to camera.
func NewParticleRenderer2D(camera *Camera2D) *ParticleRenderer2D {
	return &ParticleRenderer2D{camera: camera}
}

// DrawObstacles renders every Segment as a line and every Vertex as a
// small filled marker.
func (r *ParticleRenderer2D) DrawObstacles(obstacles []container.Obstacle) {
	for _, o := range obstacles {
		switch o.Kind {
		case container.KindSegment:
			a := r.camera.WorldToScreen(o.A)
			b := r.camera.WorldToScreen(o.B)
			rl.DrawLine(int32(a.X), int32(a.Y), int32(b.X), int32(b.Y), rl.White)
		case container.KindVertex:
			p := r.camera.WorldToScreen(o.Position)
			rl.DrawCircle(int32(p.X), int32(p.Y), 3, rl.Red)
		}
	}
}

// DrawParticles renders each particle as a filled circle scaled by its
// radius and the camera's zoom.
func (r *ParticleRenderer2D) DrawParticles(particles []body.State) {
	for _, p := range particles {
		screen := r.camera.WorldToScreen(p.Position)
		radius := float32(p.Radius * r.camera.Zoom)
		rl.DrawCircle(int32(screen.X), int32(screen.Y), radius, Palette(p.ID))
	}
}
