package renderer

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/deveworld/simrelay/internal/body"
	"github.com/deveworld/simrelay/internal/container"
	"github.com/deveworld/simrelay/internal/geom"
	"github.com/deveworld/simrelay/internal/snapshot"
	"github.com/deveworld/simrelay/internal/workpool"
)

// Viewer is a live snapshot.Sink backed by a raylib-go window. It is
// the domain-specific replacement for the teacher's ebiten-based root
// main.go visualization loop, rebuilt as a Sink so the CLI can swap it
// in for (or alongside) textsink with no change to the scheduler.
//
// Frame pacing is the only piece of the teacher's render-loop machinery
// this needs — there is no separate update/render callback pipeline to
// generalize, since the scheduler already drives one WriteStep per
// frame — so it lives here as two small methods rather than a pulled-in
// RenderLoop type.
type Viewer struct {
	camera    *Camera2D
	particles *ParticleRenderer2D
	ui        *UIRenderer2D

	targetFPS       int
	targetFrameTime float64
	frameStartTime  time.Time

	screenWidth, screenHeight int32
	mode                      workpool.Mode

	obstacles     []container.Obstacle
	particleCount int
}

// NewViewer returns a Viewer that has not yet opened a window; the
// window opens on the first WriteSetup call, matching the Sink
// contract's "WriteSetup called once before the first event".
func NewViewer(screenWidth, screenHeight, targetFPS int, mode workpool.Mode) *Viewer {
	camera := NewCamera2D(geom.Vector2{}, geom.New(float64(screenWidth)/2, float64(screenHeight)/2))
	return &Viewer{
		camera:          camera,
		particles:       NewParticleRenderer2D(camera),
		ui:              NewUIRenderer2D(screenWidth, screenHeight),
		targetFPS:       targetFPS,
		targetFrameTime: 1.0 / float64(targetFPS),
		screenWidth:     int32(screenWidth),
		screenHeight:    int32(screenHeight),
		mode:            mode,
	}
}

// beginFrame marks the start of a frame's timing window.
func (v *Viewer) beginFrame() {
	v.frameStartTime = time.Now()
}

// endFrame sleeps out the remainder of the target frame time, the same
// fixed-budget pacing the teacher's render loop used.
func (v *Viewer) endFrame() {
	elapsed := time.Since(v.frameStartTime)
	targetDuration := time.Duration(v.targetFrameTime * float64(time.Second))
	if elapsed < targetDuration {
		time.Sleep(targetDuration - elapsed)
	}
}

func centerOf(obstacles []container.Obstacle) geom.Vector2 {
	var sum geom.Vector2
	n := 0
	for _, o := range obstacles {
		switch o.Kind {
		case container.KindSegment:
			sum = sum.Add(o.A).Add(o.B)
			n += 2
		case container.KindVertex:
			sum = sum.Add(o.Position)
			n++
		}
	}
	if n == 0 {
		return geom.Vector2{}
	}
	return sum.Scale(1 / float64(n))
}

// WriteSetup opens the window and centers the camera on the
// container's bounding geometry.
func (v *Viewer) WriteSetup(particleCount int, l float64, obstacles []container.Obstacle) error {
	v.particleCount = particleCount
	v.obstacles = obstacles
	v.camera.Target = centerOf(obstacles)

	rl.InitWindow(v.screenWidth, v.screenHeight, "simrelay")
	rl.SetTargetFPS(int32(v.targetFPS))
	return nil
}

// WriteStep draws exactly one frame depicting the post-event state.
// Closing the window is treated as a sink failure, propagating up
// through the scheduler as a clean fatal unwind rather than a silent
// stop.
func (v *Viewer) WriteStep(stepIndex int, tau float64, summary snapshot.EventSummary, particles []body.State) error {
	if rl.WindowShouldClose() {
		return fmt.Errorf("renderer: viewer window closed by user at step %d", stepIndex)
	}

	v.beginFrame()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	v.particles.DrawObstacles(v.obstacles)
	v.particles.DrawParticles(particles)
	v.ui.UpdateState(HUDState{
		StepIndex:     stepIndex,
		Time:          tau,
		ParticleCount: v.particleCount,
		Mode:          v.mode,
		TargetFPS:     v.targetFPS,
		ActualFPS:     int(rl.GetFPS()),
		FrameTime:     float64(rl.GetFrameTime()),
	})
	v.ui.Draw()

	rl.EndDrawing()
	v.endFrame()
	return nil
}

// Close tears down the window.
func (v *Viewer) Close() error {
	rl.CloseWindow()
	return nil
}
