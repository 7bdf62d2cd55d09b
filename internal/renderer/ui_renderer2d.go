package renderer

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/deveworld/simrelay/internal/workpool"
)

// HUDState is the generalized, domain-specific analogue of the
// teacher's UIState: instead of a GPU/CPU compute mode and a pause
// flag for an interactive 3D camera, it reports where the trajectory
// iterator currently is.
type HUDState struct {
	StepIndex     int
	Time          float64
	ParticleCount int
	Mode          workpool.Mode
	TargetFPS     int
	ActualFPS     int
	FrameTime     float64
}

// UIRenderer2D draws a text overlay reporting scheduler progress. Like
// the teacher's UIRenderer, the position/text computation is kept
// separate from the draw call itself so it can be exercised by a plain
// test without a graphics context.
type UIRenderer2D struct {
	screenWidth  int
	screenHeight int
	fontSize     int32
	title        string

	state HUDState
}

// NewUIRenderer2D returns a HUD sized for a screenWidth x screenHeight
// window.
func NewUIRenderer2D(screenWidth, screenHeight int) *UIRenderer2D {
	return &UIRenderer2D{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		fontSize:     20,
		title:        "Two-Chamber Hard-Disk Gas",
	}
}

// UpdateState replaces the HUD's displayed state.
func (ui *UIRenderer2D) UpdateState(state HUDState) {
	ui.state = state
}

// TitlePosition returns where the title is drawn.
func (ui *UIRenderer2D) TitlePosition() (int, int) { return 10, 10 }

// StepText formats the current step index and simulated time.
func (ui *UIRenderer2D) StepText() string {
	return fmt.Sprintf("step %d  τ=%.6f", ui.state.StepIndex, ui.state.Time)
}

// ModeText formats the active recomputation mode.
func (ui *UIRenderer2D) ModeText() string {
	return fmt.Sprintf("mode: %s", ui.state.Mode)
}

// ParticleCountText formats the particle count.
func (ui *UIRenderer2D) ParticleCountText() string {
	return fmt.Sprintf("particles: %d", ui.state.ParticleCount)
}

// FPSText formats actual/target FPS and frame time.
func (ui *UIRenderer2D) FPSText() string {
	return fmt.Sprintf("fps: %d/%d  frame: %.3fms", ui.state.ActualFPS, ui.state.TargetFPS, ui.state.FrameTime*1000)
}

// Draw issues the actual raylib-go text draw calls. It must only be
// called between rl.BeginDrawing/rl.EndDrawing.
func (ui *UIRenderer2D) Draw() {
	tx, ty := ui.TitlePosition()
	rl.DrawText(ui.title, int32(tx), int32(ty), ui.fontSize, rl.Green)
	rl.DrawText(ui.StepText(), int32(tx), int32(ty+30), ui.fontSize, rl.White)
	rl.DrawText(ui.ModeText(), int32(tx), int32(ty+60), ui.fontSize, rl.White)
	rl.DrawText(ui.ParticleCountText(), int32(tx), int32(ty+90), ui.fontSize, rl.White)
	rl.DrawText(ui.FPSText(), int32(ui.screenWidth-260), int32(ty), ui.fontSize, rl.White)
}
