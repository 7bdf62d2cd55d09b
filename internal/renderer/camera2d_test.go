package renderer

import (
	"testing"

	"github.com/deveworld/simrelay/internal/geom"
)

func TestWorldToScreenCentersOnTarget(t *testing.T) {
	cam := NewCamera2D(geom.New(5, 5), geom.New(400, 300))
	got := cam.WorldToScreen(geom.New(5, 5))
	if got != geom.New(400, 300) {
		t.Errorf("WorldToScreen(target) = %v, want offset (400, 300)", got)
	}
}

func TestWorldToScreenAppliesZoom(t *testing.T) {
	cam := NewCamera2D(geom.New(0, 0), geom.New(0, 0))
	cam.SetZoom(2)
	got := cam.WorldToScreen(geom.New(3, 1))
	if got != geom.New(6, 2) {
		t.Errorf("WorldToScreen with zoom 2 = %v, want (6, 2)", got)
	}
}

func TestSetZoomClampsRange(t *testing.T) {
	cam := NewCamera2D(geom.New(0, 0), geom.New(0, 0))
	cam.SetZoom(1000)
	if cam.Zoom != 50 {
		t.Errorf("Zoom clamped high = %f, want 50", cam.Zoom)
	}
	cam.SetZoom(-5)
	if cam.Zoom != 0.05 {
		t.Errorf("Zoom clamped low = %f, want 0.05", cam.Zoom)
	}
}
