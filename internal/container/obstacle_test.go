package container

import (
	"testing"

	"github.com/deveworld/simrelay/internal/geom"
)

func TestFixedCoordinate(t *testing.T) {
	v := NewSegment(1, Vertical, geom.New(2, 0), geom.New(2, 5))
	if got := v.FixedCoordinate(); got != 2 {
		t.Errorf("Vertical FixedCoordinate = %f, want 2", got)
	}

	h := NewSegment(2, Horizontal, geom.New(0, 3), geom.New(5, 3))
	if got := h.FixedCoordinate(); got != 3 {
		t.Errorf("Horizontal FixedCoordinate = %f, want 3", got)
	}
}

func TestExtent(t *testing.T) {
	v := NewSegment(1, Vertical, geom.New(2, 5), geom.New(2, 0))
	min, max := v.Extent()
	if min != 0 || max != 5 {
		t.Errorf("Extent = (%f, %f), want (0, 5)", min, max)
	}
}
