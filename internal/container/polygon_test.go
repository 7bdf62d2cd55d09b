package container

import (
	"testing"

	"github.com/deveworld/simrelay/internal/geom"
)

func unitSquare() (*Polygon, error) {
	return NewPolygon([]Obstacle{
		NewSegment(0, Horizontal, geom.New(0, 0), geom.New(1, 0)),
		NewSegment(1, Vertical, geom.New(1, 0), geom.New(1, 1)),
		NewSegment(2, Horizontal, geom.New(1, 1), geom.New(0, 1)),
		NewSegment(3, Vertical, geom.New(0, 1), geom.New(0, 0)),
	})
}

func TestNewPolygonUnitSquare(t *testing.T) {
	poly, err := unitSquare()
	if err != nil {
		t.Fatalf("NewPolygon: %v", err)
	}
	if len(poly.Segments()) != 4 {
		t.Errorf("Segments() len = %d, want 4", len(poly.Segments()))
	}
}

func TestNewPolygonRejectsOpenChain(t *testing.T) {
	_, err := NewPolygon([]Obstacle{
		NewSegment(0, Horizontal, geom.New(0, 0), geom.New(1, 0)),
		NewSegment(1, Vertical, geom.New(1, 0), geom.New(1, 1)),
		NewSegment(2, Horizontal, geom.New(1, 1), geom.New(0, 1)),
		NewSegment(3, Vertical, geom.New(0, 2), geom.New(0, 0)), // doesn't connect
	})
	if err == nil {
		t.Fatal("expected an error for a non-closing segment chain")
	}
}

func TestContainsInterior(t *testing.T) {
	poly, _ := unitSquare()
	if !poly.Contains(geom.New(0.5, 0.5), 0.1, 1e-12) {
		t.Error("center of unit square with small radius should be contained")
	}
}

func TestContainsRejectsOutside(t *testing.T) {
	poly, _ := unitSquare()
	if poly.Contains(geom.New(1.5, 0.5), 0.1, 1e-12) {
		t.Error("point outside the square should not be contained")
	}
}

func TestContainsRejectsTooCloseToWall(t *testing.T) {
	poly, _ := unitSquare()
	if poly.Contains(geom.New(0.05, 0.5), 0.2, 1e-12) {
		t.Error("disk overlapping the left wall should not be contained")
	}
}

func TestBuildTwoChamberHasFourConcaveVertices(t *testing.T) {
	poly, err := BuildTwoChamber(10, 2, 1)
	if err != nil {
		t.Fatalf("BuildTwoChamber: %v", err)
	}
	if got := len(poly.Vertices()); got != 4 {
		t.Errorf("Vertices() len = %d, want 4", got)
	}
	if got := len(poly.Segments()); got != 12 {
		t.Errorf("Segments() len = %d, want 12", got)
	}
}

func TestBuildTwoChamberContainsBothChambers(t *testing.T) {
	poly, err := BuildTwoChamber(10, 2, 1)
	if err != nil {
		t.Fatalf("BuildTwoChamber: %v", err)
	}
	if !poly.Contains(geom.New(5, 5), 0.2, 1e-12) {
		t.Error("left chamber center should be contained")
	}
	if !poly.Contains(geom.New(17, 5), 0.2, 1e-12) {
		t.Error("right chamber center should be contained")
	}
	if poly.Contains(geom.New(11, 9), 0.2, 1e-12) {
		t.Error("point outside the slit corridor but between chambers should not be contained")
	}
}
