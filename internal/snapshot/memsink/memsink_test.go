package memsink

import (
	"testing"

	"github.com/deveworld/simrelay/internal/body"
	"github.com/deveworld/simrelay/internal/container"
	"github.com/deveworld/simrelay/internal/event"
	"github.com/deveworld/simrelay/internal/geom"
	"github.com/deveworld/simrelay/internal/snapshot"
)

func TestSinkRecordsSetupAndSteps(t *testing.T) {
	s := New()
	obstacles := []container.Obstacle{container.NewVertex(0, geom.New(1, 1))}
	if err := s.WriteSetup(10, 20, obstacles); err != nil {
		t.Fatalf("WriteSetup: %v", err)
	}
	if s.ParticleCount != 10 || s.L != 20 || len(s.Obstacles) != 1 {
		t.Fatalf("setup not recorded: %+v", s)
	}

	p := body.NewParticle(0, geom.New(0, 0), geom.New(1, 0), 0.1)
	summary := snapshot.EventSummary{Kind: event.TargetParticle, Subject: 0, Target: 1, Time: 1.5}
	if err := s.WriteStep(0, 1.5, summary, []body.State{p.Snapshot()}); err != nil {
		t.Fatalf("WriteStep: %v", err)
	}
	if err := s.WriteStep(1, 2.0, summary, []body.State{p.Snapshot()}); err != nil {
		t.Fatalf("WriteStep: %v", err)
	}

	if len(s.Steps) != 2 {
		t.Fatalf("len(Steps) = %d, want 2", len(s.Steps))
	}
	if s.Steps[1].Index != 1 || s.Steps[1].Tau != 2.0 {
		t.Fatalf("step 1 not recorded correctly: %+v", s.Steps[1])
	}
}

func TestSinkCloseIsIdempotentAndObservable(t *testing.T) {
	s := New()
	if s.Closed() {
		t.Fatal("Closed() true before Close()")
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !s.Closed() {
		t.Fatal("Closed() false after Close()")
	}
}

func TestSinkMutationAfterWriteDoesNotAliasStoredState(t *testing.T) {
	s := New()
	states := []body.State{{ID: 0, Position: geom.New(1, 1), Velocity: geom.New(0, 0), Radius: 0.1}}
	if err := s.WriteStep(0, 0, snapshot.EventSummary{}, states); err != nil {
		t.Fatalf("WriteStep: %v", err)
	}
	states[0].Position = geom.New(99, 99)
	if s.Steps[0].Particles[0].Position == geom.New(99, 99) {
		t.Fatal("WriteStep aliased caller's slice instead of copying")
	}
}
