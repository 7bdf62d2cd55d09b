// Package snapshot defines the abstract capability the scheduler
// publishes trajectory observations to. The core never knows whether a
// Sink writes to disk, memory, or a live viewer.
package snapshot

import (
	"github.com/deveworld/simrelay/internal/body"
	"github.com/deveworld/simrelay/internal/container"
	"github.com/deveworld/simrelay/internal/event"
)

// EventSummary is the externally visible description of the event that
// drove one scheduler step.
type EventSummary struct {
	Kind    event.TargetKind
	Subject int
	Target  int
	Time    float64
}

// Sink receives the scheduler's published trajectory. WriteSetup is
// called once before the first event; WriteStep once per processed
// event, strictly in step order. Implementations that cannot keep up
// must block in WriteStep rather than drop a step — trajectory
// continuity is a hard contract.
type Sink interface {
	WriteSetup(particleCount int, l float64, obstacles []container.Obstacle) error
	WriteStep(stepIndex int, tau float64, summary EventSummary, particles []body.State) error
	Close() error
}
