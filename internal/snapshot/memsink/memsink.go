// Package memsink is an in-memory snapshot.Sink for tests and for
// pkg/analysis, which needs the full event/state history in process
// rather than round-tripped through disk.
package memsink

import (
	"sync"

	"github.com/deveworld/simrelay/internal/body"
	"github.com/deveworld/simrelay/internal/container"
	"github.com/deveworld/simrelay/internal/snapshot"
)

// Step is one recorded scheduler step.
type Step struct {
	Index     int
	Tau       float64
	Summary   snapshot.EventSummary
	Particles []body.State
}

// Sink accumulates every WriteSetup/WriteStep call it receives. Safe
// for concurrent reads after the producing scheduler has finished;
// WriteStep itself is also safe to call from multiple goroutines,
// though the scheduler never does so (publishing is single-threaded
// at the step boundary).
type Sink struct {
	mu sync.Mutex

	ParticleCount int
	L             float64
	Obstacles     []container.Obstacle
	Steps         []Step
	closed        bool
}

// New returns an empty Sink.
func New() *Sink {
	return &Sink{}
}

func (s *Sink) WriteSetup(particleCount int, l float64, obstacles []container.Obstacle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ParticleCount = particleCount
	s.L = l
	s.Obstacles = append([]container.Obstacle(nil), obstacles...)
	return nil
}

func (s *Sink) WriteStep(stepIndex int, tau float64, summary snapshot.EventSummary, particles []body.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Steps = append(s.Steps, Step{
		Index:     stepIndex,
		Tau:       tau,
		Summary:   summary,
		Particles: append([]body.State(nil), particles...),
	})
	return nil
}

func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Closed reports whether Close has been called, for assertions in tests.
func (s *Sink) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
