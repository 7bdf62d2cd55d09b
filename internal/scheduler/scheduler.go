// Package scheduler is the main iterator: it owns simulated time, the
// particle set, and the event heap, and advances the system one
// collision at a time. Grounded on the teacher's
// internal/simulation.Simulation as the "owns everything, exposes
// Update" shape, replacing continuous force-field integration with
// discrete event popping.
package scheduler

import (
	"context"
	"fmt"

	"github.com/deveworld/simrelay/internal/body"
	"github.com/deveworld/simrelay/internal/collision"
	"github.com/deveworld/simrelay/internal/container"
	"github.com/deveworld/simrelay/internal/event"
	"github.com/deveworld/simrelay/internal/snapshot"
	"github.com/deveworld/simrelay/internal/workpool"
)

// containmentEps is the tolerance used to validate the initial state
// and is independent of the collision-prediction guardband; it is
// deliberately looser than the guardband's own epsilons, the safer
// bound to validate against.
const containmentEps = 1e-10

const defaultStallThreshold = 16

// Config bundles the knobs NewScheduler needs beyond the particles,
// container, and sink themselves. L is the chamber side length,
// forwarded to the sink's WriteSetup call for downstream tooling
// (pkg/analysis.Pressure needs a wall length, for instance) — the
// Polygon itself does not retain it since a two-chamber boundary has no
// single meaningful "L".
type Config struct {
	L              float64
	Guardband      collision.Guardband
	StallThreshold int
	Pool           *workpool.Pool
}

// Scheduler is the event-driven trajectory iterator. It owns the
// particle slice, the polygon, and the event heap exclusively; nothing
// outside Advance/Run mutates simulation state.
type Scheduler struct {
	Time      float64
	Particles []*body.Particle
	Polygon   *container.Polygon
	Queue     *event.Queue
	StepIndex int

	guardband      collision.Guardband
	pool           *workpool.Pool
	sink           snapshot.Sink
	stallThreshold int
	stallCount     int

	particleByID map[int]*body.Particle
	segByID      map[int]container.Obstacle
	vertexByID   map[int]container.Obstacle
}

// NewScheduler validates the initial state, seeds the event heap,
// publishes WriteSetup, and returns a Scheduler ready for Advance/Run.
func NewScheduler(cfg Config, particles []*body.Particle, poly *container.Polygon, sink snapshot.Sink) (*Scheduler, error) {
	if cfg.StallThreshold <= 0 {
		cfg.StallThreshold = defaultStallThreshold
	}
	if cfg.Pool == nil {
		cfg.Pool = workpool.New(workpool.ModeSequential, 1)
	}
	if cfg.Guardband == (collision.Guardband{}) {
		cfg.Guardband = collision.DefaultGuardband()
	}

	s := &Scheduler{
		Particles:      particles,
		Polygon:        poly,
		Queue:          event.NewQueue(),
		guardband:      cfg.Guardband,
		pool:           cfg.Pool,
		sink:           sink,
		stallThreshold: cfg.StallThreshold,
		particleByID:   make(map[int]*body.Particle, len(particles)),
		segByID:        make(map[int]container.Obstacle),
		vertexByID:     make(map[int]container.Obstacle),
	}
	for _, p := range particles {
		s.particleByID[p.ID] = p
	}
	for _, seg := range poly.Segments() {
		s.segByID[seg.ID] = seg
	}
	for _, v := range poly.Vertices() {
		s.vertexByID[v.ID] = v
	}

	if err := s.validateInitialState(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInitialState, err)
	}

	s.seedEvents()

	if err := sink.WriteSetup(len(particles), cfg.L, poly.Obstacles); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSinkFailure, err)
	}

	return s, nil
}

func (s *Scheduler) validateInitialState() error {
	for _, p := range s.Particles {
		if p.Radius <= 0 {
			return fmt.Errorf("particle %d has non-positive radius %g", p.ID, p.Radius)
		}
		if !s.Polygon.Contains(p.Position, p.Radius, containmentEps) {
			return fmt.Errorf("particle %d at %v is not strictly inside the container", p.ID, p.Position)
		}
	}
	for i := 0; i < len(s.Particles); i++ {
		a := s.Particles[i]
		for j := i + 1; j < len(s.Particles); j++ {
			b := s.Particles[j]
			dist := b.Position.Sub(a.Position).Length()
			if dist < a.Radius+b.Radius-containmentEps {
				return fmt.Errorf("particles %d and %d overlap (dist %g < sum of radii %g)", a.ID, b.ID, dist, a.Radius+b.Radius)
			}
		}
	}
	return nil
}

// seedEvents populates the heap before the first Advance: every ordered
// pair with id(A) < id(B), plus every (particle, obstacle) pair.
func (s *Scheduler) seedEvents() {
	for i := 0; i < len(s.Particles); i++ {
		a := s.Particles[i]
		for j := i + 1; j < len(s.Particles); j++ {
			b := s.Particles[j]
			if t := collision.DiskDisk(a, b, s.guardband); t != collision.NoContact {
				s.Queue.Push(event.Event{
					Time: t, Subject: a.ID, SubjectToken: a.CollisionCount,
					TargetKind: event.TargetParticle, Target: b.ID, TargetToken: b.CollisionCount,
				})
			}
		}
		s.pushObstacleEvents(a)
	}
}

func (s *Scheduler) pushObstacleEvents(p *body.Particle) {
	for _, seg := range s.Polygon.Segments() {
		if t := collision.DiskSegment(p, seg); t != collision.NoContact {
			s.Queue.Push(event.Event{
				Time: s.Time + t, Subject: p.ID, SubjectToken: p.CollisionCount,
				TargetKind: event.TargetSegment, Target: seg.ID,
			})
		}
	}
	for _, v := range s.Polygon.Vertices() {
		if t := collision.DiskVertex(p, v, s.guardband); t != collision.NoContact {
			s.Queue.Push(event.Event{
				Time: s.Time + t, Subject: p.ID, SubjectToken: p.CollisionCount,
				TargetKind: event.TargetVertex, Target: v.ID,
			})
		}
	}
}

// isValid reports whether e's tokens still match the current collision
// counts of its participants.
func (s *Scheduler) isValid(e event.Event) bool {
	subj, ok := s.particleByID[e.Subject]
	if !ok || subj.CollisionCount != e.SubjectToken {
		return false
	}
	if e.TargetKind == event.TargetParticle {
		targ, ok := s.particleByID[e.Target]
		if !ok || targ.CollisionCount != e.TargetToken {
			return false
		}
	}
	return true
}

// applyResponse mutates the participant(s) of e and returns the
// particles whose velocities changed, for step 5's recomputation.
func (s *Scheduler) applyResponse(e event.Event) []*body.Particle {
	subj := s.particleByID[e.Subject]
	switch e.TargetKind {
	case event.TargetParticle:
		targ := s.particleByID[e.Target]
		collision.RespondDiskDisk(subj, targ)
		return []*body.Particle{subj, targ}
	case event.TargetSegment:
		collision.RespondDiskSegment(subj, s.segByID[e.Target])
		return []*body.Particle{subj}
	default: // event.TargetVertex
		collision.RespondDiskVertex(subj, s.vertexByID[e.Target])
		return []*body.Particle{subj}
	}
}

// eventsForParticipant runs every matching predictor for p against
// every other particle and every obstacle. It reads shared state but
// mutates nothing, making it safe to run concurrently across
// participants via workpool.Map.
func (s *Scheduler) eventsForParticipant(p *body.Particle) []event.Event {
	var out []event.Event
	for _, other := range s.Particles {
		if other.ID == p.ID {
			continue
		}
		if t := collision.DiskDisk(p, other, s.guardband); t != collision.NoContact {
			out = append(out, event.Event{
				Time: s.Time + t, Subject: p.ID, SubjectToken: p.CollisionCount,
				TargetKind: event.TargetParticle, Target: other.ID, TargetToken: other.CollisionCount,
			})
		}
	}
	for _, seg := range s.Polygon.Segments() {
		if t := collision.DiskSegment(p, seg); t != collision.NoContact {
			out = append(out, event.Event{
				Time: s.Time + t, Subject: p.ID, SubjectToken: p.CollisionCount,
				TargetKind: event.TargetSegment, Target: seg.ID,
			})
		}
	}
	for _, v := range s.Polygon.Vertices() {
		if t := collision.DiskVertex(p, v, s.guardband); t != collision.NoContact {
			out = append(out, event.Event{
				Time: s.Time + t, Subject: p.ID, SubjectToken: p.CollisionCount,
				TargetKind: event.TargetVertex, Target: v.ID,
			})
		}
	}
	return out
}

// recompute fans eventsForParticipant out across s.pool and merges the
// results into the heap single-threaded — the only point where
// cross-goroutine synchronization happens.
func (s *Scheduler) recompute(participants []*body.Particle) {
	batches := workpool.Map(s.pool, participants, s.eventsForParticipant)
	for _, batch := range batches {
		for _, ev := range batch {
			s.Queue.Push(ev)
		}
	}
}

// Advance pops and processes exactly one event, or returns (false, nil)
// if ctx is already cancelled — a cancelled iteration returns cleanly
// without emitting a partial snapshot. A non-nil error is always
// fatal — the caller should stop calling Advance.
func (s *Scheduler) Advance(ctx context.Context) (bool, error) {
	select {
	case <-ctx.Done():
		return false, nil
	default:
	}

	for {
		if s.Queue.Len() == 0 {
			return false, fmt.Errorf("%w: at step %d, τ=%.14f", ErrHeapExhausted, s.StepIndex, s.Time)
		}
		e := s.Queue.Pop()

		if e.Time < s.Time-s.guardband.Eps3 {
			// Defensive: a well-formed heap never produces this: every
			// pushed event carries an absolute time >= the time it was
			// computed at, which is always <= s.Time at push time.
			continue
		}
		if !s.isValid(e) {
			continue
		}

		dt := e.Time - s.Time
		if dt < s.guardband.Eps3 {
			s.stallCount++
			if s.stallCount > s.stallThreshold {
				return false, &StallError{
					StepIndex: s.StepIndex,
					Time:      s.Time,
					Threshold: s.stallThreshold,
					LastGood:  body.Snapshots(s.Particles),
				}
			}
		} else {
			s.stallCount = 0
		}

		for _, p := range s.Particles {
			p.Advance(dt)
		}
		s.Time = e.Time

		participants := s.applyResponse(e)
		s.recompute(participants)

		summary := snapshot.EventSummary{Kind: e.TargetKind, Subject: e.Subject, Target: e.Target, Time: e.Time}
		if err := s.sink.WriteStep(s.StepIndex, s.Time, summary, body.Snapshots(s.Particles)); err != nil {
			return false, fmt.Errorf("%w: %v", ErrSinkFailure, err)
		}
		s.StepIndex++
		return true, nil
	}
}

// Run calls Advance up to maxEvents times, stopping early (without
// error) on cancellation and propagating any fatal scheduler error.
func (s *Scheduler) Run(ctx context.Context, maxEvents int) error {
	for i := 0; i < maxEvents; i++ {
		advanced, err := s.Advance(ctx)
		if err != nil {
			return err
		}
		if !advanced {
			return nil
		}
	}
	return nil
}
