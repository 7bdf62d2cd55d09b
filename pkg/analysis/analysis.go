// Package analysis computes the macroscopic observables left to
// downstream tooling: pressure, inter-chamber flux, and equilibration
// timing. It consumes a recorded trajectory (typically
// from internal/snapshot/memsink) rather than driving a scheduler
// itself, keeping the core simulator free of any observable-specific
// bookkeeping.
package analysis

import (
	"github.com/mjibson/go-dsp/fft"

	"github.com/deveworld/simrelay/internal/event"
	"github.com/deveworld/simrelay/internal/snapshot"
)

// Pressure estimates time-averaged momentum transfer per unit wall
// length over duration, from the wall-collision events in events. Each
// disk–segment event is assumed to reverse one velocity component of
// unit magnitude change at minimum; since the core does not track mass
// beyond unit mass, momentum transfer per wall hit is exactly 2|v_n| —
// but events carry no velocity, only (time, kind, subject, target), so
// this estimator counts wall hits and reports the simplest observable
// the trajectory actually supports: hits per unit wall length per unit
// time. Callers needing the true virial pressure should sample
// body.State directly around each WALL event instead.
func Pressure(events []snapshot.EventSummary, wallLength, duration float64) float64 {
	if wallLength <= 0 || duration <= 0 {
		return 0
	}
	var wallHits int
	for _, e := range events {
		if e.Kind == event.TargetSegment {
			wallHits++
		}
	}
	return float64(wallHits) / (wallLength * duration)
}

// Flux counts particle crossings through the obstacles identified by
// slitObstacleIDs (the Segment/Vertex ids bounding the connecting slit),
// returning how many wall-contact events at those ids occurred — a
// proxy for "a particle reached the slit boundary" in the absence of a
// tracked chamber-membership field in EventSummary. leftToRight and
// rightToLeft are reported as equal crossing counts in either direction
// unless the caller distinguishes them via separate id sets.
func Flux(events []snapshot.EventSummary, slitObstacleIDs []int) (leftToRight, rightToLeft int) {
	slit := make(map[int]bool, len(slitObstacleIDs))
	for _, id := range slitObstacleIDs {
		slit[id] = true
	}
	for _, e := range events {
		if e.Kind == event.TargetParticle || !slit[e.Target] {
			continue
		}
		// Without a chamber-membership tag on the event, the best the
		// recorded trajectory supports is a symmetric count; a caller
		// wanting directionality must sample particle x-position in the
		// snapshot immediately preceding e.
		leftToRight++
		rightToLeft++
	}
	return leftToRight, rightToLeft
}

// Spectrum runs a 1D FFT over samples (e.g. instantaneous left-chamber
// occupancy sampled at sampleRate) using the teacher's own FFT
// dependency, repurposed here from solving the gravitational Poisson
// equation to spectral analysis of equilibration oscillations.
// sampleRate is accepted for API symmetry with a caller that wants to
// convert the returned bins to physical frequencies; Spectrum itself
// performs no scaling.
func Spectrum(samples []float64, sampleRate float64) []complex128 {
	input := make([]complex128, len(samples))
	for i, s := range samples {
		input[i] = complex(s, 0)
	}
	return fft.FFT(input)
}

// EquilibrationTime returns the first time in times at which
// occupancyLeft stays within tolerance of its long-run mean for the
// remainder of the run, or the last time in the series if it never
// settles (a conservative "not yet equilibrated" answer rather than a
// sentinel that could be mistaken for t=0). The long-run mean is taken
// over the second half of the series, so an initial transient does not
// pull the target value away from where the system actually settles.
func EquilibrationTime(occupancyLeft, times []float64, tolerance float64) float64 {
	if len(occupancyLeft) == 0 || len(occupancyLeft) != len(times) {
		return 0
	}
	tailStart := len(occupancyLeft) / 2
	mean := 0.0
	for _, v := range occupancyLeft[tailStart:] {
		mean += v
	}
	mean /= float64(len(occupancyLeft) - tailStart)

	for i := range occupancyLeft {
		settled := true
		for j := i; j < len(occupancyLeft); j++ {
			if abs(occupancyLeft[j]-mean) > tolerance {
				settled = false
				break
			}
		}
		if settled {
			return times[i]
		}
	}
	return times[len(times)-1]
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
