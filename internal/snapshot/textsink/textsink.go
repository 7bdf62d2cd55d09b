// Package textsink implements the on-disk trajectory format consumed
// by downstream tooling: a setup.txt header, one file per step under
// steps/, and a flat events.txt event log.
package textsink

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/deveworld/simrelay/internal/body"
	"github.com/deveworld/simrelay/internal/container"
	"github.com/deveworld/simrelay/internal/snapshot"
)

// Sink writes the textual trajectory format to a directory tree:
//
//	<dir>/setup.txt
//	<dir>/steps/<i>.txt
//	<dir>/events.txt
//
// Numbers are formatted with strconv.FormatFloat, which always emits a
// '.' decimal separator regardless of OS locale, satisfying the "locale
// must be fixed" requirement without touching package locale at all.
type Sink struct {
	dir        string
	stepsDir   string
	eventsFile *os.File
}

const particlePrecision = 14

// New creates dir (and dir/steps) if necessary and opens events.txt for
// append-style writing.
func New(dir string) (*Sink, error) {
	stepsDir := filepath.Join(dir, "steps")
	if err := os.MkdirAll(stepsDir, 0o755); err != nil {
		return nil, fmt.Errorf("textsink: create steps dir: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, "events.txt"))
	if err != nil {
		return nil, fmt.Errorf("textsink: create events.txt: %w", err)
	}
	return &Sink{dir: dir, stepsDir: stepsDir, eventsFile: f}, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', particlePrecision, 64)
}

// WriteSetup writes setup.txt: "<N> <L>" followed by one "ax ay bx by"
// line per Segment obstacle. Vertex obstacles carry no independent
// geometry beyond what the segments already describe and are omitted,
// matching the existing sink's format.
func (s *Sink) WriteSetup(particleCount int, l float64, obstacles []container.Obstacle) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%d %s\n", particleCount, formatFloat(l))
	for _, o := range obstacles {
		if o.Kind != container.KindSegment {
			continue
		}
		fmt.Fprintf(&b, "%s %s %s %s\n", formatFloat(o.A.X), formatFloat(o.A.Y), formatFloat(o.B.X), formatFloat(o.B.Y))
	}
	if err := os.WriteFile(filepath.Join(s.dir, "setup.txt"), []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("textsink: write setup.txt: %w", err)
	}
	return nil
}

// WriteStep writes steps/<stepIndex>.txt, one "x y vx vy r" line per
// particle, and appends the driving event to events.txt.
func (s *Sink) WriteStep(stepIndex int, tau float64, summary snapshot.EventSummary, particles []body.State) error {
	var b strings.Builder
	for _, p := range particles {
		fmt.Fprintf(&b, "%s %s %s %s %s\n",
			formatFloat(p.Position.X), formatFloat(p.Position.Y),
			formatFloat(p.Velocity.X), formatFloat(p.Velocity.Y),
			formatFloat(p.Radius))
	}
	path := filepath.Join(s.stepsDir, strconv.Itoa(stepIndex)+".txt")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("textsink: write step %d: %w", stepIndex, err)
	}

	if _, err := fmt.Fprintf(s.eventsFile, "%s %s %d %d\n", formatFloat(summary.Time), summary.Kind, summary.Subject, summary.Target); err != nil {
		return fmt.Errorf("textsink: write event for step %d: %w", stepIndex, err)
	}
	return nil
}

// Close flushes and closes events.txt.
func (s *Sink) Close() error {
	if err := s.eventsFile.Close(); err != nil {
		return fmt.Errorf("textsink: close events.txt: %w", err)
	}
	return nil
}
