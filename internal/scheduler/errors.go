package scheduler

import (
	"errors"
	"fmt"

	"github.com/deveworld/simrelay/internal/body"
)

// Sentinel errors, wrapped with context via fmt.Errorf's %w verb.
// errors.Is/As unwraps through these the same way the caller would
// unwrap a stdlib os.PathError.
var (
	ErrInvalidInitialState = errors.New("scheduler: invalid initial state")
	ErrHeapExhausted       = errors.New("scheduler: event heap exhausted with the system still in motion")
	ErrNumericalStall      = errors.New("scheduler: numerical stall")
	ErrSinkFailure         = errors.New("scheduler: snapshot sink failed")
)

// StallError wraps ErrNumericalStall with the last snapshot the
// scheduler successfully emitted, for forensic dumping.
type StallError struct {
	StepIndex int
	Time      float64
	Threshold int
	LastGood  []body.State
}

func (e *StallError) Error() string {
	return fmt.Sprintf("%v at step %d (τ=%.14f): %d consecutive non-advancing events", ErrNumericalStall, e.StepIndex, e.Time, e.Threshold)
}

func (e *StallError) Unwrap() error { return ErrNumericalStall }
