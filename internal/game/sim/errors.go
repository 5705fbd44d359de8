package sim

import (
	"errors"
	"fmt"

	"github.com/udisondev/squadsim/internal/model"
)

// Invariant names reported by InvariantError.
const (
	InvariantTimestamp = "timestamp-monotonic"
	InvariantCounters  = "counters-non-negative"
	InvariantEnergy    = "energy-in-range"
	InvariantAction    = "legal-action"
	InvariantAura      = "aura-non-negative"
	InvariantHook      = "hook"
)

// InvariantError aborts a run. It names the frame and the broken invariant.
type InvariantError struct {
	Frame     model.Frame
	Invariant string
	Err       error
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("frame %d: %s: %v", e.Frame, e.Invariant, e.Err)
}

func (e *InvariantError) Unwrap() error { return e.Err }

// violation classifies err into an InvariantError at frame t.
func violation(t model.Frame, err error) error {
	var inv *InvariantError
	if errors.As(err, &inv) {
		return err
	}
	name := InvariantHook
	switch {
	case errors.Is(err, model.ErrTimestampRegression):
		name = InvariantTimestamp
	case errors.Is(err, model.ErrNegativeCounter):
		name = InvariantCounters
	case errors.Is(err, model.ErrEnergyOverflow):
		name = InvariantEnergy
	case errors.Is(err, model.ErrIllegalAction):
		name = InvariantAction
	}
	return &InvariantError{Frame: t, Invariant: name, Err: err}
}
