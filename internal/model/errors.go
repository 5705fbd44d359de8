package model

import "errors"

// Invariant violations. Any of these aborts a run.
var (
	ErrTimestampRegression = errors.New("timestamp regression")
	ErrNegativeCounter     = errors.New("negative relative-time counter")
	ErrEnergyOverflow      = errors.New("energy out of range")
	ErrIllegalAction       = errors.New("illegal action")
)
