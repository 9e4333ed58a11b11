// Package errs centralizes the sentinel errors shared across lo-phi's
// subsystems, mirroring the convention its teacher packages reach for
// (a single error value per failure kind, wrapped with fmt.Errorf at the
// call site rather than constructed ad hoc).
package errs

import "errors"

// Column store / name-collision errors.
var (
	ErrHashCollision      = errors.New("lophi: hash collision between two distinct names")
	ErrDuplicateName      = errors.New("lophi: name already registered")
	ErrEmptyName          = errors.New("lophi: name must not be empty")
	ErrColumnNotFound     = errors.New("lophi: column not found")
	ErrColumnTypeMismatch = errors.New("lophi: column type mismatch")
	ErrLengthMismatch     = errors.New("lophi: column length mismatch")
)

// Target / weight domain errors.
var (
	ErrTargetNotBinary      = errors.New("lophi: target column is not binary after mapping")
	ErrTargetSingleClass    = errors.New("lophi: target has only one class after mapping")
	ErrTargetAllExcluded    = errors.New("lophi: every row was excluded by the event/non-event mapping")
	ErrWeightNegative       = errors.New("lophi: weight column contains a negative value")
	ErrWeightNonFinite      = errors.New("lophi: weight column contains a NaN or infinite value")
	ErrWeightSumNonPositive = errors.New("lophi: sum of weights is not positive")
)

// Configuration errors.
var (
	ErrInvalidThreshold       = errors.New("lophi: threshold out of range")
	ErrInvalidBinCount        = errors.New("lophi: bin count out of range")
	ErrMutuallyExclusive      = errors.New("lophi: mutually exclusive options set")
	ErrInvalidSolverTrend     = errors.New("lophi: unknown solver trend")
	ErrInvalidBinningStrategy = errors.New("lophi: unknown binning strategy")
)
