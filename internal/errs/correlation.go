package errs

import "errors"

// Correlation engine errors.
var (
	ErrIndexOutOfBounds  = errors.New("lophi: correlation: matrix index out of bounds")
	ErrDimensionMismatch = errors.New("lophi: correlation: matrix dimension mismatch")
	ErrNoNumericFeatures = errors.New("lophi: correlation: no numeric feature columns to analyze")
)
