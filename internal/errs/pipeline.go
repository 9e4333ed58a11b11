package errs

import "errors"

// Pipeline controller and I/O errors.
var (
	ErrUnknownInputFormat  = errors.New("lophi: unrecognized input file extension")
	ErrEmptyColumnStore    = errors.New("lophi: column store has zero columns")
	ErrTargetColumnMissing = errors.New("lophi: target column not present in input")
	ErrWeightColumnMissing = errors.New("lophi: weight column not present in input")
)
