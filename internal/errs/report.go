package errs

import "errors"

// Report archive errors.
var (
	ErrArchiveTruncated = errors.New("lophi: report: archive truncated")
	ErrArchiveBadMagic  = errors.New("lophi: report: archive magic mismatch")
)
