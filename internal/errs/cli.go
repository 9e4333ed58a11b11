package errs

import "errors"

// CLI flag-parsing errors.
var (
	ErrUnknownFlagValue = errors.New("lophi: unrecognized value for flag")
)
