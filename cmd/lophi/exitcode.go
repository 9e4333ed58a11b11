package main

import (
	"errors"

	"github.com/lophi-data/lophi/internal/errs"
)

// Exit codes per spec.md §6 "distinct codes per failure class".
const (
	exitOK = iota
	exitInvalidInput
	exitUnsupportedEncoding
	exitZeroRowSource
	exitSolverMisconfigured
	exitIOError
)

// exitCodeFor classifies a returned error into one of the fixed exit
// codes. Order matters: the more specific sentinel checks run before the
// catch-all I/O bucket.
func exitCodeFor(err error) int {
	if err == nil {
		return exitOK
	}

	switch {
	case errors.Is(err, errs.ErrUnsupportedEncoding):
		return exitUnsupportedEncoding
	case errors.Is(err, errs.ErrZeroRows):
		return exitZeroRowSource
	case errors.Is(err, errs.ErrSolverMisconfigured):
		return exitSolverMisconfigured
	case isInvalidInputErr(err):
		return exitInvalidInput
	default:
		return exitIOError
	}
}

func isInvalidInputErr(err error) bool {
	sentinels := []error{
		errs.ErrUnknownInputFormat,
		errs.ErrEmptyColumnStore,
		errs.ErrTargetColumnMissing,
		errs.ErrWeightColumnMissing,
		errs.ErrInvalidThreshold,
		errs.ErrInvalidBinCount,
		errs.ErrInvalidBinningStrategy,
		errs.ErrInvalidSolverTrend,
		errs.ErrMutuallyExclusive,
		errs.ErrTargetNotBinary,
		errs.ErrTargetSingleClass,
		errs.ErrTargetAllExcluded,
		errs.ErrWeightNegative,
		errs.ErrWeightNonFinite,
		errs.ErrWeightSumNonPositive,
		errs.ErrUnknownFlagValue,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return true
		}
	}

	return false
}
