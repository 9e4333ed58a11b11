package errs

import "errors"

// IV/WoE engine errors. Per-feature degeneracies are not represented here
// — those are non-fatal and surface as a record with drop_reason set, not
// an error return (spec.md §4.2 "Failure semantics").
var (
	ErrSolverMisconfigured = errors.New("lophi: woe: solver misconfigured")
	ErrNoPrebins           = errors.New("lophi: woe: prebinning produced zero bins")
)
