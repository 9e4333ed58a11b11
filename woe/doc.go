// Package woe computes Weight-of-Evidence bins and Information Value for a
// single feature against a binary target, per spec.md §4.2. Prebins are
// built, merged greedily into a baseline by IV loss, optionally refined by
// a pluggable Solver, and scored. The resulting IvAnalysisRecord holds the
// final bins only; intermediate prebins and merge steps are not retained.
package woe
