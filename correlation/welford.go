package correlation

import "math"

// pairStat accumulates the weighted mean, second moment, and co-moment of
// two columns over exactly the rows where both are non-null (spec.md §4.3
// "pairwise complete"). Every accumulator lives on the pair rather than
// being shared from a per-column pass: a pair's ρ is only numerically
// consistent when its own mean/variance/co-moment are all computed over
// the same row subset, so correctness takes priority over the shared
// single-pass bookkeeping the spec's prose also gestures at — see
// DESIGN.md.
type pairStat struct {
	weight       float64
	meanA, meanB float64
	m2A, m2B     float64
	c            float64
}

// update folds one row (a, b, w) into the running statistics. w<=0 rows
// (e.g. pairwise-excluded, or zero-weight) are ignored.
func (s *pairStat) update(a, b, w float64) {
	if w <= 0 {
		return
	}

	s.weight += w

	dA := a - s.meanA
	s.meanA += w * dA / s.weight
	s.m2A += w * dA * (a - s.meanA)

	dB := b - s.meanB
	s.meanB += w * dB / s.weight
	s.m2B += w * dB * (b - s.meanB)

	s.c += w * dA * (b - s.meanB)
}

// rho finalizes Pearson's ρ, clamped to [-1, 1] to absorb floating error,
// and returns 0 (never NaN) for a zero-variance column, per spec.md §4.3's
// failure semantics.
func (s *pairStat) rho() float64 {
	if s.m2A <= 0 || s.m2B <= 0 {
		return 0
	}

	r := s.c / math.Sqrt(s.m2A*s.m2B)
	if r > 1 {
		return 1
	}
	if r < -1 {
		return -1
	}

	return r
}

// merge combines two pairStats accumulated over disjoint row chunks using
// the standard pairwise parallel-update formula, for spec.md §4.3's
// permitted tree-reduction parallelism over row chunks.
func (s *pairStat) merge(o *pairStat) *pairStat {
	if s.weight == 0 {
		return o
	}
	if o.weight == 0 {
		return s
	}

	totalW := s.weight + o.weight
	dMeanA := o.meanA - s.meanA
	dMeanB := o.meanB - s.meanB

	out := &pairStat{
		weight: totalW,
		meanA:  s.meanA + dMeanA*o.weight/totalW,
		meanB:  s.meanB + dMeanB*o.weight/totalW,
		m2A:    s.m2A + o.m2A + dMeanA*dMeanA*s.weight*o.weight/totalW,
		m2B:    s.m2B + o.m2B + dMeanB*dMeanB*s.weight*o.weight/totalW,
		c:      s.c + o.c + dMeanA*dMeanB*s.weight*o.weight/totalW,
	}

	return out
}
