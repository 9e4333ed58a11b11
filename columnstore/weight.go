package columnstore

import (
	"fmt"
	"math"

	"github.com/lophi-data/lophi/internal/errs"
)

// ResolveWeights validates and materializes an optional weight column per
// spec.md §3 "Weight": non-negative, finite, null defaults to 1, sum must
// be positive. Returns nil if col is nil (every row implicitly weighted 1).
func ResolveWeights(col *Column) ([]float64, error) {
	if col == nil {
		return nil, nil
	}

	values, valid, err := col.AsFloat64()
	if err != nil {
		return nil, fmt.Errorf("weight column %q: %w", col.Name, err)
	}

	out := make([]float64, len(values))
	sum := 0.0
	for i, v := range values {
		if !valid[i] {
			out[i] = 1
			sum += 1

			continue
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: column %q row %d", errs.ErrWeightNonFinite, col.Name, i)
		}
		if v < 0 {
			return nil, fmt.Errorf("%w: column %q row %d", errs.ErrWeightNegative, col.Name, i)
		}
		out[i] = v
		sum += v
	}

	if sum <= 0 {
		return nil, fmt.Errorf("%w: column %q", errs.ErrWeightSumNonPositive, col.Name)
	}

	return out, nil
}
