package correlation

// Pair is one high-|ρ| feature pair crossing the configured threshold.
type Pair struct {
	FeatureA string
	FeatureB string
	Rho      float64
}

// DropRecord documents why one feature was selected for removal during
// redundancy selection: the pairs it was removed for, in the order they
// caused its removal.
type DropRecord struct {
	FeatureName string
	CausedBy    []Pair
}

// Result is the correlation engine's output: the full matrix, the set of
// pairs that exceeded the threshold, and the features chosen for removal.
type Result struct {
	Matrix  *Matrix
	Pairs   []Pair
	Dropped []DropRecord
}

// Survivors returns the feature names not selected for removal, in Matrix
// order.
func (r *Result) Survivors() []string {
	dropped := make(map[string]struct{}, len(r.Dropped))
	for _, d := range r.Dropped {
		dropped[d.FeatureName] = struct{}{}
	}

	out := make([]string, 0, len(r.Matrix.Names))
	for _, name := range r.Matrix.Names {
		if _, ok := dropped[name]; !ok {
			out = append(out, name)
		}
	}

	return out
}
