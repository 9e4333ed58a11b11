// Package correlation computes a pairwise Pearson correlation matrix over a
// table's numeric feature columns, in a single weighted pass, and selects a
// minimal set of features to drop so that no surviving pair exceeds a
// configured |ρ| threshold. Implements spec.md §4.3.
package correlation
