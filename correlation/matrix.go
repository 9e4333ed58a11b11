package correlation

import (
	"fmt"

	"github.com/lophi-data/lophi/internal/errs"
)

// Matrix is a dense, symmetric correlation matrix over a fixed set of
// feature names. Index maps a feature name to its row/column position, the
// same Index/Data split the teacher's AdjacencyMatrix uses for graphs,
// generalized here from edge weights to correlation coefficients.
type Matrix struct {
	Names []string
	Index map[string]int
	Data  [][]float64
}

// NewMatrix allocates an n×n identity-diagonal matrix for the given
// feature names, in the given order.
func NewMatrix(names []string) *Matrix {
	n := len(names)
	idx := make(map[string]int, n)
	data := make([][]float64, n)
	for i, name := range names {
		idx[name] = i
		data[i] = make([]float64, n)
		data[i][i] = 1
	}

	return &Matrix{Names: append([]string(nil), names...), Index: idx, Data: data}
}

// Size returns the matrix dimension.
func (m *Matrix) Size() int {
	return len(m.Names)
}

// At returns ρ(Names[i], Names[j]), or ErrIndexOutOfBounds.
func (m *Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= len(m.Data) || j < 0 || j >= len(m.Data) {
		return 0, fmt.Errorf("%w: (%d, %d) in %dx%d matrix", errs.ErrIndexOutOfBounds, i, j, len(m.Data), len(m.Data))
	}

	return m.Data[i][j], nil
}

// Set writes ρ symmetrically at (i, j) and (j, i).
func (m *Matrix) Set(i, j int, rho float64) error {
	if i < 0 || i >= len(m.Data) || j < 0 || j >= len(m.Data) {
		return fmt.Errorf("%w: (%d, %d) in %dx%d matrix", errs.ErrIndexOutOfBounds, i, j, len(m.Data), len(m.Data))
	}
	m.Data[i][j] = rho
	m.Data[j][i] = rho

	return nil
}

// AtName is the name-indexed form of At.
func (m *Matrix) AtName(a, b string) (float64, error) {
	i, ok := m.Index[a]
	if !ok {
		return 0, fmt.Errorf("%w: %q", errs.ErrColumnNotFound, a)
	}
	j, ok := m.Index[b]
	if !ok {
		return 0, fmt.Errorf("%w: %q", errs.ErrColumnNotFound, b)
	}

	return m.At(i, j)
}
