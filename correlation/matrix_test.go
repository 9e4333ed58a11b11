package correlation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lophi-data/lophi/internal/errs"
)

func TestNewMatrix_DiagonalIsOne(t *testing.T) {
	m := NewMatrix([]string{"a", "b", "c"})
	require.Equal(t, 3, m.Size())
	for i := 0; i < 3; i++ {
		v, err := m.At(i, i)
		require.NoError(t, err)
		require.Equal(t, 1.0, v)
	}
}

func TestMatrix_SetIsSymmetric(t *testing.T) {
	m := NewMatrix([]string{"a", "b"})
	require.NoError(t, m.Set(0, 1, 0.7))

	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 0.7, v)
}

func TestMatrix_AtName(t *testing.T) {
	m := NewMatrix([]string{"a", "b"})
	require.NoError(t, m.Set(0, 1, -0.3))

	v, err := m.AtName("a", "b")
	require.NoError(t, err)
	require.Equal(t, -0.3, v)

	_, err = m.AtName("a", "missing")
	require.ErrorIs(t, err, errs.ErrColumnNotFound)
}

func TestMatrix_OutOfBoundsErrors(t *testing.T) {
	m := NewMatrix([]string{"a"})
	_, err := m.At(5, 0)
	require.ErrorIs(t, err, errs.ErrIndexOutOfBounds)

	err = m.Set(-1, 0, 0.1)
	require.ErrorIs(t, err, errs.ErrIndexOutOfBounds)
}
