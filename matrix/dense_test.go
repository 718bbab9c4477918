// Package matrix_test exercises the Dense container itself: construction,
// safe accessors, cloning, NaN-aware equality, and traversal.
package matrix_test

import (
	"math"
	"testing"

	"github.com/korvyl/gmat/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDense_Shapes accepts zero-sized shapes and rejects negative ones.
func TestNewDense_Shapes(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDense(0, 0)
	require.NoError(t, err)
	require.Zero(t, m.Rows())

	_, err = matrix.NewDense(-1, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseFromRows_Ragged rejects rows of unequal length.
func TestNewDenseFromRows_Ragged(t *testing.T) {
	t.Parallel()
	_, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestDense_AtSet covers point access and the out-of-range guards.
func TestDense_AtSet(t *testing.T) {
	t.Parallel()
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 8.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 8.5, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 3, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(-1, 0, 1), matrix.ErrOutOfRange)
}

// TestDense_Clone verifies deep-copy independence.
func TestDense_Clone(t *testing.T) {
	t.Parallel()
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	cp := m.Clone()
	require.True(t, m.Equal(cp))
	require.NoError(t, cp.Set(0, 0, 99))
	require.False(t, m.Equal(cp))
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

// TestDense_EqualNaN treats NaN cells as equal so NaN-nonedge matrices can
// be compared element-wise.
func TestDense_EqualNaN(t *testing.T) {
	t.Parallel()
	nan := math.NaN()
	a, err := matrix.NewDenseFromRows([][]float64{{nan, 1}})
	require.NoError(t, err)
	b, err := matrix.NewDenseFromRows([][]float64{{nan, 1}})
	require.NoError(t, err)
	c, err := matrix.NewDenseFromRows([][]float64{{0, 1}})
	require.NoError(t, err)

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
	require.False(t, a.Equal(nil))
}

// TestDense_Do verifies row-major visitation order and early stop.
func TestDense_Do(t *testing.T) {
	t.Parallel()
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	var order []float64
	m.Do(func(i, j int, v float64) bool {
		order = append(order, v)

		return true
	})
	require.Equal(t, []float64{1, 2, 3, 4}, order)

	count := 0
	m.Do(func(i, j int, v float64) bool {
		count++

		return count < 3
	})
	require.Equal(t, 3, count)
}
