// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mapaccuracy/matrix"
)

const epsTight = 1e-12

// ------------------------------
// RowSums / ColSums / Diagonal
// ------------------------------

func TestRowColSums_FastAndFallback(t *testing.T) {
	t.Parallel()
	X := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 10, 20, 30})

	for _, m := range []matrix.Matrix{X, hide{X}} {
		rs, err := matrix.RowSums(m)
		require.NoError(t, err)
		assert.Equal(t, []float64{6, 60}, rs)

		cs, err := matrix.ColSums(m)
		require.NoError(t, err)
		assert.Equal(t, []float64{11, 22, 33}, cs)
	}

	_, err := matrix.RowSums(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.ColSums(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDiagonal(t *testing.T) {
	t.Parallel()
	cm, err := matrix.NewDenseFromCounts(confusion4)
	require.NoError(t, err)

	d, err := matrix.Diagonal(cm)
	require.NoError(t, err)
	assert.Equal(t, []float64{66, 55, 153, 313}, d)

	_, err = matrix.Diagonal(MustDense(t, 2, 3))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

// ------------------------------
// NormalizeRowsL1 / ScaleRows
// ------------------------------

func TestNormalizeRowsL1_RowProportions(t *testing.T) {
	t.Parallel()
	cm, err := matrix.NewDenseFromCounts(confusion4)
	require.NoError(t, err)

	P, norms, err := matrix.NormalizeRowsL1(cm)
	require.NoError(t, err)
	assert.Equal(t, []float64{75, 75, 165, 325}, norms)

	rs, err := matrix.RowSums(P)
	require.NoError(t, err)
	for i, s := range rs {
		assert.InDelta(t, 1.0, s, epsTight, "row %d", i)
	}
	assert.InDelta(t, 0.88, MustAt(t, P, 0, 0), epsTight)
}

func TestNormalizeRowsL1_DegenerateRowUnchanged(t *testing.T) {
	t.Parallel()
	X := NewFilledDense(t, 2, 2, []float64{0, 0, 1, 3})
	Y, norms, err := matrix.NormalizeRowsL1(hide{X})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 4}, norms)
	assert.Equal(t, 0.0, MustAt(t, Y, 0, 1))
	assert.Equal(t, 0.75, MustAt(t, Y, 1, 1))
}

func TestScaleRows(t *testing.T) {
	t.Parallel()
	X := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})

	for _, m := range []matrix.Matrix{X, hide{X}} {
		Y, err := matrix.ScaleRows(m, []float64{10, 0.5})
		require.NoError(t, err)
		assert.Equal(t, "[10, 20]\n[1.5, 2]\n", Y.String())
	}

	_, err := matrix.ScaleRows(X, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.ScaleRows(nil, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
