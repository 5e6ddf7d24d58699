// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the row/column reductions and row transforms that stratified
//     estimators are built from: marginal totals, the diagonal, row-stochastic
//     normalisation (n_ij / n_i·) and per-row scaling (W_i · ...).
//
// Exposed API:
//   - RowSums(X)           -> r[i] = Σ_j X[i,j]
//   - ColSums(X)           -> c[j] = Σ_i X[i,j]
//   - Diagonal(X)          -> d[i] = X[i,i]            (square only)
//   - NormalizeRowsL1(X)   -> (Y, norms)               (degenerate rows unchanged)
//   - ScaleRows(X, s)      -> Y[i,j] = s[i] * X[i,j]
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths operate on the row-major flat buffer; other Matrix
//     implementations go through At with full error propagation.

package matrix

// Operation name constants for unified error wrapping.
const (
	opRowSums         = "RowSums"
	opColSums         = "ColSums"
	opDiagonal        = "Diagonal"
	opNormalizeRowsL1 = "NormalizeRowsL1"
	opScaleRows       = "ScaleRows"
)

// RowSums returns vector r where r[i] = Σ_j X[i,j].
// Errors: ErrNilMatrix; wrapped At errors on the fallback path.
// Complexity: O(r*c).
func RowSums(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	r, c := X.Rows(), X.Cols()
	sums := make([]float64, r)

	var i, j int
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				sums[i] += d.data[base+j]
			}
		}
		return sums, nil
	}

	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err := X.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opRowSums, err)
			}
			sums[i] += v
		}
	}

	return sums, nil
}

// ColSums returns vector c where c[j] = Σ_i X[i,j].
// Complexity: O(r*c).
func ColSums(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColSums, err)
	}
	r, c := X.Rows(), X.Cols()
	sums := make([]float64, c)

	var i, j int
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				sums[j] += d.data[base+j]
			}
		}
		return sums, nil
	}

	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err := X.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opColSums, err)
			}
			sums[j] += v
		}
	}

	return sums, nil
}

// Diagonal returns d[i] = X[i,i] for a square X.
// Errors: ErrNilMatrix, ErrNonSquare.
func Diagonal(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opDiagonal, err)
	}
	if err := ValidateSquare(X); err != nil {
		return nil, matrixErrorf(opDiagonal, err)
	}
	n := X.Rows()
	diag := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := X.At(i, i)
		if err != nil {
			return nil, matrixErrorf(opDiagonal, err)
		}
		diag[i] = v
	}

	return diag, nil
}

// NormalizeRowsL1 scales each row to have L1-norm == 1 when possible.
// Implementation:
//   - Stage 1: Validate X (non-nil).
//   - Stage 2: Compute per-row L1 norms deterministically.
//   - Stage 3: Build row scale factors (1/norm); for norm==0 use scale=1 to keep the row unchanged.
//   - Stage 4: Apply ScaleRows to produce a normalized copy.
//
// For a confusion matrix this yields the within-stratum proportions
// n_ij / n_i·; the returned norms are the row totals n_i·.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for output (+ O(r) norms + O(r) scales).
func NormalizeRowsL1(X Matrix) (*Dense, []float64, error) {
	// Stage 1 (Validate): ensure X is present.
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL1, err)
	}
	r, c := X.Rows(), X.Cols()
	norms := make([]float64, r)

	// Stage 2 (Execute): compute L1 norms per row.
	var i, j int
	var s, v float64
	var err error
	for i = 0; i < r; i++ {
		s = 0.0
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, nil, matrixErrorf(opNormalizeRowsL1, err)
			}
			if v < 0 {
				v = -v // abs
			}
			s += v
		}
		norms[i] = s
	}

	// Stage 3 (Prepare scales): degenerate rows keep scale 1.
	scale := make([]float64, r)
	for i = 0; i < r; i++ {
		if norms[i] > 0 {
			scale[i] = 1.0 / norms[i]
		} else {
			scale[i] = 1.0
		}
	}

	// Stage 4 (Apply).
	Y, err := ScaleRows(X, scale)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL1, err)
	}

	return Y, norms, nil
}

// ScaleRows returns a fresh Dense with out[i,j] = X[i,j] * scale[i].
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(scale) != Rows).
// Time: O(r*c). Space: O(r*c).
func ScaleRows(X Matrix, scale []float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opScaleRows, err)
	}
	r, c := X.Rows(), X.Cols()
	if err := ValidateVecLen(scale, r); err != nil {
		return nil, matrixErrorf(opScaleRows, err)
	}
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opScaleRows, err)
	}

	// Dense fast-path.
	if d, ok := X.(*Dense); ok {
		for i := 0; i < r; i++ {
			base := i * c
			sf := scale[i]
			for j := 0; j < c; j++ {
				out.data[base+j] = d.data[base+j] * sf
			}
		}
		return out, nil
	}

	// Generic fallback.
	for i := 0; i < r; i++ {
		sf := scale[i]
		for j := 0; j < c; j++ {
			v, e := X.At(i, j)
			if e != nil {
				return nil, matrixErrorf(opScaleRows, e)
			}
			if e = out.Set(i, j, v*sf); e != nil {
				return nil, matrixErrorf(opScaleRows, e)
			}
		}
	}

	return out, nil
}
