// SPDX-License-Identifier: MIT

// Package matrix provides converters between Dense and gonum's mat package,
// so tables assembled with gonum can be fed to the estimators directly.
package matrix

import "gonum.org/v1/gonum/mat"

const (
	opFromGonum = "FromGonum"
)

// FromGonum copies any gonum mat.Matrix into a new Dense.
// Values must be finite (ErrNaNInf otherwise).
//
// Time Complexity: O(r*c)
func FromGonum(g mat.Matrix) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := g.Dims()
	m, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err = m.Set(i, j, g.At(i, j)); err != nil {
				return nil, matrixErrorf(opFromGonum, err)
			}
		}
	}

	return m, nil
}

// ToGonum returns a gonum *mat.Dense holding a copy of m's data.
// The backing buffer is not shared.
func (m *Dense) ToGonum() *mat.Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return mat.NewDense(m.r, m.c, cp)
}
