//
// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package audit

import "math/big"

// ratMatrix is a dense matrix of exact rationals.
type ratMatrix [][]*big.Rat

// newRatMatrix builds a matrix whose rows are copies of rows. All rows must
// have the same length.
func newRatMatrix(rows [][]int) ratMatrix {
	m := make(ratMatrix, len(rows))
	for i, row := range rows {
		m[i] = make([]*big.Rat, len(row))
		for j, x := range row {
			m[i][j] = big.NewRat(int64(x), 1)
		}
	}
	return m
}

// reduce transforms m in place into its reduced row-echelon form using
// Gauss-Jordan elimination, and returns the rank of m.
func (m ratMatrix) reduce() int {
	if len(m) == 0 {
		return 0
	}
	cols := len(m[0])
	pivot := 0
	tmp := new(big.Rat)
	for c := 0; c < cols && pivot < len(m); c++ {
		p := -1
		for r := pivot; r < len(m); r++ {
			if m[r][c].Sign() != 0 {
				p = r
				break
			}
		}
		if p < 0 {
			continue
		}
		m[pivot], m[p] = m[p], m[pivot]

		inv := new(big.Rat).Inv(m[pivot][c])
		for j := c; j < cols; j++ {
			m[pivot][j].Mul(m[pivot][j], inv)
		}
		for r := range m {
			if r == pivot || m[r][c].Sign() == 0 {
				continue
			}
			f := new(big.Rat).Set(m[r][c])
			// Entries left of c are zero in the pivot row.
			for j := c; j < cols; j++ {
				m[r][j].Sub(m[r][j], tmp.Mul(f, m[pivot][j]))
			}
		}
		pivot++
	}
	return pivot
}

// rowSums returns the exact sum of every row of m.
func (m ratMatrix) rowSums() []*big.Rat {
	sums := make([]*big.Rat, len(m))
	for i, row := range m {
		s := new(big.Rat)
		for _, x := range row {
			s.Add(s, x)
		}
		sums[i] = s
	}
	return sums
}

var ratOne = big.NewRat(1, 1)

// hasUnitRowSum reports whether some row of m sums to exactly 1.
func (m ratMatrix) hasUnitRowSum() bool {
	for _, s := range m.rowSums() {
		if s.Cmp(ratOne) == 0 {
			return true
		}
	}
	return false
}
