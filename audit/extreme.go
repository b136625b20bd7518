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

import (
	"fmt"
	"math"
)

// extremeElements returns, for every query k, the 1-based positions j for
// which query k is an extreme element: among all queries containing j, query k
// has the smallest answer. That smallest answer is the upper bound of the
// value at j. Ties are kept, so a position can have several extreme queries.
//
// n is the dataset size and every position in queries must be within [1, n].
func extremeElements(queries [][]int, answers []float64, n int) ([][]int, error) {
	if len(queries) != len(answers) {
		return nil, fmt.Errorf("extremeElements: got %d queries and %d answers, must be the same", len(queries), len(answers))
	}
	upper := make([]float64, n)
	for j := range upper {
		upper[j] = math.Inf(1)
	}
	// byPosition[j] holds the indices of the extreme queries of position j+1,
	// in increasing order.
	byPosition := make([][]int, n)
	for k, q := range queries {
		a := answers[k]
		for _, p := range q {
			j := p - 1
			switch {
			case a < upper[j]:
				upper[j] = a
				byPosition[j] = []int{k}
			case a == upper[j]:
				// A query that lists j twice is still a single extreme element.
				if last := len(byPosition[j]) - 1; last < 0 || byPosition[j][last] != k {
					byPosition[j] = append(byPosition[j], k)
				}
			}
		}
	}

	byQuery := make([][]int, len(queries))
	for j, ks := range byPosition {
		for _, k := range ks {
			byQuery[k] = append(byQuery[k], j+1)
		}
	}
	return byQuery, nil
}

// isConsistent reports whether every query has at least one extreme element.
// A query without one has an answer that no assignment of values to its
// positions can reach.
func isConsistent(extremes [][]int) bool {
	for _, e := range extremes {
		if len(e) == 0 {
			return false
		}
	}
	return true
}

// isValueIdentified reports whether some query has exactly one extreme
// element, whose value is then equal to that query's answer.
func isValueIdentified(extremes [][]int) bool {
	for _, e := range extremes {
		if len(e) == 1 {
			return true
		}
	}
	return false
}

// hypotheticalAnswers returns answers that bracket every position the unknown
// answer of a new query can take relative to the known answers a, which must
// be sorted in ascending order and be non-empty: one below the smallest, each
// known answer, the midpoint of each consecutive pair, and one above the
// largest.
func hypotheticalAnswers(a []float64) []float64 {
	h := make([]float64, 0, 2*len(a)+1)
	h = append(h, a[0]-1, a[0])
	for i := 1; i < len(a); i++ {
		h = append(h, (a[i-1]+a[i])/2, a[i])
	}
	return append(h, a[len(a)-1]+1)
}
