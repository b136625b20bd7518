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
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ratStrings renders m with exact fractions, e.g. "1/2".
func ratStrings(m ratMatrix) [][]string {
	s := make([][]string, len(m))
	for i, row := range m {
		s[i] = make([]string, len(row))
		for j, x := range row {
			s[i][j] = x.RatString()
		}
	}
	return s
}

func TestRatMatrixReduce(t *testing.T) {
	for _, tc := range []struct {
		desc     string
		rows     [][]int
		want     [][]string
		wantRank int
	}{
		{"empty matrix",
			nil,
			[][]string{},
			0},
		{"single row",
			[][]int{{1, 1, 1, 0}},
			[][]string{{"1", "1", "1", "0"}},
			1},
		{"prefix and extension",
			[][]int{{1, 1, 1, 0}, {1, 1, 1, 1}},
			[][]string{{"1", "1", "1", "0"}, {"0", "0", "0", "1"}},
			2},
		{"repeated row",
			[][]int{{1, 1, 0}, {1, 1, 0}},
			[][]string{{"1", "1", "0"}, {"0", "0", "0"}},
			1},
		{"zero first column",
			[][]int{{0, 1, 1}, {0, 0, 1}},
			[][]string{{"0", "1", "0"}, {"0", "0", "1"}},
			2},
		{"overlapping pairs",
			[][]int{{1, 1, 0}, {0, 1, 1}},
			[][]string{{"1", "0", "-1"}, {"0", "1", "1"}},
			2},
		{"full rank needs a row swap",
			[][]int{{0, 1, 1}, {1, 1, 0}, {1, 0, 1}},
			[][]string{{"1", "0", "0"}, {"0", "1", "0"}, {"0", "0", "1"}},
			3},
		{"fractional entries",
			[][]int{{2, 0, 1}, {0, 2, 1}},
			[][]string{{"1", "0", "1/2"}, {"0", "1", "1/2"}},
			2},
	} {
		m := newRatMatrix(tc.rows)
		rank := m.reduce()
		if rank != tc.wantRank {
			t.Errorf("reduce: when %s got rank %d, want %d", tc.desc, rank, tc.wantRank)
		}
		if diff := cmp.Diff(tc.want, ratStrings(m)); diff != "" {
			t.Errorf("reduce: when %s got diff (-want +got):\n%s", tc.desc, diff)
		}
	}
}

func TestRatMatrixHasUnitRowSum(t *testing.T) {
	for _, tc := range []struct {
		desc string
		rows [][]int
		want bool
	}{
		{"no rows", nil, false},
		{"standard basis row", [][]int{{0, 0, 1}}, true},
		{"row of ones", [][]int{{1, 1, 1}}, false},
		{"zero row", [][]int{{0, 0, 0}}, false},
		// Entries 1, 1/2 and -1/2 also sum to 1.
		{"fractional entries summing to one", [][]int{{2, 1, -1}}, true},
		{"fractional entries not summing to one", [][]int{{4, 1, 1}}, false},
	} {
		m := newRatMatrix(tc.rows)
		m.reduce()
		if got := m.hasUnitRowSum(); got != tc.want {
			t.Errorf("hasUnitRowSum: when %s got %t, want %t", tc.desc, got, tc.want)
		}
	}
}

func TestRatMatrixIsExact(t *testing.T) {
	// Thirds are not representable in binary floating point; the reduced row
	// (1, 1/3, 1/3, 1/3) must sum to exactly 2.
	m := newRatMatrix([][]int{{3, 1, 1, 1}})
	m.reduce()
	if got := m.rowSums()[0].RatString(); got != "2" {
		t.Errorf("rowSums got %s, want 2", got)
	}
	// (1, -1/3, -1/3, 2/3) sums to exactly 1.
	m = newRatMatrix([][]int{{3, -1, -1, 2}})
	m.reduce()
	if !m.hasUnitRowSum() {
		t.Errorf("hasUnitRowSum got false for row %v, want true", ratStrings(m))
	}
}
