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

// Package query decodes the textual form of an aggregate query, a
// comma-separated list of 1-based dataset positions such as "1,2,3".
package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/differential-privacy/auditing/checks"
)

// Separator delimits the positions of a query.
const Separator = ","

// Parse decodes q into the list of positions it selects, in the order given.
// Repeated positions are kept. It returns an error if an element is not an
// integer or lies outside [1, n].
func Parse(q string, n int) ([]int, error) {
	fields := strings.Split(q, Separator)
	positions := make([]int, 0, len(fields))
	for _, f := range fields {
		p, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("couldn't read position %q of query %q as an integer", f, q)
		}
		positions = append(positions, p)
	}
	if err := checks.CheckPositions(positions, n); err != nil {
		return nil, err
	}
	return positions, nil
}

// Indicator folds positions into a length-n 0/1 vector whose entry i-1 is set
// iff position i is selected. Repeated positions set the same entry once.
// positions must already be within [1, n].
func Indicator(positions []int, n int) []int {
	v := make([]int, n)
	for _, p := range positions {
		v[p-1] = 1
	}
	return v
}

// Positions is the inverse of Indicator: it returns the selected 1-based
// positions of v in ascending order.
func Positions(v []int) []int {
	var positions []int
	for i, x := range v {
		if x != 0 {
			positions = append(positions, i+1)
		}
	}
	return positions
}

// Format renders positions in the form accepted by Parse.
func Format(positions []int) string {
	s := make([]string, len(positions))
	for i, p := range positions {
		s[i] = strconv.Itoa(p)
	}
	return strings.Join(s, Separator)
}
