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

	log "github.com/golang/glog"
	"github.com/google/differential-privacy/auditing/checks"
	"github.com/google/differential-privacy/auditing/query"
	"gonum.org/v1/gonum/floats"
)

// SumAuditor answers sum queries over a dataset and denies every query that,
// together with the queries it already answered, would make a single value
// linearly determined.
//
// Each answered query is kept as a 0/1 indicator vector over the dataset. A new
// query q is denied if the reduced row-echelon form of the matrix whose rows
// are the answered vectors followed by q has a row whose entries sum to
// exactly 1. The echelon form is computed with exact rational arithmetic over
// the whole history on every call.
//
// Not thread-safe.
type SumAuditor struct {
	data    []float64
	queries [][]int
}

// SumAuditorOptions contains the options necessary to initialize a SumAuditor.
type SumAuditorOptions struct {
	Data []float64 // Dataset to audit. Required; must have at least 2 finite values.
}

// NewSumAuditor returns a new SumAuditor with an empty query history.
func NewSumAuditor(opt *SumAuditorOptions) (*SumAuditor, error) {
	if opt == nil {
		opt = &SumAuditorOptions{} // Prevents panicking due to a nil pointer dereference.
	}
	if err := checks.CheckDataset(opt.Data); err != nil {
		return nil, fmt.Errorf("NewSumAuditor: %w: %w", ErrInvalidInput, err)
	}
	return &SumAuditor{data: copyData(opt.Data)}, nil
}

// ExecuteQuery returns the sum of the values at the positions selected by q.
// Positions repeated in q are counted once.
func (sa *SumAuditor) ExecuteQuery(q string) (float64, error) {
	positions, err := query.Parse(q, len(sa.data))
	if err != nil {
		return 0, fmt.Errorf("SumAuditor.ExecuteQuery: %w: %w", ErrInvalidQuery, err)
	}
	v := query.Indicator(positions, len(sa.data))
	if sa.leaks(v) {
		return 0, fmt.Errorf("SumAuditor.ExecuteQuery: query %q denied: %w", q, ErrPrivacyLeak)
	}
	sa.queries = append(sa.queries, v)
	return floats.Sum(sa.selected(v)), nil
}

// leaks reports whether answering v would let a single value be determined.
func (sa *SumAuditor) leaks(v []int) bool {
	rows := make([][]int, 0, len(sa.queries)+1)
	rows = append(rows, sa.queries...)
	rows = append(rows, v)
	m := newRatMatrix(rows)
	rank := m.reduce()
	leak := m.hasUnitRowSum()
	log.V(1).Infof("SumAuditor: query %q makes %d queries of rank %d, leak = %t", query.Format(query.Positions(v)), len(rows), rank, leak)
	return leak
}

func (sa *SumAuditor) selected(v []int) []float64 {
	var s []float64
	for i, x := range v {
		if x == 1 {
			s = append(s, sa.data[i])
		}
	}
	return s
}

// NumQueries returns the number of answered queries.
func (sa *SumAuditor) NumQueries() int {
	return len(sa.queries)
}

// History returns the indicator vectors of the answered queries in the order
// they were answered.
func (sa *SumAuditor) History() [][]int {
	h := make([][]int, len(sa.queries))
	for i, v := range sa.queries {
		h[i] = copyInts(v)
	}
	return h
}

// Data returns a copy of the audited dataset.
func (sa *SumAuditor) Data() []float64 {
	return copyData(sa.data)
}

func (sa *SumAuditor) String() string {
	return describe(sa.data, len(sa.queries))
}
