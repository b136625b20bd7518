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
	"sort"

	log "github.com/golang/glog"
	"github.com/google/differential-privacy/auditing/checks"
	"github.com/google/differential-privacy/auditing/query"
	"gonum.org/v1/gonum/floats"
)

// MaxAuditor answers max queries over a dataset of pairwise distinct values
// and denies every query for which some plausible answer would let a single
// value be determined.
//
// For a new query q, the auditor takes the answers of the answered queries that
// share a position with q and derives hypothetical answers for q around them
// (see hypotheticalAnswers). q is denied if, for any hypothetical answer, the
// answered queries plus q are consistent and some query has a single extreme
// element. The true answer of q is never looked at before the decision.
//
// Not thread-safe.
type MaxAuditor struct {
	data    []float64
	queries [][]int
	answers []float64
}

// MaxAuditorOptions contains the options necessary to initialize a MaxAuditor.
type MaxAuditorOptions struct {
	// Dataset to audit. Required; must have at least 2 finite, pairwise distinct values.
	Data []float64
}

// NewMaxAuditor returns a new MaxAuditor with an empty query history.
func NewMaxAuditor(opt *MaxAuditorOptions) (*MaxAuditor, error) {
	if opt == nil {
		opt = &MaxAuditorOptions{} // Prevents panicking due to a nil pointer dereference.
	}
	if err := checks.CheckDataset(opt.Data); err != nil {
		return nil, fmt.Errorf("NewMaxAuditor: %w: %w", ErrInvalidInput, err)
	}
	if err := checks.CheckDistinct(opt.Data); err != nil {
		return nil, fmt.Errorf("NewMaxAuditor: %w: %w", ErrInvalidInput, err)
	}
	return &MaxAuditor{data: copyData(opt.Data)}, nil
}

// ExecuteQuery returns the largest value at the positions selected by q.
// Positions repeated in q are kept as given.
func (ma *MaxAuditor) ExecuteQuery(q string) (float64, error) {
	positions, err := query.Parse(q, len(ma.data))
	if err != nil {
		return 0, fmt.Errorf("MaxAuditor.ExecuteQuery: %w: %w", ErrInvalidQuery, err)
	}
	leak, err := ma.leaks(positions)
	if err != nil {
		return 0, fmt.Errorf("MaxAuditor.ExecuteQuery: %w", err)
	}
	if leak {
		return 0, fmt.Errorf("MaxAuditor.ExecuteQuery: query %q denied: %w", q, ErrPrivacyLeak)
	}
	answer := floats.Max(ma.selected(positions))
	ma.queries = append(ma.queries, positions)
	ma.answers = append(ma.answers, answer)
	return answer, nil
}

// leaks reports whether some hypothetical answer to q makes the extended set
// of queries both consistent and value-identified.
func (ma *MaxAuditor) leaks(q []int) (bool, error) {
	if len(ma.queries) == 0 {
		// Nothing else bounds the values, so only a single position is revealed.
		return len(q) == 1, nil
	}

	known := ma.intersectingAnswers(q)
	var candidates []float64
	if len(known) == 0 {
		// The answer to q bounds no position of an answered query, so every
		// hypothetical answer yields the same extreme elements.
		log.Warningf("MaxAuditor: query %q shares no position with the %d answered queries", query.Format(q), len(ma.queries))
		candidates = []float64{0}
	} else {
		sort.Float64s(known)
		candidates = hypotheticalAnswers(known)
	}

	queries := make([][]int, 0, len(ma.queries)+1)
	queries = append(queries, ma.queries...)
	queries = append(queries, q)
	answers := make([]float64, len(ma.answers)+1)
	copy(answers, ma.answers)
	for _, at := range candidates {
		answers[len(answers)-1] = at
		extremes, err := extremeElements(queries, answers, len(ma.data))
		if err != nil {
			return false, err
		}
		if isConsistent(extremes) && isValueIdentified(extremes) {
			log.V(1).Infof("MaxAuditor: query %q identifies a value if its answer is %v", query.Format(q), at)
			return true, nil
		}
	}
	return false, nil
}

// intersectingAnswers returns the answers of the answered queries that share
// at least one position with q, in the order they were answered.
func (ma *MaxAuditor) intersectingAnswers(q []int) []float64 {
	inQ := make(map[int]bool, len(q))
	for _, p := range q {
		inQ[p] = true
	}
	var a []float64
	for k, hq := range ma.queries {
		for _, p := range hq {
			if inQ[p] {
				a = append(a, ma.answers[k])
				break
			}
		}
	}
	return a
}

func (ma *MaxAuditor) selected(positions []int) []float64 {
	s := make([]float64, len(positions))
	for i, p := range positions {
		s[i] = ma.data[p-1]
	}
	return s
}

// NumQueries returns the number of answered queries.
func (ma *MaxAuditor) NumQueries() int {
	return len(ma.queries)
}

// History returns the positions and answers of the answered queries in the
// order they were answered.
func (ma *MaxAuditor) History() ([][]int, []float64) {
	h := make([][]int, len(ma.queries))
	for i, q := range ma.queries {
		h[i] = copyInts(q)
	}
	return h, copyData(ma.answers)
}

// Data returns a copy of the audited dataset.
func (ma *MaxAuditor) Data() []float64 {
	return copyData(ma.data)
}

func (ma *MaxAuditor) String() string {
	return describe(ma.data, len(ma.queries))
}
