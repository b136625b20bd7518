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

// Package audit contains simulatable auditors for aggregate queries over a
// static numeric dataset.
//
// An auditor answers a query exactly, or denies it when answering could let
// an adversary who knows every previously answered query determine a single
// dataset value. The decision to deny depends only on the queries and on
// answers already given, never on the true answer of the new query, so the
// denial itself reveals nothing an adversary could not compute.
//
// For general details, see Kenthapadi, Mishra and Nissim, "Simulatable
// Auditing", PODS 2005.
package audit

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is wrapped by errors returned when an auditor cannot be
	// constructed from the given dataset.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidQuery is wrapped by errors returned when a query is malformed or
	// selects a position outside the dataset.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrPrivacyLeak is wrapped by errors returned when a query is denied.
	ErrPrivacyLeak = errors.New("privacy leak detected")
)

// Auditor is implemented by the sum and max auditors.
//
// Not thread-safe.
type Auditor interface {
	// ExecuteQuery returns the aggregate over the positions selected by q, or
	// an error wrapping ErrInvalidQuery or ErrPrivacyLeak. A query is recorded
	// in the auditor's history iff it is answered.
	ExecuteQuery(q string) (float64, error)
	// NumQueries returns the number of answered queries.
	NumQueries() int
	// Data returns a copy of the audited dataset.
	Data() []float64
	String() string
}

func copyData(data []float64) []float64 {
	return append([]float64(nil), data...)
}

func copyInts(v []int) []int {
	return append([]int(nil), v...)
}

func describe(data []float64, numQueries int) string {
	return fmt.Sprintf("Dataset: %v, Number of Query: %d", data, numQueries)
}
