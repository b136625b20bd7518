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

// Package checks contains checks for the inputs of simulatable auditors.
package checks

import (
	"fmt"
	"math"

	log "github.com/golang/glog"
)

const (
	datasetName = "Dataset"
	queryName   = "Query"

	// MinDatasetSize is the smallest dataset an auditor accepts. A dataset with a
	// single record is disclosed by any aggregate over it.
	MinDatasetSize = 2
)

func verifyName(defaultName string, nameSlice []string) (string, error) {
	var name string
	switch len(nameSlice) {
	case 0:
		name = defaultName
	case 1:
		name = nameSlice[0]
	default:
		return "", fmt.Errorf("This should never happen. There should be 0 or 1 'name' parameter, got %d", len(nameSlice))
	}
	return name, nil
}

// CheckDataset returns an error if data has fewer than MinDatasetSize elements
// or contains a NaN or ±∞ value.
func CheckDataset(data []float64, name ...string) error {
	dsName, err := verifyName(datasetName, name)
	if err != nil {
		return err
	}
	if data == nil {
		return fmt.Errorf("%s is nil, must be a sequence of at least %d values", dsName, MinDatasetSize)
	}
	if len(data) < MinDatasetSize {
		return fmt.Errorf("%s has %d values, must have at least %d", dsName, len(data), MinDatasetSize)
	}
	for i, v := range data {
		if math.IsNaN(v) {
			return fmt.Errorf("%s value at position %d is NaN", dsName, i+1)
		}
		if math.IsInf(v, 0) {
			return fmt.Errorf("%s value at position %d is %f, must be finite", dsName, i+1, v)
		}
	}
	return nil
}

// CheckDistinct returns an error if two values of data are equal.
func CheckDistinct(data []float64, name ...string) error {
	dsName, err := verifyName(datasetName, name)
	if err != nil {
		return err
	}
	seen := make(map[float64]int, len(data))
	for i, v := range data {
		if j, ok := seen[v]; ok {
			return fmt.Errorf("%s values at positions %d and %d are both %v, must be pairwise distinct", dsName, j, i+1, v)
		}
		seen[v] = i + 1
	}
	return nil
}

// CheckPosition returns an error if the 1-based position p is outside [1, n].
func CheckPosition(p, n int, name ...string) error {
	qName, err := verifyName(queryName, name)
	if err != nil {
		return err
	}
	if p < 1 || p > n {
		return fmt.Errorf("%s position is %d, must be within [1, %d]", qName, p, n)
	}
	return nil
}

// CheckPositions returns an error if positions is empty or any of its elements
// is outside [1, n]. Repeated positions are allowed but reported.
func CheckPositions(positions []int, n int, name ...string) error {
	qName, err := verifyName(queryName, name)
	if err != nil {
		return err
	}
	if len(positions) == 0 {
		return fmt.Errorf("%s is empty, must select at least one position", qName)
	}
	seen := make(map[int]bool, len(positions))
	for _, p := range positions {
		if err := CheckPosition(p, n, qName); err != nil {
			return err
		}
		if seen[p] {
			log.Warningf("%s selects position %d more than once", qName, p)
		}
		seen[p] = true
	}
	return nil
}
