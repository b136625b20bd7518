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

package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// readDatasetFromFile reads a dataset file holding one number per line.
func readDatasetFromFile(inputFile string) ([]float64, error) {
	f, err := os.Open(inputFile)
	if err != nil {
		return nil, fmt.Errorf("couldn't open the dataset file = %q, err = %v", inputFile, err)
	}
	defer f.Close()
	return readDataset(f, inputFile)
}

// readDataset reads one number per line from r. Empty lines are skipped.
// name is only used in error messages.
func readDataset(r io.Reader, name string) ([]float64, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 1
	cr.TrimLeadingSpace = true

	data := make([]float64, 0)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("couldn't read the dataset file = %q, err = %v", name, err)
		}
		field := strings.TrimSpace(record[0])
		if field == "" {
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("couldn't read value = %q on line %d of the dataset file = %q as float64, err = %v", field, line, name, err)
		}
		data = append(data, v)
	}
	return data, nil
}

func formatAnswer(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
