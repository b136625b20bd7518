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
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/differential-privacy/auditing/audit"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args, feeding it input, and returns what
// it wrote to its output.
func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "simaudit", cmd.Use)

	for name, shorthand := range map[string]string{"sum": "s", "max": "m", "data": "d", "file": "f"} {
		flag := cmd.Flags().Lookup(name)
		require.NotNil(t, flag, "flag --%s should exist", name)
		assert.Equal(t, shorthand, flag.Shorthand)
	}
	assert.Contains(t, cmd.Long, "--data=1,2,3")
	assert.Contains(t, cmd.Long, "repeated")
}

func TestRootCommandDataForms(t *testing.T) {
	for _, tc := range []struct {
		desc string
		args []string
	}{
		{"comma-separated", []string{"--sum", "--data=1,2,3"}},
		{"shorthand", []string{"--sum", "-d", "1,2,3"}},
		{"repeated flag", []string{"--sum", "-d", "1", "-d", "2", "-d", "3"}},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			out, err := execute(t, "1,2,3\nq\n", tc.args...)
			require.NoError(t, err)
			assert.Contains(t, out, prompt+"6\n")
		})
	}
}

func TestRootCommandFlagGroups(t *testing.T) {
	for _, tc := range []struct {
		desc string
		args []string
	}{
		{"no mode", []string{"--data=1,2,3"}},
		{"both modes", []string{"--sum", "--max", "--data=1,2,3"}},
		{"no dataset", []string{"--sum"}},
		{"both datasets", []string{"--max", "--data=1,2,3", "--file=testdata/max_dataset.txt"}},
		{"positional argument", []string{"--sum", "--data=1,2,3", "extra"}},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			out, err := execute(t, "q\n", tc.args...)
			require.Error(t, err)
			assert.Empty(t, out, "no auditor should be created")
		})
	}
}

func TestRootCommandInvalidDataset(t *testing.T) {
	for _, tc := range []struct {
		desc string
		args []string
	}{
		{"single value", []string{"--sum", "--data=1"}},
		{"duplicate values for max", []string{"--max", "--data=1,1,2"}},
		{"missing file", []string{"--max", "--file=testdata/does_not_exist.txt"}},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := execute(t, "q\n", tc.args...)
			require.Error(t, err)
		})
	}

	_, err := execute(t, "q\n", "--sum", "--data=1")
	assert.True(t, errors.Is(err, audit.ErrInvalidInput), "got err %v, want it to wrap %v", err, audit.ErrInvalidInput)
}

func TestSumSession(t *testing.T) {
	input := "1,2,3\n1,2,3,4\n1,2,3,11\n1,2,3,4,5\nquit\n1\n"
	out, err := execute(t, input, "--sum", "--data=1,2,3,4,5,6,7,8,9,10")
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "sum_session", []byte(out))
}

func TestMaxSessionFromFile(t *testing.T) {
	input := "1,2,3,4,5\n1,2,3\n3,4\n1\n6\nQ\n"
	out, err := execute(t, input, "-m", "-f", "testdata/max_dataset.txt")
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "max_session", []byte(out))
}

func TestSessionEndsAtEndOfInput(t *testing.T) {
	out, err := execute(t, "1,2\n", "--max", "--data=1,2,8,4,10")
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "eof_session", []byte(out))
}

func TestRespond(t *testing.T) {
	a, err := audit.NewSumAuditor(&audit.SumAuditorOptions{Data: []float64{1.5, 2, 3}})
	require.NoError(t, err)

	assert.Equal(t, "3.5", respond(a, "1,2"))
	assert.Equal(t, "Denied", respond(a, "3"))
	assert.Equal(t, "Invalid query", respond(a, "4"))
	assert.Equal(t, "Invalid query", respond(a, "x"))
	assert.Equal(t, 1, a.NumQueries())
}
