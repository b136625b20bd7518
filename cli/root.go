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

// Package cli contains the interactive command line front end of the
// simulatable auditors.
package cli

import (
	"fmt"

	log "github.com/golang/glog"
	"github.com/google/differential-privacy/auditing/audit"
	"github.com/spf13/cobra"
)

// Options holds the flags of the root command.
type Options struct {
	Sum  bool
	Max  bool
	Data []float64
	File string
}

const longHelp = `Answers sum or max queries over a dataset and denies every query that would
let a single value be determined.

Inline values are comma-separated, e.g. --data=1,2,3 or -d 1,2,3. The --data
flag may also be repeated.`

// NewRootCommand creates the root command. Exactly one of --sum and --max,
// and exactly one of --data and --file, must be given.
func NewRootCommand() *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:          "simaudit",
		Short:        "Simulatable auditing for sum and max queries",
		Long:         longHelp,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&opts.Sum, "sum", "s", false, "Use sum auditing")
	f.BoolVarP(&opts.Max, "max", "m", false, "Use max auditing")
	f.Float64SliceVarP(&opts.Data, "data", "d", nil, "Dataset, e.g. 1,2,3")
	f.StringVarP(&opts.File, "file", "f", "", "Dataset file with one number per line")

	cmd.MarkFlagsMutuallyExclusive("sum", "max")
	cmd.MarkFlagsOneRequired("sum", "max")
	cmd.MarkFlagsMutuallyExclusive("data", "file")
	cmd.MarkFlagsOneRequired("data", "file")

	return cmd
}

func run(cmd *cobra.Command, opts *Options) error {
	log.Infof("simaudit was run with arguments: sum = %t, max = %t, inline values = %d, file = %q",
		opts.Sum, opts.Max, len(opts.Data), opts.File)

	data := opts.Data
	if opts.File != "" {
		var err error
		data, err = readDatasetFromFile(opts.File)
		if err != nil {
			return err
		}
	}
	log.Infof("Auditing a dataset of %d values", len(data))

	a, title, err := newAuditor(opts, data)
	if err != nil {
		return fmt.Errorf("couldn't create auditor, err = %w", err)
	}
	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintln(out, title); err != nil {
		return err
	}
	return RunSession(a, cmd.InOrStdin(), out)
}

// newAuditor returns the auditor selected by opts and the title announcing it.
func newAuditor(opts *Options, data []float64) (audit.Auditor, string, error) {
	if opts.Sum {
		a, err := audit.NewSumAuditor(&audit.SumAuditorOptions{Data: data})
		if err != nil {
			return nil, "", err
		}
		return a, "SUM AUDITING", nil
	}
	a, err := audit.NewMaxAuditor(&audit.MaxAuditorOptions{Data: data})
	if err != nil {
		return nil, "", err
	}
	return a, "MAX AUDITING", nil
}
