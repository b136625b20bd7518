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

// This is an interactive command line utility which audits sum or max queries
// over a dataset.
// Usage example:
// (From the repository root)
// go run ./cli/main --sum --data=1,2,3,4,5,6,7,8,9,10
// go run ./cli/main --max --file=dataset.txt --logtostderr
package main

import (
	"flag"

	log "github.com/golang/glog"
	"github.com/google/differential-privacy/auditing/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	// Exposes glog's flags, such as --v and --logtostderr.
	cmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	cmd.SilenceErrors = true
	defer log.Flush()

	if err := cmd.Execute(); err != nil {
		log.Exitf("Couldn't run simaudit, err = %v", err)
	}
}
