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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	log "github.com/golang/glog"
	"github.com/google/differential-privacy/auditing/audit"
)

const (
	prompt    = "Enter query (use a command separator): "
	quitHint  = "Enter quit or q to quit"
	denied    = "Denied"
	badQuery  = "Invalid query"
	shortQuit = "q"
	longQuit  = "quit"
)

// RunSession reads queries from in, one per line, sends them to a and writes
// the answers to out until a quit command or the end of in. Denied and
// invalid queries are reported on out and do not end the session.
func RunSession(a audit.Auditor, in io.Reader, out io.Writer) error {
	if _, err := fmt.Fprintln(out, quitHint); err != nil {
		return err
	}
	// Lines have no length limit: a query may list every dataset position.
	r := bufio.NewReader(in)
	for {
		if _, err := fmt.Fprint(out, prompt); err != nil {
			return err
		}
		line, err := r.ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("couldn't read query, err = %v", err)
		}
		if err == io.EOF && line == "" {
			_, err := fmt.Fprintln(out)
			return err
		}
		line = strings.TrimRight(line, "\r\n")
		if cmd := strings.ToLower(strings.TrimSpace(line)); cmd == shortQuit || cmd == longQuit {
			log.Infof("Session ended after %d answered queries", a.NumQueries())
			return nil
		}
		if _, err := fmt.Fprintln(out, respond(a, line)); err != nil {
			return err
		}
	}
}

// respond returns the line printed for query q.
func respond(a audit.Auditor, q string) string {
	answer, err := a.ExecuteQuery(q)
	switch {
	case err == nil:
		return formatAnswer(answer)
	case errors.Is(err, audit.ErrPrivacyLeak):
		return denied
	case errors.Is(err, audit.ErrInvalidQuery):
		return badQuery
	default:
		// ExecuteQuery only returns the two kinds above.
		log.Errorf("Unexpected error for query %q: %v", q, err)
		return badQuery
	}
}
