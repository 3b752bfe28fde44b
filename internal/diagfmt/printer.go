// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package diagfmt renders check results for the command line.
package diagfmt

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"fillmore-labs.com/composableguard/internal/run"
)

// Printer writes findings in the configured [Format].
type Printer struct {
	Format Format

	// Color enables ANSI colors in pretty output.
	Color bool

	// ReadFile returns file content for source excerpts, [os.ReadFile] when nil.
	ReadFile func(name string) ([]byte, error)
}

// Print writes the findings of all results to w.
func (p *Printer) Print(w io.Writer, results []run.Result) error {
	bw := bufio.NewWriter(w)

	var err error
	switch p.Format {
	case FormatPretty:
		err = p.printPretty(bw, results)

	case FormatShort:
		err = printShort(bw, results)

	case FormatJSON:
		err = printJSON(bw, results)

	default:
		err = fmt.Errorf("unknown output format %d", p.Format)
	}

	if err != nil {
		return err
	}

	return bw.Flush()
}

func (p *Printer) readFile(name string) ([]byte, error) {
	if p.ReadFile != nil {
		return p.ReadFile(name)
	}

	return os.ReadFile(name)
}

func printShort(w io.Writer, results []run.Result) error {
	for _, r := range results {
		for _, f := range r.Findings {
			if _, err := fmt.Fprintf(w, "%s:%d:%d: %s (%s)\n", r.Path, f.Pos.Line, f.Pos.Column, f.Message, f.Rule); err != nil {
				return err
			}
		}
	}

	return nil
}

// Count returns the number of findings and failed files.
func Count(results []run.Result) (findings, failed int) {
	for _, r := range results {
		findings += len(r.Findings)
		if r.Err != nil {
			failed++
		}
	}

	return findings, failed
}
