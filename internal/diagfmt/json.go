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

package diagfmt

import (
	"encoding/json"
	"io"

	"fillmore-labs.com/composableguard/internal/run"
)

type locationJSON struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

type findingJSON struct {
	File     string        `json:"file"`
	Rule     string        `json:"rule"`
	Kind     string        `json:"kind"`
	Name     string        `json:"name"`
	Message  string        `json:"message"`
	Start    int           `json:"start_byte"`
	End      int           `json:"end_byte"`
	Location locationJSON  `json:"location"`
	After    *locationJSON `json:"after,omitempty"`
}

type errorJSON struct {
	File  string `json:"file"`
	Error string `json:"error"`
}

type skippedJSON struct {
	File   string `json:"file"`
	Reason string `json:"reason"`
}

type outputJSON struct {
	Findings []findingJSON `json:"findings"`
	Errors   []errorJSON   `json:"errors,omitempty"`
	Skipped  []skippedJSON `json:"skipped,omitempty"`
	Count    int           `json:"count"`
}

func printJSON(w io.Writer, results []run.Result) error {
	out := outputJSON{Findings: []findingJSON{}}

	for _, r := range results {
		if r.Err != nil {
			out.Errors = append(out.Errors, errorJSON{File: r.Path, Error: r.Err.Error()})
		}

		if r.Skipped != run.NotSkipped {
			out.Skipped = append(out.Skipped, skippedJSON{File: r.Path, Reason: string(r.Skipped)})
		}

		for _, f := range r.Findings {
			d := findingJSON{
				File:     r.Path,
				Rule:     f.Rule,
				Kind:     f.Kind,
				Name:     f.Name,
				Message:  f.Message,
				Start:    f.Start,
				End:      f.End,
				Location: locationJSON{Line: f.Pos.Line, Column: f.Pos.Column},
			}

			if f.After != nil {
				d.After = &locationJSON{Line: f.After.Line, Column: f.After.Column}
			}

			out.Findings = append(out.Findings, d)
		}
	}

	out.Count = len(out.Findings)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}
