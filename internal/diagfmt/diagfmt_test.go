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

package diagfmt_test

import (
	"encoding/json"
	"errors"
	"io/fs"
	"strings"
	"testing"

	. "fillmore-labs.com/composableguard/internal/diagfmt"
	"fillmore-labs.com/composableguard/internal/run"
	"fillmore-labs.com/composableguard/internal/source"
)

const component = "<script setup>\n" +
	"const ready = await load()\n" +
	"function handle() {\n" +
	"\tconst { user } = useAuth()\n" +
	"}\n" +
	"</script>\n"

var results = []run.Result{
	{
		Path: "App.vue",
		Findings: []run.Finding{
			{
				Rule:    "composable-placement",
				Kind:    "InvalidContext",
				Name:    "useAuth",
				Message: "`useAuth` is likely a composable and should be called in root context of setup() or another composable.",
				Start:   80,
				End:     89,
				Pos:     source.Position{Line: 4, Column: 19},
				After:   &source.Position{Line: 2, Column: 15},
			},
		},
	},
	{Path: "gen.js", Skipped: run.SkipGenerated},
	{Path: "bad.js", Err: errors.New("bad.js: syntax error")},
}

func readFile(name string) ([]byte, error) {
	if name == "App.vue" {
		return []byte(component), nil
	}

	return nil, fs.ErrNotExist
}

func TestShort(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	p := Printer{Format: FormatShort}
	if err := p.Print(&out, results); err != nil {
		t.Fatalf("Print failed: %v", err)
	}

	const want = "App.vue:4:19: `useAuth` is likely a composable and should be called in root context of setup() or another composable. (composable-placement)\n"
	if got := out.String(); got != want {
		t.Errorf("Got %q, want %q", got, want)
	}
}

func TestPretty(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	p := Printer{Format: FormatPretty, ReadFile: readFile}
	if err := p.Print(&out, results); err != nil {
		t.Fatalf("Print failed: %v", err)
	}

	const want = "App.vue:4:19: `useAuth` is likely a composable and should be called in root context of setup() or another composable. [composable-placement]\n" +
		" 4 | \tconst { user } = useAuth()\n" +
		"   | \t                 ^~~~~~~~~\n" +
		"   = note: after the await expression at 2:15\n" +
		"1 problem in 1 file\n"

	if got := out.String(); got != want {
		t.Errorf("Got:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyColor(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	p := Printer{Format: FormatPretty, Color: true, ReadFile: readFile}
	if err := p.Print(&out, results); err != nil {
		t.Fatalf("Print failed: %v", err)
	}

	if got := out.String(); !strings.Contains(got, "\x1b[") {
		t.Errorf("Expected ANSI escapes in %q", got)
	}
}

func TestPrettyMissingSource(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	p := Printer{
		Format:   FormatPretty,
		ReadFile: func(string) ([]byte, error) { return nil, fs.ErrNotExist },
	}
	if err := p.Print(&out, results); err != nil {
		t.Fatalf("Print failed: %v", err)
	}

	if got := out.String(); strings.Contains(got, " | ") {
		t.Errorf("Unexpected excerpt in %q", got)
	}
}

func TestJSON(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	p := Printer{Format: FormatJSON}
	if err := p.Print(&out, results); err != nil {
		t.Fatalf("Print failed: %v", err)
	}

	var doc struct {
		Findings []struct {
			File     string `json:"file"`
			Rule     string `json:"rule"`
			Name     string `json:"name"`
			Location struct {
				Line   int `json:"line"`
				Column int `json:"column"`
			} `json:"location"`
			After *struct {
				Line int `json:"line"`
			} `json:"after"`
		} `json:"findings"`
		Errors []struct {
			File string `json:"file"`
		} `json:"errors"`
		Skipped []struct {
			Reason string `json:"reason"`
		} `json:"skipped"`
		Count int `json:"count"`
	}

	if err := json.Unmarshal([]byte(out.String()), &doc); err != nil {
		t.Fatalf("Can't decode output: %v", err)
	}

	if doc.Count != 1 || len(doc.Findings) != 1 {
		t.Fatalf("Got %d findings, want 1", doc.Count)
	}

	f := doc.Findings[0]
	if f.File != "App.vue" || f.Rule != "composable-placement" || f.Name != "useAuth" || f.Location.Line != 4 || f.Location.Column != 19 {
		t.Errorf("Unexpected finding %+v", f)
	}

	if f.After == nil || f.After.Line != 2 {
		t.Errorf("Got after %v, want line 2", f.After)
	}

	if len(doc.Errors) != 1 || doc.Errors[0].File != "bad.js" {
		t.Errorf("Got errors %+v", doc.Errors)
	}

	if len(doc.Skipped) != 1 || doc.Skipped[0].Reason != "generated" {
		t.Errorf("Got skipped %+v", doc.Skipped)
	}
}

func TestJSONEmpty(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	p := Printer{Format: FormatJSON}
	if err := p.Print(&out, nil); err != nil {
		t.Fatalf("Print failed: %v", err)
	}

	const want = "{\n  \"findings\": [],\n  \"count\": 0\n}\n"
	if got := out.String(); got != want {
		t.Errorf("Got %q, want %q", got, want)
	}
}

func TestCount(t *testing.T) {
	t.Parallel()

	if findings, failed := Count(results); findings != 1 || failed != 1 {
		t.Errorf("Got %d findings, %d failed, want 1, 1", findings, failed)
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text    string
		want    Format
		wantErr bool
	}{
		{"pretty", FormatPretty, false},
		{"", FormatPretty, false},
		{"SHORT", FormatShort, false},
		{"json", FormatJSON, false},
		{"sarif", FormatPretty, true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			var f Format
			err := f.Set(tt.text)

			if (err != nil) != tt.wantErr {
				t.Fatalf("Set(%q) error = %v, want error %v", tt.text, err, tt.wantErr)
			}

			if f != tt.want {
				t.Errorf("Set(%q) = %v, want %v", tt.text, f, tt.want)
			}
		})
	}

	if got := FormatJSON.String(); got != "json" {
		t.Errorf("String() = %q", got)
	}
}

func TestColorMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text     string
		terminal bool
		want     bool
	}{
		{"auto", true, true},
		{"auto", false, false},
		{"on", false, true},
		{"off", true, false},
	}

	for _, tt := range tests {
		var c ColorMode
		if err := c.Set(tt.text); err != nil {
			t.Fatalf("Set(%q) failed: %v", tt.text, err)
		}

		if got := c.Enabled(tt.terminal); got != tt.want {
			t.Errorf("%s.Enabled(%t) = %t, want %t", c, tt.terminal, got, tt.want)
		}
	}

	var c ColorMode
	if err := c.Set("sometimes"); err == nil {
		t.Error("Expected error for unknown color mode")
	}
}
