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

package report_test

import (
	"go/token"
	"testing"

	"golang.org/x/tools/go/analysis"

	. "fillmore-labs.com/composableguard/internal/report"
	"fillmore-labs.com/composableguard/internal/run"
	"fillmore-labs.com/composableguard/internal/source"
)

const content = "async function useFoo() {\n  await x\n  onMounted(f)\n}\n"

func TestFindings(t *testing.T) {
	t.Parallel()

	var got []analysis.Diagnostic
	p := &analysis.Pass{
		Fset:   token.NewFileSet(),
		Report: func(d analysis.Diagnostic) { got = append(got, d) },
	}

	tf := AddFile(p, "useFoo.js", []byte(content))

	findings := []run.Finding{
		{
			Rule:    "lifecycle-placement",
			Message: "Lifecycle hook `onMounted` is forbidden after an `await` expression.",
			Start:   38,
			End:     50,
			Pos:     source.Position{Line: 3, Column: 3},
			After:   &source.Position{Line: 2, Column: 3},
		},
	}

	Findings(t.Context(), p, tf, findings)

	if len(got) != 1 {
		t.Fatalf("Got %d diagnostics, want 1", len(got))
	}

	d := got[0]
	if d.Category != "lifecycle-placement" {
		t.Errorf("Got category %q", d.Category)
	}

	if pos := p.Fset.Position(d.Pos); pos.Filename != "useFoo.js" || pos.Line != 3 || pos.Column != 3 {
		t.Errorf("Got position %v, want useFoo.js:3:3", pos)
	}

	if end := p.Fset.Position(d.End); end.Line != 3 || end.Column != 15 {
		t.Errorf("Got end %v, want useFoo.js:3:15", end)
	}

	if len(d.Related) != 1 {
		t.Fatalf("Got %d related, want 1", len(d.Related))
	}

	if pos := p.Fset.Position(d.Related[0].Pos); pos.Line != 2 || pos.Column != 3 {
		t.Errorf("Got related position %v, want useFoo.js:2:3", pos)
	}
}
