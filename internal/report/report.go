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

// Package report emits findings as go/analysis diagnostics.
package report

import (
	"context"
	"go/token"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/composableguard/internal/run"
)

// Findings reports the findings of an embedded file to the pass.
//
// tf must be a file of the pass' file set with the content the findings
// were computed on.
func Findings(ctx context.Context, p *analysis.Pass, tf *token.File, findings []run.Finding) {
	defer trace.StartRegion(ctx, "Report").End()

	for _, f := range findings {
		diagnostic := analysis.Diagnostic{
			Pos:      tf.Pos(f.Start),
			End:      tf.Pos(f.End),
			Category: f.Rule,
			Message:  f.Message,
		}

		if f.After != nil {
			diagnostic.Related = []analysis.RelatedInformation{{
				Pos:     tf.LineStart(f.After.Line) + token.Pos(f.After.Column-1),
				Message: "After this await expression",
			}}
		}

		p.Report(diagnostic)
	}
}

// AddFile registers an embedded file with the pass' file set, so that
// positions in it can be reported.
func AddFile(p *analysis.Pass, filename string, content []byte) *token.File {
	tf := p.Fset.AddFile(filename, -1, len(content))
	tf.SetLinesForContent(content)

	return tf
}
