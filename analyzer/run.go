// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package analyzer

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"os"
	"path/filepath"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/composableguard/internal/assets"
	"fillmore-labs.com/composableguard/internal/astutil"
	"fillmore-labs.com/composableguard/internal/report"
	"fillmore-labs.com/composableguard/internal/run"
	"fillmore-labs.com/composableguard/internal/scope"
	"fillmore-labs.com/composableguard/internal/source"
)

// run executes the composableguard analyzer's pipeline on the frontend
// sources embedded into the package.
func (r *runOptions) run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("composableguard: %s %w", inspect.Analyzer.Name, run.ErrResultMissing)
	}

	if r.Rules.Empty() {
		return nil, nil
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "ComposableGuard")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	// Embedded files can be named by multiple directives
	seen := make(map[string]struct{})

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		tf := p.Fset.File(file.FileStart)
		if tf == nil {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		dir := filepath.Dir(tf.Name())

		for d := range assets.Directives(file) {
			names, err := assets.Resolve(os.DirFS(dir), d.Patterns)
			if err != nil {
				p.Report(analysis.Diagnostic{
					Pos:     d.Comment.Pos(),
					End:     d.Comment.End(),
					Message: fmt.Sprintf("Can't resolve embedded files: %v", err),
				})

				continue
			}

			for _, name := range names {
				path := filepath.Join(dir, filepath.FromSlash(name))
				if _, ok := seen[path]; ok {
					continue
				}

				seen[path] = struct{}{}

				r.checkFile(ctx, p, d, path)
			}
		}
	}

	return nil, nil
}

// checkFile reports the findings of a single embedded file.
func (r *runOptions) checkFile(ctx context.Context, p *analysis.Pass, d assets.Directive, path string) {
	content, err := os.ReadFile(path)
	if err != nil {
		p.Report(analysis.Diagnostic{
			Pos:     d.Comment.Pos(),
			End:     d.Comment.End(),
			Message: fmt.Sprintf("Can't read embedded file: %v", err),
		})

		return
	}

	tf := report.AddFile(p, path, content)

	findings, _, err := r.CheckSource(ctx, path, content)

	var syntaxErr *source.SyntaxError

	switch {
	case err == nil:
		report.Findings(ctx, p, tf, findings)

	case errors.As(err, &syntaxErr):
		pos := tf.Pos(syntaxErr.Offset)
		p.Report(analysis.Diagnostic{Pos: pos, End: pos, Category: "syntax", Message: "Can't parse embedded file: syntax error"})

	case errors.Is(err, scope.ErrMismatch):
		astutil.InternalError(p, d.Comment, "%v", err)

	default:
		p.Report(analysis.Diagnostic{
			Pos:     d.Comment.Pos(),
			End:     d.Comment.End(),
			Message: fmt.Sprintf("Can't check embedded file: %v", err),
		})
	}
}
