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

// Package run executes the composableguard pipeline over parsed files.
package run

import (
	"context"
	"errors"
	"fmt"
	"runtime/trace"

	"fillmore-labs.com/composableguard/internal/astutil"
	"fillmore-labs.com/composableguard/internal/config"
	"fillmore-labs.com/composableguard/internal/container"
	"fillmore-labs.com/composableguard/internal/placement"
	"fillmore-labs.com/composableguard/internal/source"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Finding is a misplaced call, detached from the syntax tree it was found in.
type Finding struct {
	Rule    string           `json:"rule" msgpack:"rule"`
	Kind    string           `json:"kind" msgpack:"kind"`
	Name    string           `json:"name" msgpack:"name"`
	Message string           `json:"message" msgpack:"message"`
	Start   int              `json:"start" msgpack:"start"`
	End     int              `json:"end" msgpack:"end"`
	Pos     source.Position  `json:"pos" msgpack:"pos"`
	After   *source.Position `json:"after,omitempty" msgpack:"after,omitempty"` // position of the preceding await
}

// SkipReason explains why a file was not checked.
type SkipReason string

// Reasons for skipping a file.
const (
	NotSkipped    SkipReason = ""
	SkipGenerated SkipReason = "generated"
	SkipNoLint    SkipReason = "nolint"
)

// Check validates a parsed file with all enabled rules.
//
// Generated files are skipped unless enabled, as are files with a leading
// nolint comment. Findings on lines with a matching nolint comment are dropped.
func (o *Options) Check(ctx context.Context, f *source.File) ([]Finding, SkipReason, error) {
	ctx, task := trace.NewTask(ctx, "ComposableGuard")
	defer task.End()

	trace.Log(ctx, "file", f.Path)

	currentFile := astutil.NewCurrentFile(f)
	if !currentFile.Valid() {
		return nil, NotSkipped, fmt.Errorf("%s: file without syntax tree", f.Path)
	}

	// Skip generated files
	if currentFile.Generated() && !o.Behavior.Enabled(config.IncludeGenerated) {
		return nil, SkipGenerated, nil
	}

	noLint := !o.Behavior.Enabled(config.IgnoreNoLint)

	// Skip files with nolint comment
	if noLint && currentFile.NoLintFile() {
		return nil, SkipNoLint, nil
	}

	opts := o.detectorOptions()
	if boundary, ok := f.ScriptSetup(); ok {
		opts = append(opts, container.WithScriptSetup(boundary))
	}

	detector := container.New(f.Tree, opts...)

	var findings []Finding

	region := trace.StartRegion(ctx, "placement")
	err := placement.Check(f.Tree, detector, o.PlacementRules(), func(d placement.Diagnostic) {
		if noLint && currentFile.NoLintComment(d.Span.Start, d.Rule) {
			return
		}

		findings = append(findings, newFinding(f, d))
	})
	region.End()

	if err != nil {
		return nil, NotSkipped, fmt.Errorf("%s: %w", f.Path, err)
	}

	return findings, NotSkipped, nil
}

// CheckSource parses and validates the content of the named file.
func (o *Options) CheckSource(ctx context.Context, path string, content []byte) ([]Finding, SkipReason, error) {
	region := trace.StartRegion(ctx, "parse")
	f, err := source.Parse(ctx, path, content)
	region.End()

	if err != nil {
		return nil, NotSkipped, err
	}

	return o.Check(ctx, f)
}

func newFinding(f *source.File, d placement.Diagnostic) Finding {
	finding := Finding{
		Rule:    d.Rule,
		Kind:    d.Kind.String(),
		Name:    d.Name,
		Message: d.Message,
		Start:   d.Span.Start,
		End:     d.Span.End,
		Pos:     f.Position(d.Span.Start),
	}

	if d.Suspension.Valid() {
		after := f.Position(f.Tree.Span(d.Suspension).Start)
		finding.After = &after
	}

	return finding
}
