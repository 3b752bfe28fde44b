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

package astutil

import (
	"regexp"
	"strings"

	"fillmore-labs.com/composableguard/internal/source"
	"fillmore-labs.com/composableguard/internal/syntax"
)

// composableguard is the name of the linter.
const composableguard = "composableguard"

// CurrentFile holds file information for analysis.
type CurrentFile struct {
	file      *source.File
	generated bool
	noLint    bool             // the whole file is suppressed
	lines     map[int][]string // nolint linters by line
}

// NewCurrentFile creates a new [CurrentFile] from a parsed *[source.File].
func NewCurrentFile(file *source.File) CurrentFile {
	if file == nil || file.Tree == nil {
		return CurrentFile{}
	}

	c := CurrentFile{file: file, lines: make(map[int][]string)}

	t := file.Tree
	first := firstStatement(t)

	for _, comment := range t.Comments() {
		span := t.Span(comment)
		text := t.Text(comment)
		leading := !first.Valid() || span.End <= t.Span(first).Start

		if leading && generatedPattern.MatchString(text) {
			c.generated = true
		}

		linters := NoLintLinters(text)
		if linters == nil {
			continue
		}

		if leading && matchesLinter(linters, "") {
			c.noLint = true
		}

		line := file.Position(span.Start).Line
		c.lines[line] = append(c.lines[line], linters...)
	}

	return c
}

// Valid returns true if the [CurrentFile] was successfully created
// from a parsed file.
func (c CurrentFile) Valid() bool {
	return c.file != nil
}

// File returns the parsed file.
func (c CurrentFile) File() *source.File {
	return c.file
}

// Generated returns true if the file is a generated file.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// NoLintFile returns true if a nolint:composableguard comment precedes the first statement.
func (c CurrentFile) NoLintFile() bool {
	return c.noLint
}

// NoLintComment checks if the line of offset carries a nolint comment for
// this linter or the given rule.
func (c CurrentFile) NoLintComment(offset int, rule string) bool {
	if c.file == nil {
		return false
	}

	linters, ok := c.lines[c.file.Position(offset).Line]

	return ok && matchesLinter(linters, rule)
}

// generatedPattern matches the conventional marker of generated files.
var generatedPattern = regexp.MustCompile(`^// Code generated .* DO NOT EDIT\.$`)

var nolintPattern = regexp.MustCompile(`^(?://|/\*)\s*nolint:([a-zA-Z0-9,_-]+)`)

// NoLintLinters returns the linters listed in a `// nolint:...` or `/* nolint:... */` comment, or nil.
func NoLintLinters(comment string) []string {
	matches := nolintPattern.FindStringSubmatch(comment)
	if matches == nil {
		return nil
	}

	// Parse comma-separated linter list
	linters := make([]string, 0, 1)
	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l != "" {
			linters = append(linters, l)
		}
	}

	return linters
}

// CommentHasNoLint checks if the provided comment contains a `nolint:composableguard` directive.
func CommentHasNoLint(comment string) bool {
	return matchesLinter(NoLintLinters(comment), "")
}

func matchesLinter(linters []string, rule string) bool {
	for _, l := range linters {
		if l == composableguard || l == "all" || (rule != "" && l == rule) {
			return true
		}
	}

	return false
}

// firstStatement returns the first child of the program that is not a comment.
func firstStatement(t *syntax.Tree) syntax.NodeIndex {
	root := t.Root()
	if !root.Valid() {
		return syntax.InvalidNode
	}

	for c := range t.Children(root) {
		if t.Kind(c) != syntax.KindComment {
			return c
		}
	}

	return syntax.InvalidNode
}
