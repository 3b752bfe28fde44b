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

// Package assets finds the frontend sources embedded into a Go package.
//
// Patterns of //go:embed directives are resolved the way the go command does,
// restricted to files the source package can parse. node_modules directories
// are never descended into.
package assets

import (
	"fmt"
	"go/ast"
	"io/fs"
	"iter"
	"path"
	"slices"
	"strconv"
	"strings"

	"fillmore-labs.com/composableguard/internal/source"
)

const (
	embedDirective = "//go:embed"
	allPrefix      = "all:"
	nodeModules    = "node_modules"
)

// Directive is a //go:embed comment.
type Directive struct {
	Comment  *ast.Comment
	Patterns []string
}

// Directives yields the //go:embed directives of a Go file.
func Directives(file *ast.File) iter.Seq[Directive] {
	return func(yield func(Directive) bool) {
		for _, group := range file.Comments {
			for _, c := range group.List {
				args, ok := strings.CutPrefix(c.Text, embedDirective)
				if !ok || args == "" || (args[0] != ' ' && args[0] != '\t') {
					continue
				}

				patterns, err := splitPatterns(args)
				if err != nil || len(patterns) == 0 {
					continue // reported by the compiler
				}

				if !yield(Directive{Comment: c, Patterns: patterns}) {
					return
				}
			}
		}
	}
}

// splitPatterns splits the arguments of a directive, honoring Go string quoting.
func splitPatterns(args string) ([]string, error) {
	var patterns []string

	for {
		args = strings.TrimLeft(args, " \t")
		if args == "" {
			return patterns, nil
		}

		switch args[0] {
		case '"', '`':
			prefix, err := strconv.QuotedPrefix(args)
			if err != nil {
				return nil, fmt.Errorf("invalid quoted pattern: %w", err)
			}

			p, err := strconv.Unquote(prefix)
			if err != nil {
				return nil, fmt.Errorf("invalid quoted pattern: %w", err)
			}

			patterns = append(patterns, p)
			args = args[len(prefix):]

		default:
			i := strings.IndexAny(args, " \t")
			if i < 0 {
				i = len(args)
			}

			patterns = append(patterns, args[:i])
			args = args[i:]
		}
	}
}

// Resolve returns the slash-separated names of all parsable files in fsys
// matched by the patterns, sorted and without duplicates.
func Resolve(fsys fs.FS, patterns []string) ([]string, error) {
	var files []string

	for _, pattern := range patterns {
		pattern, all := strings.CutPrefix(pattern, allPrefix)

		matches, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if skipPath(match) {
				continue
			}

			info, err := fs.Stat(fsys, match)
			if err != nil {
				return nil, fmt.Errorf("can't stat %q: %w", match, err)
			}

			if !info.IsDir() {
				if source.Supported(match) {
					files = append(files, match)
				}

				continue
			}

			if err := fs.WalkDir(fsys, match, func(name string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}

				if name == match {
					return nil
				}

				base := path.Base(name)
				if d.IsDir() {
					if base == nodeModules || (!all && hidden(base)) {
						return fs.SkipDir
					}

					return nil
				}

				if (all || !hidden(base)) && d.Type().IsRegular() && source.Supported(name) {
					files = append(files, name)
				}

				return nil
			}); err != nil {
				return nil, fmt.Errorf("can't walk %q: %w", match, err)
			}
		}
	}

	slices.Sort(files)

	return slices.Compact(files), nil
}

// hidden reports whether a directory entry is excluded from embedded directories by default.
func hidden(base string) bool {
	return strings.HasPrefix(base, ".") || strings.HasPrefix(base, "_")
}

// skipPath reports whether a matched name lies inside node_modules.
func skipPath(name string) bool {
	return slices.Contains(strings.Split(name, "/"), nodeModules)
}
