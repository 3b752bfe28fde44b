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

package main

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"fillmore-labs.com/composableguard/internal/source"
)

// collectFiles expands directories into the supported source files below them.
func collectFiles(args []string, exclude exclusion) ([]string, error) {
	var paths []string

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("can't check %q: %w", arg, err)
		}

		if !info.IsDir() {
			if !source.Supported(arg) {
				return nil, fmt.Errorf("%s: %w", arg, source.ErrUnsupported)
			}

			paths = append(paths, filepath.Clean(arg))

			continue
		}

		err = filepath.WalkDir(arg, func(name string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if exclude.match(name) {
				if d.IsDir() {
					return filepath.SkipDir
				}

				return nil
			}

			if d.IsDir() {
				if name != arg && skipDir(d.Name()) {
					return filepath.SkipDir
				}

				return nil
			}

			if d.Type().IsRegular() && source.Supported(name) {
				paths = append(paths, name)
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("can't walk %q: %w", arg, err)
		}
	}

	slices.Sort(paths)

	return slices.Compact(paths), nil
}

func skipDir(name string) bool {
	return name == "node_modules" || strings.HasPrefix(name, ".")
}

// exclusion holds glob patterns matched against slash separated paths relative to root,
// or against the base name for patterns without a slash.
type exclusion struct {
	root     string
	patterns []string
}

func (e exclusion) match(name string) bool {
	if len(e.patterns) == 0 {
		return false
	}

	rel := name
	if abs, err := filepath.Abs(name); err == nil {
		if r, err := filepath.Rel(e.root, abs); err == nil {
			rel = r
		}
	}

	rel = filepath.ToSlash(rel)
	base := path.Base(rel)

	for _, pattern := range e.patterns {
		pattern = strings.TrimSuffix(pattern, "/")

		target := rel
		if !strings.Contains(pattern, "/") {
			target = base
		}

		if ok, err := path.Match(pattern, target); err == nil && ok {
			return true
		}
	}

	return false
}
