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

// Package testsource provides utilities for parsing frontend source code in tests.
//
// It is designed to simplify testing of the composableguard analysis by handling
// the boilerplate of parsing source fragments and locating nodes in them.
package testsource

import (
	"context"
	"testing"

	"fillmore-labs.com/composableguard/internal/source"
	"fillmore-labs.com/composableguard/internal/syntax"
)

// Parse parses a source fragment as the named file. The extension of filename
// determines the grammar, so "test.vue" parses a single-file component.
func Parse(tb testing.TB, filename, src string) *source.File {
	tb.Helper()

	f, err := source.Parse(context.Background(), filename, []byte(src))
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return f
}

// Call returns the first call expression whose callee is spelled exactly callee.
func Call(tb testing.TB, f *source.File, callee string) syntax.NodeIndex {
	tb.Helper()

	return Find(tb, f, syntax.KindCallExpression, func(n syntax.NodeIndex) bool {
		return f.Tree.Text(f.Tree.ChildByField(n, "function")) == callee
	})
}

// Find returns the first node of the given kind accepted by match.
func Find(tb testing.TB, f *source.File, kind syntax.Kind, match func(syntax.NodeIndex) bool) syntax.NodeIndex {
	tb.Helper()

	for n := range f.Tree.Preorder(kind) {
		if match(n) {
			return n
		}
	}

	tb.Fatalf("Can't find %v", kind)

	return syntax.InvalidNode
}
