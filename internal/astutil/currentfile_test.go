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

package astutil_test

import (
	"testing"

	. "fillmore-labs.com/composableguard/internal/astutil"
	"fillmore-labs.com/composableguard/internal/testsource"
)

func TestCommentHasNoLint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		comment string
		want    bool
	}{
		{"// nolint:composableguard", true},
		{"//nolint:all", true},
		{"/* nolint:gosec,ComposableGuard */", true},
		{"// nolint:composable-placement", false},
		{"// nolint", false},
		{"// eslint-disable-line", false},
		{"// see nolint:composableguard", false},
	}

	for _, tt := range tests {
		if got := CommentHasNoLint(tt.comment); got != tt.want {
			t.Errorf("CommentHasNoLint(%q) = %t, want %t", tt.comment, got, tt.want)
		}
	}
}

func TestCurrentFile(t *testing.T) {
	t.Parallel()

	const src = `// Code generated by api-gen. DO NOT EDIT.

export function bar() {
	useFoo() // nolint:composable-placement
	onMounted() /* nolint:composableguard */
	useBaz()
}
`

	f := testsource.Parse(t, "gen.js", src)
	c := NewCurrentFile(f)

	if !c.Valid() || c.File() != f {
		t.Fatal("Invalid file")
	}

	if !c.Generated() {
		t.Error("Expected generated file")
	}

	if c.NoLintFile() {
		t.Error("Unexpected file-level nolint")
	}

	useFoo := f.Tree.Span(testsource.Call(t, f, "useFoo")).Start
	onMounted := f.Tree.Span(testsource.Call(t, f, "onMounted")).Start
	useBaz := f.Tree.Span(testsource.Call(t, f, "useBaz")).Start

	if !c.NoLintComment(useFoo, "composable-placement") {
		t.Error("Expected rule suppression for useFoo")
	}

	if c.NoLintComment(useFoo, "lifecycle-placement") {
		t.Error("Unexpected suppression of other rule")
	}

	if !c.NoLintComment(onMounted, "lifecycle-placement") {
		t.Error("Expected linter suppression for onMounted")
	}

	if c.NoLintComment(useBaz, "composable-placement") {
		t.Error("Unexpected suppression for useBaz")
	}
}

func TestNoLintFile(t *testing.T) {
	t.Parallel()

	const src = `
<script setup>
// nolint:composableguard
import { useFoo } from './foo'
function bar() { useFoo() }
// Code generated by api-gen. DO NOT EDIT.
</script>
`

	c := NewCurrentFile(testsource.Parse(t, "a.vue", src))

	if !c.NoLintFile() {
		t.Error("Expected file-level nolint")
	}

	if c.Generated() {
		t.Error("Trailing marker must not mark the file as generated")
	}

	if NewCurrentFile(nil).Valid() {
		t.Error("Expected invalid file")
	}
}
