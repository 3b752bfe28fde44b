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

package source_test

import (
	"errors"
	"strings"
	"testing"

	. "fillmore-labs.com/composableguard/internal/source"
	"fillmore-labs.com/composableguard/internal/syntax"
)

const component = `<template>
  <div @click="count++">{{ count }}</div>
</template>

<script>
export default { name: 'Counter' }
</script>

<script setup lang="ts">
const count: number = useCounter()
</script>

<style scoped>
div { color: red; }
</style>
`

func TestParseComponent(t *testing.T) {
	t.Parallel()

	f, err := Parse(t.Context(), "Counter.vue", []byte(component))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if got, want := f.Language, TypeScript; got != want {
		t.Errorf("Language = %v, want %v", got, want)
	}

	setup, ok := f.ScriptSetup()
	if !ok {
		t.Fatal("No script setup boundary found")
	}

	if got, want := setup.Start, strings.Index(component, "<script setup"); got != want {
		t.Errorf("Boundary start = %d, want %d", got, want)
	}

	if got, want := setup.End, strings.LastIndex(component, "</script>")+len("</script>"); got != want {
		t.Errorf("Boundary end = %d, want %d", got, want)
	}

	var names []string
	for n := range f.Tree.Preorder(syntax.KindCallExpression) {
		names = append(names, f.Tree.Text(f.Tree.ChildByField(n, "function")))
	}

	if len(names) != 1 || names[0] != "useCounter" {
		t.Fatalf("Calls = %q, want [useCounter]", names)
	}

	for n := range f.Tree.Preorder(syntax.KindCallExpression) {
		if span := f.Tree.Span(n); !setup.Contains(span) {
			t.Errorf("Call %v outside of script setup %v", span, setup)
		}

		pos := f.Position(f.Tree.Span(n).Start)
		if got, want := pos, (Position{Line: 10, Column: 23}); got != want {
			t.Errorf("Position = %v, want %v", got, want)
		}

		if got, want := f.Line(pos.Line), "const count: number = useCounter()"; got != want {
			t.Errorf("Line = %q, want %q", got, want)
		}
	}
}

func TestParsePlainScript(t *testing.T) {
	t.Parallel()

	f, err := Parse(t.Context(), "counter.js", []byte("export function useBar() {\n  useFoo()\n}\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if _, ok := f.ScriptSetup(); ok {
		t.Error("Unexpected script setup boundary")
	}

	if got, want := f.Lines(), 4; got != want {
		t.Errorf("Lines = %d, want %d", got, want)
	}

	if got, want := f.Position(len("export function useBar() {\n  ")), (Position{Line: 2, Column: 3}); got != want {
		t.Errorf("Position = %v, want %v", got, want)
	}
}

func TestParseAdjacentScripts(t *testing.T) {
	t.Parallel()

	const component = "<script>export default {}</script><script setup>useFoo()</script>"

	f, err := Parse(t.Context(), "a.vue", []byte(component))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	span, ok := f.ScriptSetup()
	if !ok {
		t.Fatal("Missing script setup boundary")
	}

	if start := strings.Index(component, "<script setup>"); span.Start != start || span.End != len(component) {
		t.Errorf("Got boundary %v, want [%d, %d)", span, start, len(component))
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	if _, err := Parse(t.Context(), "style.css", []byte("a {}")); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Parse(style.css) = %v, want %v", err, ErrUnsupported)
	}

	_, err := Parse(t.Context(), "broken.js", []byte("function useBar( {\n"))

	var serr *SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("Parse(broken.js) = %v, want *SyntaxError", err)
	}

	if serr.Path != "broken.js" || serr.Pos.Line < 1 {
		t.Errorf("Got %v", serr)
	}
}

func TestSupported(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"a.vue", "b.JS", "c.tsx", "d.mjs"} {
		if !Supported(path) {
			t.Errorf("Supported(%q) = false, want true", path)
		}
	}

	for _, path := range []string{"a.go", "b.css", "Makefile"} {
		if Supported(path) {
			t.Errorf("Supported(%q) = true, want false", path)
		}
	}

	if got := Extensions(); len(got) != 9 {
		t.Errorf("Extensions() = %q, want 9 extensions", got)
	}
}
