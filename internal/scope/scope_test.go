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

package scope_test

import (
	"errors"
	"testing"

	. "fillmore-labs.com/composableguard/internal/scope"
	"fillmore-labs.com/composableguard/internal/syntax"
	"fillmore-labs.com/composableguard/internal/testsource"
)

func TestStack(t *testing.T) {
	t.Parallel()

	const src = `async function useBar() {
	await useFoo()
	await fetch()
	onMounted()
	const f = async () => { await (useBaz()) }
}`

	f := testsource.Parse(t, "a.js", src)
	tree := f.Tree

	outer := testsource.Find(t, f, syntax.KindFunctionDeclaration, func(syntax.NodeIndex) bool { return true })
	inner := testsource.Find(t, f, syntax.KindArrowFunction, func(syntax.NodeIndex) bool { return true })

	var awaits []syntax.NodeIndex
	for n := range tree.Preorder(syntax.KindAwaitExpression) {
		awaits = append(awaits, n)
	}

	if len(awaits) != 3 {
		t.Fatalf("Expected 3 await expressions, got %d", len(awaits))
	}

	useFoo, onMounted, useBaz := testsource.Call(t, f, "useFoo"), testsource.Call(t, f, "onMounted"), testsource.Call(t, f, "useBaz")

	s := NewStack(tree)

	s.Suspend(awaits[0]) // outside of any function
	if s.Depth() != 0 {
		t.Fatalf("Expected empty stack, got depth %d", s.Depth())
	}

	s.Enter(outer)
	s.Suspend(awaits[0])

	if got := s.AfterFirstSuspension(useFoo); got.Valid() {
		t.Errorf("Call awaited by the first suspension is reported after %d", got)
	}

	s.Suspend(awaits[1])

	if top, _ := s.Top(); top.FirstSuspension != awaits[0] {
		t.Errorf("First suspension is %d, want %d", top.FirstSuspension, awaits[0])
	}

	if got := s.AfterFirstSuspension(onMounted); got != awaits[0] {
		t.Errorf("AfterFirstSuspension(onMounted) = %d, want %d", got, awaits[0])
	}

	s.Enter(inner)
	if s.Depth() != 2 {
		t.Errorf("Expected depth 2, got %d", s.Depth())
	}

	if got := s.AfterFirstSuspension(onMounted); got.Valid() {
		t.Errorf("Fresh scope reports suspension %d", got)
	}

	s.Suspend(awaits[2])

	if got := s.AfterFirstSuspension(useBaz); got.Valid() {
		t.Errorf("Parenthesized awaited call is reported after %d", got)
	}

	if err := s.Exit(outer); !errors.Is(err, ErrMismatch) {
		t.Errorf("Expected %v, got %v", ErrMismatch, err)
	}

	if err := s.Exit(inner); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	if err := s.Exit(outer); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	if err := s.Exit(outer); !errors.Is(err, ErrMismatch) {
		t.Errorf("Expected %v on empty stack, got %v", ErrMismatch, err)
	}

	if _, ok := s.Top(); ok {
		t.Error("Expected empty stack")
	}
}
