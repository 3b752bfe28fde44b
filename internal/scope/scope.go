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

// Package scope tracks suspension points of the currently open function scopes.
package scope

import (
	"errors"
	"fmt"

	"fillmore-labs.com/composableguard/internal/syntax"
)

// ErrMismatch is returned when scope exits are not paired with their entries.
var ErrMismatch = errors.New("scope stack out of sync")

// Frame is an open function scope.
type Frame struct {
	// Node is the function.
	Node syntax.NodeIndex

	// FirstSuspension is the first await expression directly inside the function,
	// or [syntax.InvalidNode].
	FirstSuspension syntax.NodeIndex
}

// Stack holds the frames of the open function scopes, innermost last.
//
// A Stack belongs to a single walk of a single tree.
type Stack struct {
	tree   *syntax.Tree
	frames []Frame
}

// NewStack creates an empty [Stack] for a walk of tree.
func NewStack(tree *syntax.Tree) *Stack {
	return &Stack{tree: tree}
}

// Enter opens the scope of function fn.
func (s *Stack) Enter(fn syntax.NodeIndex) {
	s.frames = append(s.frames, Frame{Node: fn, FirstSuspension: syntax.InvalidNode})
}

// Exit closes the scope of function fn, which must be the innermost open scope.
func (s *Stack) Exit(fn syntax.NodeIndex) error {
	top, ok := s.Top()
	if !ok {
		return fmt.Errorf("%w: exit of function at offset %d without open scope", ErrMismatch, s.tree.Span(fn).Start)
	}

	if top.Node != fn {
		return fmt.Errorf("%w: exit of function at offset %d, innermost scope starts at offset %d",
			ErrMismatch, s.tree.Span(fn).Start, s.tree.Span(top.Node).Start)
	}

	s.frames = s.frames[:len(s.frames)-1]

	return nil
}

// Suspend records the await expression n on the innermost scope, unless an
// earlier one is already recorded. Suspensions outside of any function are
// ignored.
func (s *Stack) Suspend(n syntax.NodeIndex) {
	if len(s.frames) == 0 {
		return
	}

	if top := &s.frames[len(s.frames)-1]; !top.FirstSuspension.Valid() {
		top.FirstSuspension = n
	}
}

// Depth returns the number of open scopes.
func (s *Stack) Depth() int {
	return len(s.frames)
}

// Top returns the innermost open scope.
func (s *Stack) Top() (Frame, bool) {
	if len(s.frames) == 0 {
		return Frame{Node: syntax.InvalidNode, FirstSuspension: syntax.InvalidNode}, false
	}

	return s.frames[len(s.frames)-1], true
}

// AfterFirstSuspension returns the suspension preceding call in the innermost
// scope, or [syntax.InvalidNode]. A suspension awaiting the call itself, as in
// "await useFoo()", does not count.
func (s *Stack) AfterFirstSuspension(call syntax.NodeIndex) syntax.NodeIndex {
	top, ok := s.Top()
	if !ok || !top.FirstSuspension.Valid() || top.FirstSuspension == s.tree.Up(call) {
		return syntax.InvalidNode
	}

	return top.FirstSuspension
}
