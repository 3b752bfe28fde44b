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

package syntax

import (
	"iter"
	"slices"
)

// NodeIndex addresses a node of a [Tree].
//
// Indices are assigned in pre-order, so the descendants of a node occupy
// the contiguous index range following it.
type NodeIndex int32

// InvalidNode is the index of no node.
const InvalidNode NodeIndex = -1

// Valid reports whether n refers to a node.
func (n NodeIndex) Valid() bool {
	return n != InvalidNode
}

// Span is a half-open byte range [Start, End) of the source.
type Span struct {
	Start, End int
}

// Contains reports whether o lies completely within s.
func (s Span) Contains(o Span) bool {
	return s.Start <= o.Start && o.End <= s.End
}

// Len returns the number of bytes covered by s.
func (s Span) Len() int {
	return s.End - s.Start
}

type node struct {
	kind   Kind
	typ    string
	field  string
	span   Span
	parent NodeIndex
	next   NodeIndex // one past the last descendant
}

// Tree is an immutable syntax tree stored in a node arena.
//
// Parent links are indices, never owning references. The root has index 0.
type Tree struct {
	src      []byte
	nodes    []node
	comments []NodeIndex
	errors   []NodeIndex
}

// Root returns the index of the root node.
func (t *Tree) Root() NodeIndex {
	if len(t.nodes) == 0 {
		return InvalidNode
	}

	return 0
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Kind returns the normalized kind of n.
func (t *Tree) Kind(n NodeIndex) Kind {
	return t.nodes[n].kind
}

// Type returns the grammar node type of n.
func (t *Tree) Type(n NodeIndex) string {
	return t.nodes[n].typ
}

// Span returns the byte range of n.
func (t *Tree) Span(n NodeIndex) Span {
	return t.nodes[n].span
}

// Text returns the source text of n.
func (t *Tree) Text(n NodeIndex) string {
	s := t.nodes[n].span

	return string(t.src[s.Start:s.End])
}

// Parent returns the parent of n, or [InvalidNode] for the root.
func (t *Tree) Parent(n NodeIndex) NodeIndex {
	return t.nodes[n].parent
}

// Up returns the nearest ancestor of n that is not a parenthesized expression.
func (t *Tree) Up(n NodeIndex) NodeIndex {
	p := t.nodes[n].parent
	for p.Valid() && t.nodes[p].kind == KindParenthesized {
		p = t.nodes[p].parent
	}

	return p
}

// Unparen returns the expression inside any number of parentheses around n.
func (t *Tree) Unparen(n NodeIndex) NodeIndex {
	for n.Valid() && t.nodes[n].kind == KindParenthesized {
		inner := InvalidNode
		for c := range t.Children(n) {
			if t.nodes[c].kind != KindComment {
				inner = c

				break
			}
		}

		n = inner
	}

	return n
}

// Children yields the direct children of n in source order.
func (t *Tree) Children(n NodeIndex) iter.Seq[NodeIndex] {
	return func(yield func(NodeIndex) bool) {
		end := t.nodes[n].next
		for c := n + 1; c < end; c = t.nodes[c].next {
			if !yield(c) {
				return
			}
		}
	}
}

// ChildByField returns the first child of n occupying the named field.
func (t *Tree) ChildByField(n NodeIndex, field string) NodeIndex {
	for c := range t.Children(n) {
		if t.nodes[c].field == field {
			return c
		}
	}

	return InvalidNode
}

// ChildIndex returns the position of c among the children of its parent
// that are not comments, or -1 for the root.
func (t *Tree) ChildIndex(c NodeIndex) int {
	p := t.nodes[c].parent
	if !p.Valid() {
		return -1
	}

	i := 0
	for s := range t.Children(p) {
		if s == c {
			return i
		}

		if t.nodes[s].kind != KindComment {
			i++
		}
	}

	return -1
}

// Ancestors yields the strict ancestors of n, innermost first.
func (t *Tree) Ancestors(n NodeIndex) iter.Seq[NodeIndex] {
	return func(yield func(NodeIndex) bool) {
		for p := t.nodes[n].parent; p.Valid(); p = t.nodes[p].parent {
			if !yield(p) {
				return
			}
		}
	}
}

// Comments returns all comment nodes in source order.
func (t *Tree) Comments() []NodeIndex {
	return t.comments
}

// Errors returns the nodes the grammar could not parse, in source order.
func (t *Tree) Errors() []NodeIndex {
	return t.errors
}

// Preorder yields all nodes of the given kinds in pre-order. No kinds yields every node.
func (t *Tree) Preorder(kinds ...Kind) iter.Seq[NodeIndex] {
	return func(yield func(NodeIndex) bool) {
		for i := range t.nodes {
			n := NodeIndex(i)
			if len(kinds) > 0 && !slices.Contains(kinds, t.nodes[i].kind) {
				continue
			}

			if !yield(n) {
				return
			}
		}
	}
}
