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
	"errors"
	"fmt"

	"fortio.org/safecast"
	sitter "github.com/smacker/go-tree-sitter"
)

// ErrTooLarge is returned when a tree has more nodes than a [NodeIndex] can address.
var ErrTooLarge = errors.New("syntax tree too large")

// Build converts a tree-sitter syntax tree into a [Tree].
//
// Only named nodes are kept; punctuation and keywords are dropped. The field name
// of every node in its parent is recorded, so that field lookups work without
// the grammar.
func Build(root *sitter.Node, src []byte) (*Tree, error) {
	b := builder{tree: &Tree{src: src}}
	if root == nil {
		return b.tree, nil
	}

	c := sitter.NewTreeCursor(root)
	defer c.Close()

	if err := b.visit(c, InvalidNode); err != nil {
		return nil, err
	}

	return b.tree, nil
}

type builder struct {
	tree *Tree
}

func (b *builder) visit(c *sitter.TreeCursor, parent NodeIndex) error {
	n := c.CurrentNode()

	idx := parent
	if n.IsNamed() || !parent.Valid() {
		var err error
		if idx, err = b.add(n, c.CurrentFieldName(), parent); err != nil {
			return err
		}
	}

	if c.GoToFirstChild() {
		for {
			if err := b.visit(c, idx); err != nil {
				return err
			}

			if !c.GoToNextSibling() {
				break
			}
		}

		c.GoToParent()
	}

	if idx != parent {
		b.tree.nodes[idx].next = NodeIndex(len(b.tree.nodes)) // bounded by add
	}

	return nil
}

func (b *builder) add(n *sitter.Node, field string, parent NodeIndex) (NodeIndex, error) {
	i, err := safecast.Conv[int32](len(b.tree.nodes))
	if err != nil {
		return InvalidNode, fmt.Errorf("%w: %w", ErrTooLarge, err)
	}

	start, err := safecast.Conv[int](n.StartByte())
	if err != nil {
		return InvalidNode, fmt.Errorf("%w: %w", ErrTooLarge, err)
	}

	end, err := safecast.Conv[int](n.EndByte())
	if err != nil {
		return InvalidNode, fmt.Errorf("%w: %w", ErrTooLarge, err)
	}

	typ := n.Type()
	kind := KindOf(typ)
	idx := NodeIndex(i)

	b.tree.nodes = append(b.tree.nodes, node{
		kind:   kind,
		typ:    typ,
		field:  field,
		span:   Span{Start: start, End: end},
		parent: parent,
		next:   idx + 1,
	})

	switch {
	case kind == KindComment:
		b.tree.comments = append(b.tree.comments, idx)

	case kind == KindError, n.IsMissing():
		b.tree.errors = append(b.tree.errors, idx)
	}

	return idx, nil
}
