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

package container

import (
	"slices"

	"fillmore-labs.com/composableguard/internal/naming"
	"fillmore-labs.com/composableguard/internal/syntax"
)

// DefaultStoreFactory is the state-store definition function of Pinia.
const DefaultStoreFactory = "defineStore"

// Option configures a [Detector].
type Option func(d *Detector)

// WithScriptSetup sets the range of the file's <script setup> block.
func WithScriptSetup(boundary syntax.Span) Option {
	return func(d *Detector) {
		d.boundary, d.hasBoundary = boundary, true
	}
}

// WithStoreFactories adds names of state-store definition functions.
func WithStoreFactories(names ...string) Option {
	return func(d *Detector) {
		for _, name := range names {
			if name != "" && !slices.Contains(d.storeFactories, name) {
				d.storeFactories = append(d.storeFactories, name)
			}
		}
	}
}

// Detector classifies nodes of a single syntax tree.
type Detector struct {
	tree           *syntax.Tree
	storeFactories []string
	boundary       syntax.Span
	hasBoundary    bool
}

// New creates a [Detector] for the given tree.
func New(tree *syntax.Tree, opts ...Option) *Detector {
	d := &Detector{tree: tree, storeFactories: []string{DefaultStoreFactory}}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// NearestFunction returns n if it is a function, otherwise the nearest function
// enclosing n. The root is returned when there is none.
func (d *Detector) NearestFunction(n syntax.NodeIndex) syntax.NodeIndex {
	t := d.tree
	for {
		if t.Kind(n).IsFunction() {
			return n
		}

		p := t.Parent(n)
		if !p.Valid() {
			return n
		}

		n = p
	}
}

// Site classifies the context a call site is evaluated in.
func (d *Detector) Site(call syntax.NodeIndex) Verdict {
	fn := d.NearestFunction(call)
	if !d.tree.Kind(fn).IsFunction() {
		if d.InScriptSetup(call) {
			return VerdictScriptSetupRoot
		}

		return VerdictNone
	}

	return d.Classify(fn)
}

// InScriptSetup reports whether n lies completely within the <script setup> block.
func (d *Detector) InScriptSetup(n syntax.NodeIndex) bool {
	return d.hasBoundary && d.boundary.Contains(d.tree.Span(n))
}

// Classify determines the verdict for the body of function fn.
func (d *Detector) Classify(fn syntax.NodeIndex) Verdict {
	switch {
	case !d.tree.Kind(fn).IsFunction():
		return VerdictNone

	case d.isComposable(fn):
		return VerdictComposableRoot

	case d.isSetupOption(fn):
		return VerdictSetupOption

	default:
		return d.store(fn)
	}
}

// isComposable matches "function useFoo() {}" and "const useFoo = () => {}".
func (d *Detector) isComposable(fn syntax.NodeIndex) bool {
	t := d.tree
	switch t.Kind(fn) {
	case syntax.KindFunctionDeclaration:
		return naming.IsComposableName(d.identifier(fn, "name"))

	case syntax.KindFunctionExpression, syntax.KindArrowFunction:
		decl := t.Up(fn)
		if !decl.Valid() || t.Kind(decl) != syntax.KindVariableDeclarator ||
			t.Unparen(t.ChildByField(decl, "value")) != fn {
			return false
		}

		return naming.IsComposableName(d.identifier(decl, "name"))

	default:
		return false
	}
}

// isSetupOption matches "{ setup() {} }" and "{ setup: () => {} }".
func (d *Detector) isSetupOption(fn syntax.NodeIndex) bool {
	_, key := d.property(fn)

	return key == "setup"
}

// store classifies functions that are part of a state-store definition. The
// definition call must be reachable from fn without crossing another function.
func (d *Detector) store(fn syntax.NodeIndex) Verdict {
	t := d.tree

	path := []syntax.NodeIndex{fn}
	for p := t.Up(fn); p.Valid(); p = t.Up(p) {
		switch k := t.Kind(p); {
		case k.IsFunction():
			return VerdictNone

		case k == syntax.KindCallExpression && d.isStoreFactory(p):
			return d.storeArgument(fn, path)
		}

		path = append(path, p)
	}

	return VerdictNone
}

// storeArgument classifies fn by its position in the argument list of a store
// definition call. path leads from fn up to the argument list.
func (d *Detector) storeArgument(fn syntax.NodeIndex, path []syntax.NodeIndex) Verdict {
	t := d.tree

	l := len(path)
	if l < 2 || t.Kind(path[l-1]) != syntax.KindArguments {
		return VerdictNone // the function is the callee
	}

	arg := path[l-2]

	switch {
	case arg == fn:
		if d.argumentIndex(path[l-1], arg) == 1 {
			return VerdictStoreFactoryRoot
		}

	case t.Kind(arg) == syntax.KindObject:
		owner, _ := d.property(fn)
		if owner == arg {
			return VerdictStoreFactoryRoot
		}

		if !owner.Valid() {
			break
		}

		if options, key := d.property(owner); options == arg && (key == "actions" || key == "getters") {
			return VerdictStoreActionRoot
		}
	}

	return VerdictNone
}

// argumentIndex returns the position of arg in the argument list args, looking
// through parentheses.
func (d *Detector) argumentIndex(args, arg syntax.NodeIndex) int {
	t := d.tree
	for p := t.Parent(arg); p.Valid() && p != args; p = t.Parent(p) {
		arg = p
	}

	return t.ChildIndex(arg)
}

// property returns the object literal n is a property value of, and the name of
// that property. Methods and "key: value" pairs with identifier keys are
// recognized.
func (d *Detector) property(n syntax.NodeIndex) (syntax.NodeIndex, string) {
	t := d.tree

	var owner syntax.NodeIndex
	var key string
	switch p := t.Up(n); {
	case t.Kind(n) == syntax.KindMethod:
		owner, key = t.Parent(n), d.identifier(n, "name")

	case p.Valid() && t.Kind(p) == syntax.KindPair && t.Unparen(t.ChildByField(p, "value")) == n:
		owner, key = t.Parent(p), d.identifier(p, "key")

	default:
		return syntax.InvalidNode, ""
	}

	if !owner.Valid() || t.Kind(owner) != syntax.KindObject {
		return syntax.InvalidNode, ""
	}

	return owner, key
}

// identifier returns the text of the named field of n if it is a plain identifier.
func (d *Detector) identifier(n syntax.NodeIndex, field string) string {
	t := d.tree

	id := t.ChildByField(n, field)
	if !id.Valid() || t.Kind(id) != syntax.KindIdentifier {
		return ""
	}

	return t.Text(id)
}

func (d *Detector) isStoreFactory(call syntax.NodeIndex) bool {
	name, ok := naming.CallName(d.tree, call)

	return ok && slices.Contains(d.storeFactories, name)
}
