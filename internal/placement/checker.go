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

package placement

import (
	"fillmore-labs.com/composableguard/internal/container"
	"fillmore-labs.com/composableguard/internal/naming"
	"fillmore-labs.com/composableguard/internal/scope"
	"fillmore-labs.com/composableguard/internal/syntax"
)

// Diagnostic is a misplaced call.
type Diagnostic struct {
	// Rule is the name of the rule reporting the call.
	Rule string

	// Kind classifies the finding.
	Kind Kind

	// Node is the call expression.
	Node syntax.NodeIndex

	// Span is the source range of the call expression.
	Span syntax.Span

	// Name is the resolved callee name.
	Name string

	// Suspension is the await expression preceding the call for
	// [KindAfterSuspension], [syntax.InvalidNode] otherwise.
	Suspension syntax.NodeIndex

	// Message is the human-readable description.
	Message string
}

// Reporter receives the findings of a [Checker].
type Reporter func(d Diagnostic)

// Checker validates the call sites of a single rule during one walk of a tree.
//
// Checker implements [syntax.Visitor].
type Checker struct {
	rule     *Rule
	tree     *syntax.Tree
	detector *container.Detector
	stack    *scope.Stack
	report   Reporter
}

var _ syntax.Visitor = (*Checker)(nil)

// NewChecker creates a [Checker] for a walk over the tree the detector classifies.
func NewChecker(rule *Rule, tree *syntax.Tree, detector *container.Detector, report Reporter) *Checker {
	return &Checker{
		rule:     rule,
		tree:     tree,
		detector: detector,
		stack:    scope.NewStack(tree),
		report:   report,
	}
}

// Enter implements [syntax.Visitor].
func (c *Checker) Enter(n syntax.NodeIndex) error {
	switch k := c.tree.Kind(n); {
	case k.IsFunction():
		c.stack.Enter(n)

	case k == syntax.KindAwaitExpression:
		c.stack.Suspend(n)

	case k == syntax.KindCallExpression:
		c.checkCall(n)
	}

	return nil
}

// Exit implements [syntax.Visitor].
func (c *Checker) Exit(n syntax.NodeIndex) error {
	if c.tree.Kind(n).IsFunction() {
		return c.stack.Exit(n)
	}

	return nil
}

func (c *Checker) checkCall(call syntax.NodeIndex) {
	name, ok := naming.CallName(c.tree, call)
	if !ok || !c.rule.Match(name) {
		return
	}

	if suspension := c.stack.AfterFirstSuspension(call); suspension.Valid() {
		c.emit(KindAfterSuspension, call, name, suspension)
	}

	if !c.rule.Legal(c.detector.Site(call)) {
		c.emit(KindInvalidContext, call, name, syntax.InvalidNode)
	}
}

func (c *Checker) emit(k Kind, call syntax.NodeIndex, name string, suspension syntax.NodeIndex) {
	c.report(Diagnostic{
		Rule:       c.rule.name,
		Kind:       k,
		Node:       call,
		Span:       c.tree.Span(call),
		Name:       name,
		Suspension: suspension,
		Message:    c.rule.Message(k, name),
	})
}

// Check validates tree against all rules in a single walk. Findings are
// reported in source order of the calls, and for each call in rule order.
func Check(tree *syntax.Tree, detector *container.Detector, rules []*Rule, report Reporter) error {
	visitors := make([]syntax.Visitor, 0, len(rules))
	for _, rule := range rules {
		visitors = append(visitors, NewChecker(rule, tree, detector, report))
	}

	return tree.Walk(visitors...)
}
