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
	"fmt"
	"log/slog"
	"slices"

	"fillmore-labs.com/composableguard/internal/container"
	"fillmore-labs.com/composableguard/internal/naming"
)

// Rule names.
const (
	ComposablePlacementName = "composable-placement"
	LifecyclePlacementName  = "lifecycle-placement"
)

// Rule describes which calls a [Checker] validates and how findings read.
type Rule struct {
	name  string
	match func(name string) bool
	legal []container.Verdict

	invalidContext, afterSuspension string // message formats
}

// ComposablePlacement returns the rule for calls of composable-named functions.
// State-store definitions are legal root contexts for composables.
func ComposablePlacement() *Rule {
	return &Rule{
		name:  ComposablePlacementName,
		match: naming.IsComposableName,
		legal: []container.Verdict{
			container.VerdictComposableRoot,
			container.VerdictSetupOption,
			container.VerdictScriptSetupRoot,
			container.VerdictStoreFactoryRoot,
			container.VerdictStoreActionRoot,
		},
		invalidContext:  "`%s` is likely a composable and should be called in root context of setup() or another composable.",
		afterSuspension: "`%s` is likely a composable and is forbidden after an `await` expression.",
	}
}

// LifecyclePlacement returns the rule for calls of the given lifecycle hooks.
func LifecyclePlacement(hooks naming.Hooks) *Rule {
	return &Rule{
		name:  LifecyclePlacementName,
		match: hooks.Contains,
		legal: []container.Verdict{
			container.VerdictComposableRoot,
			container.VerdictSetupOption,
			container.VerdictScriptSetupRoot,
		},
		invalidContext:  "Lifecycle hook `%s` should be called in root context of setup() or another composable.",
		afterSuspension: "Lifecycle hook `%s` is forbidden after an `await` expression.",
	}
}

// Name returns the rule name.
func (r *Rule) Name() string {
	return r.name
}

// Match reports whether calls of name are validated by this rule.
func (r *Rule) Match(name string) bool {
	return r.match(name)
}

// Legal reports whether a call site with the given verdict is a legal root context.
func (r *Rule) Legal(v container.Verdict) bool {
	return slices.Contains(r.legal, v)
}

// Message formats the finding of kind k for a call of name.
func (r *Rule) Message(k Kind, name string) string {
	switch k {
	case KindInvalidContext:
		return fmt.Sprintf(r.invalidContext, name)

	case KindAfterSuspension:
		return fmt.Sprintf(r.afterSuspension, name)

	default:
		return fmt.Sprintf("%s: %v for `%s`", r.name, k, name)
	}
}

// LogValue implements [slog.LogValuer].
func (r *Rule) LogValue() slog.Value {
	legal := make([]string, 0, len(r.legal))
	for _, v := range r.legal {
		legal = append(legal, v.String())
	}

	return slog.GroupValue(
		slog.String("name", r.name),
		slog.Any("legal", legal),
	)
}
