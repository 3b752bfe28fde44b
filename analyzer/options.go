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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/composableguard/internal/config"
)

// Option configures specific behavior of a [New] composableguard analyzer.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithComposablePlacement is an [Option] to configure whether composable calls are checked.
func WithComposablePlacement(enabled bool) Option {
	return ruleOption{rule: config.ComposablePlacement, name: "composable-placement", enabled: enabled}
}

// WithLifecyclePlacement is an [Option] to configure whether lifecycle hook calls are checked.
func WithLifecyclePlacement(enabled bool) Option {
	return ruleOption{rule: config.LifecyclePlacement, name: "lifecycle-placement", enabled: enabled}
}

type ruleOption struct {
	rule    config.RuleFlags
	name    string
	enabled bool
}

func (o ruleOption) apply(r *runOptions) {
	r.Rules.Set(o.rule, o.enabled)
}

func (o ruleOption) LogAttr() slog.Attr {
	return slog.Bool(o.name, o.enabled)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *runOptions) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithNoLint is an [Option] to configure whether nolint comments suppress diagnostics.
func WithNoLint(nolint bool) Option { return nolintOption{nolint: nolint} }

type nolintOption struct{ nolint bool }

func (o nolintOption) apply(r *runOptions) {
	r.Behavior.Set(config.IgnoreNoLint, !o.nolint)
}

func (o nolintOption) LogAttr() slog.Attr {
	return slog.Bool("nolint", o.nolint)
}

// WithStoreFactories is an [Option] adding names of state-store definition functions besides defineStore.
func WithStoreFactories(names ...string) Option { return storeFactoriesOption{names: names} }

type storeFactoriesOption struct{ names []string }

func (o storeFactoriesOption) apply(r *runOptions) {
	r.StoreFactories = append(r.StoreFactories, o.names...)
}

func (o storeFactoriesOption) LogAttr() slog.Attr {
	return slog.Any("store-factories", o.names)
}

// WithLifecycleHooks is an [Option] adding lifecycle hook names to the Vue core and Vue Router hooks.
func WithLifecycleHooks(names ...string) Option { return lifecycleHooksOption{names: names} }

type lifecycleHooksOption struct{ names []string }

func (o lifecycleHooksOption) apply(r *runOptions) {
	r.LifecycleHooks = append(r.LifecycleHooks, o.names...)
}

func (o lifecycleHooksOption) LogAttr() slog.Attr {
	return slog.Any("lifecycle-hooks", o.names)
}
