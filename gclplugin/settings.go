// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package gclplugin

import composableguard "fillmore-labs.com/composableguard/analyzer"

// Settings represents the configuration options for a composableguard run.
type Settings struct {
	// ComposablePlacement enables composable placement checks.
	ComposablePlacement *bool `json:"composable-placement,omitzero"`
	// LifecyclePlacement enables lifecycle hook placement checks.
	LifecyclePlacement *bool `json:"lifecycle-placement,omitzero"`
	// Generated enables checking generated embedded files.
	Generated *bool `json:"generated,omitzero"`
	// NoLint honors nolint comments in embedded files.
	NoLint *bool `json:"nolint,omitzero"`
	// StoreFactories adds state store definition functions.
	StoreFactories []string `json:"store-factories,omitempty"`
	// LifecycleHooks adds lifecycle hook names.
	LifecycleHooks []string `json:"lifecycle-hooks,omitempty"`
}

// Options converts [Settings] into a list of [composableguard.Option].
func (s Settings) Options() []composableguard.Option {
	var opts []composableguard.Option

	opts = appendOption(opts, s.ComposablePlacement, composableguard.WithComposablePlacement)
	opts = appendOption(opts, s.LifecyclePlacement, composableguard.WithLifecyclePlacement)
	opts = appendOption(opts, s.Generated, composableguard.WithGenerated)
	opts = appendOption(opts, s.NoLint, composableguard.WithNoLint)
	opts = appendNames(opts, s.StoreFactories, composableguard.WithStoreFactories)
	opts = appendNames(opts, s.LifecycleHooks, composableguard.WithLifecycleHooks)

	return opts
}

func appendOption[T any](opts []composableguard.Option, value *T, constructor func(T) composableguard.Option) []composableguard.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}

func appendNames(opts []composableguard.Option, names []string, constructor func(...string) composableguard.Option) []composableguard.Option {
	if len(names) == 0 {
		return opts
	}

	return append(opts, constructor(names...))
}
