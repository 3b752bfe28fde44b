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

package run

import (
	"crypto/sha256"
	"encoding/binary"
	"log/slog"
	"slices"

	"fillmore-labs.com/composableguard/internal/config"
	"fillmore-labs.com/composableguard/internal/container"
	"fillmore-labs.com/composableguard/internal/naming"
	"fillmore-labs.com/composableguard/internal/placement"
)

// Options represent the configuration of a composableguard run.
type Options struct {
	// Rules are the enabled placement rules.
	Rules config.Rules

	// Behavior holds behavioral options.
	Behavior config.Behavior

	// StoreFactories are additional state-store definition functions.
	StoreFactories []string

	// LifecycleHooks are additional lifecycle hook names.
	LifecycleHooks []string
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Rules:    config.DefaultRules(),
		Behavior: config.DefaultBehavior(),
	}
}

// PlacementRules returns the enabled rules in reporting order.
func (o *Options) PlacementRules() []*placement.Rule {
	rules := make([]*placement.Rule, 0, 2)

	if o.Rules.Enabled(config.ComposablePlacement) {
		rules = append(rules, placement.ComposablePlacement())
	}

	if o.Rules.Enabled(config.LifecyclePlacement) {
		rules = append(rules, placement.LifecyclePlacement(naming.DefaultHooks(o.LifecycleHooks...)))
	}

	return rules
}

func (o *Options) detectorOptions() []container.Option {
	return []container.Option{container.WithStoreFactories(o.StoreFactories...)}
}

// Fingerprint identifies the options that influence findings.
func (o *Options) Fingerprint() [sha256.Size]byte {
	h := sha256.New()

	var buf [2]byte
	buf[0], buf[1] = byte(o.Rules.Value()), byte(o.Behavior.Value())
	h.Write(buf[:])

	for _, list := range [][]string{o.StoreFactories, o.LifecycleHooks} {
		sorted := slices.Sorted(slices.Values(list))
		h.Write(binary.AppendUvarint(nil, uint64(len(sorted))))

		for _, s := range sorted {
			h.Write(binary.AppendUvarint(nil, uint64(len(s))))
			h.Write([]byte(s))
		}
	}

	var sum [sha256.Size]byte
	h.Sum(sum[:0])

	return sum
}

// LogValue implements [slog.LogValuer].
func (o *Options) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("composable-placement", o.Rules.Enabled(config.ComposablePlacement)),
		slog.Bool("lifecycle-placement", o.Rules.Enabled(config.LifecyclePlacement)),
		slog.Bool("generated", o.Behavior.Enabled(config.IncludeGenerated)),
		slog.Any("store-factories", o.StoreFactories),
		slog.Any("lifecycle-hooks", o.LifecycleHooks),
	)
}
