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

// Package config holds the settings shared by the analyzer, the linter plugin
// and the command line.
package config

// RuleFlags represents specific placement rules.
type RuleFlags uint8

const (
	// ComposablePlacement enables the validation of composable calls.
	ComposablePlacement RuleFlags = 1 << iota

	// LifecyclePlacement enables the validation of lifecycle hook calls.
	LifecyclePlacement
)

// Rules is the set of enabled rules.
type Rules = BitMask[RuleFlags]

// DefaultRules returns all rules enabled.
func DefaultRules() Rules {
	return NewBitMask(ComposablePlacement | LifecyclePlacement)
}

// BehaviorFlags represents behavioral options.
type BehaviorFlags uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated BehaviorFlags = 1 << iota

	// IgnoreNoLint disables suppression by nolint comments.
	IgnoreNoLint
)

// Behavior is the set of enabled behavioral options.
type Behavior = BitMask[BehaviorFlags]

// DefaultBehavior returns the default behavior, skipping generated files and honoring nolint comments.
func DefaultBehavior() Behavior {
	return Behavior{}
}
