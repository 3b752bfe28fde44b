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

// Package container classifies the evaluation context of call sites.
//
// A call to a composable or lifecycle hook is legal only in a few host shapes:
// a composable function, a setup option, the top level of <script setup> and,
// for composables, state-store definitions. The classification is a pure
// function of a node's ancestry and is recomputed on every query.
package container

//go:generate go tool stringer -type Verdict -trimprefix Verdict

// Verdict classifies the nearest evaluation context of a node.
type Verdict uint8

const (
	// VerdictNone is any context without special meaning.
	VerdictNone Verdict = iota

	// VerdictComposableRoot is the body of a composable-named function.
	VerdictComposableRoot

	// VerdictSetupOption is the body of a setup option of an object literal.
	VerdictSetupOption

	// VerdictStoreFactoryRoot is the body of a state-store definition function or option.
	VerdictStoreFactoryRoot

	// VerdictStoreActionRoot is the body of a state-store action or getter.
	VerdictStoreActionRoot

	// VerdictScriptSetupRoot is the top level of a <script setup> block.
	VerdictScriptSetupRoot
)

// IsStore reports whether v is one of the state-store contexts.
func (v Verdict) IsStore() bool {
	return v == VerdictStoreFactoryRoot || v == VerdictStoreActionRoot
}
