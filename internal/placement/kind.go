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

// Package placement validates where composables and lifecycle hooks are called.
//
// A [Checker] walks a syntax tree, keeps a stack of the open function scopes
// with their first suspension point and reports calls of matching names that
// are placed outside a legal root context or after an await expression.
package placement

//go:generate go tool stringer -type Kind -trimprefix Kind

// Kind is the kind of a placement finding.
type Kind uint8

const (
	// KindInvalidContext is a call outside of a legal root context.
	KindInvalidContext Kind = iota

	// KindAfterSuspension is a call after an await expression in the same function.
	KindAfterSuspension
)
