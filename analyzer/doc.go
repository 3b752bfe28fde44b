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

// Package analyzer implements the composableguard static analysis pass.
//
// # Overview
//
// composableguard checks the Vue frontend sources a Go module embeds with
// //go:embed for composable and lifecycle hook calls placed where Vue cannot
// bind them to the active component instance.
//
// # Example
//
// Reported:
//
//	export function useCounter() {
//	    const ready = await fetchConfig()
//	    onMounted(() => start(ready)) // forbidden after an await expression
//	}
//
//	function handleClick() {
//	    const { user } = useAuth() // not in setup() or another composable
//	}
//
// # Supported Calling Contexts
//
// Composables and lifecycle hooks may be called in the root context of:
//
//   - Composables: functions whose name starts with "use" and an uppercase letter
//   - The setup() option of a component definition
//   - The top level of a <script setup> block
//   - State store factories: defineStore setup functions and option store actions
//
// Lifecycle hooks must additionally be registered before the first await
// expression of their context.
package analyzer
