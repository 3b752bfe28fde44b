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

// Package naming classifies call targets by the naming conventions of Vue.
//
// Names are matched by shape only. Whether an identifier really originates
// from Vue is not checked, aliased or shadowed names are classified by their
// spelling.
package naming

import (
	"maps"
	"slices"
)

// composablePrefix starts every composable name.
const composablePrefix = "use"

// IsComposableName reports whether name follows the composable convention:
// "use" followed by an ASCII uppercase letter or digit.
func IsComposableName(name string) bool {
	if len(name) <= len(composablePrefix) || name[:len(composablePrefix)] != composablePrefix {
		return false
	}

	switch c := name[len(composablePrefix)]; {
	case 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true

	default:
		return false
	}
}

// defaultHooks are the lifecycle hooks of Vue core and Vue Router.
var defaultHooks = [...]string{
	// Core
	"onMounted",
	"onUpdated",
	"onUnmounted",
	"onBeforeMount",
	"onBeforeUpdate",
	"onBeforeUnmount",
	"onErrorCaptured",
	"onRenderTracked",
	"onRenderTriggered",
	"onActivated",
	"onDeactivated",
	"onServerPrefetch",

	// Vue Router
	"onBeforeRouteLeave",
	"onBeforeRouteUpdate",
}

// Hooks is a closed set of lifecycle hook names.
type Hooks map[string]struct{}

// DefaultHooks returns the lifecycle hooks of Vue core and Vue Router, extended by extra.
func DefaultHooks(extra ...string) Hooks {
	h := make(Hooks, len(defaultHooks)+len(extra))
	for _, name := range defaultHooks {
		h[name] = struct{}{}
	}

	for _, name := range extra {
		if name != "" {
			h[name] = struct{}{}
		}
	}

	return h
}

// Contains reports whether name is a lifecycle hook.
func (h Hooks) Contains(name string) bool {
	_, ok := h[name]

	return ok
}

// Names returns the sorted hook names.
func (h Hooks) Names() []string {
	return slices.Sorted(maps.Keys(h))
}

// IsLifecycleHookName reports whether name is one of the default lifecycle hooks.
func IsLifecycleHookName(name string) bool {
	return slices.Contains(defaultHooks[:], name)
}
