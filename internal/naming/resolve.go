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

package naming

import "fillmore-labs.com/composableguard/internal/syntax"

// ResolveCalleeName recovers the name to classify from the callee of a call.
//
//   - useFoo()         → "useFoo"
//   - ns.useFoo()      → "useFoo"
//   - useFoo(a)(b)     → "useFoo"
//   - (useFoo)()       → "useFoo"
//
// Anything else, like computed member access, yields no name. This is shallow
// pattern matching, not binding resolution.
func ResolveCalleeName(t *syntax.Tree, n syntax.NodeIndex) (string, bool) {
	for n.Valid() {
		switch t.Kind(n) {
		case syntax.KindIdentifier:
			return t.Text(n), true

		case syntax.KindMemberExpression:
			n = t.ChildByField(n, "property")

		case syntax.KindCallExpression:
			n = t.ChildByField(n, "function")

		case syntax.KindParenthesized:
			n = t.Unparen(n)

		default:
			return "", false
		}
	}

	return "", false
}

// CallName resolves the name of a call expression.
func CallName(t *syntax.Tree, call syntax.NodeIndex) (string, bool) {
	return ResolveCalleeName(t, t.ChildByField(call, "function"))
}
