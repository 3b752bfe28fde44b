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

package syntax

// Visitor receives the events of a depth-first walk over a [Tree].
//
// Enter is called before the descendants of a node are visited, Exit after.
// Enter and Exit events are always properly nested.
type Visitor interface {
	Enter(n NodeIndex) error
	Exit(n NodeIndex) error
}

// Walk visits all nodes of t in depth-first order, dispatching every event
// to each visitor in turn. The first error returned by a visitor stops the walk.
func (t *Tree) Walk(visitors ...Visitor) error {
	open := make([]NodeIndex, 0, 32)

	for i := range t.nodes {
		n := NodeIndex(i)

		// Close the nodes that do not contain n
		for len(open) > 0 && t.nodes[open[len(open)-1]].next <= n {
			if err := exit(visitors, open[len(open)-1]); err != nil {
				return err
			}

			open = open[:len(open)-1]
		}

		for _, v := range visitors {
			if err := v.Enter(n); err != nil {
				return err
			}
		}

		open = append(open, n)
	}

	for len(open) > 0 {
		if err := exit(visitors, open[len(open)-1]); err != nil {
			return err
		}

		open = open[:len(open)-1]
	}

	return nil
}

func exit(visitors []Visitor, n NodeIndex) error {
	for _, v := range visitors {
		if err := v.Exit(n); err != nil {
			return err
		}
	}

	return nil
}
