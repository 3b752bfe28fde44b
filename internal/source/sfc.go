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

package source

import (
	"context"
	"fmt"
	"iter"

	"fortio.org/safecast"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/html"

	"fillmore-labs.com/composableguard/internal/syntax"
)

// HTML node types of a single-file component.
const (
	htmlNodeElement        = "element"
	htmlNodeStyleElement   = "style_element"
	htmlNodeScriptElement  = "script_element"
	htmlNodeStartTag       = "start_tag"
	htmlNodeAttribute      = "attribute"
	htmlNodeAttributeName  = "attribute_name"
	htmlNodeAttributeValue = "attribute_value"
	htmlNodeQuotedValue    = "quoted_attribute_value"
	htmlNodeRawText        = "raw_text"
)

// sfc holds the script part of a single-file component.
type sfc struct {
	// script has the size of the component, everything outside the top-level
	// script blocks replaced by blanks.
	script   []byte
	lang     Language
	setup    syntax.Span
	hasSetup bool
}

// splitSFC extracts the top-level script blocks of a single-file component.
func splitSFC(ctx context.Context, content []byte) (sfc, error) {
	p := sitter.NewParser()
	defer p.Close()

	p.SetLanguage(html.GetLanguage())

	st, err := p.ParseCtx(ctx, nil, content)
	if err != nil {
		return sfc{}, fmt.Errorf("can't parse component: %w", err)
	}
	defer st.Close()

	s := sfc{script: blank(content)}

	for el := range topLevelScripts(st.RootNode()) {
		attrs := attributes(el, content)

		if raw := rawText(el); raw != nil {
			start, end := raw.StartByte(), raw.EndByte()
			copy(s.script[start:end], content[start:end])

			// Blocks on one line must not run into each other
			if int(end) < len(s.script) && s.script[end] == ' ' {
				s.script[end] = ';'
			}
		}

		switch attrs["lang"] {
		case "ts":
			s.lang = TypeScript

		case "tsx":
			s.lang = TSX
		}

		if _, ok := attrs["setup"]; ok && !s.hasSetup {
			start, err := safecast.Conv[int](el.StartByte())
			if err != nil {
				return sfc{}, fmt.Errorf("component too large: %w", err)
			}

			end, err := safecast.Conv[int](el.EndByte())
			if err != nil {
				return sfc{}, fmt.Errorf("component too large: %w", err)
			}

			s.setup = syntax.Span{Start: start, End: end}
			s.hasSetup = true
		}
	}

	return s, nil
}

// blank returns a copy of content with everything except line breaks replaced by spaces.
func blank(content []byte) []byte {
	b := make([]byte, len(content))
	for i, c := range content {
		switch c {
		case '\n', '\r':
			b[i] = c

		default:
			b[i] = ' '
		}
	}

	return b
}

// topLevelScripts yields the script elements outside of any other element.
func topLevelScripts(root *sitter.Node) iter.Seq[*sitter.Node] {
	return func(yield func(*sitter.Node) bool) {
		var walk func(n *sitter.Node) bool
		walk = func(n *sitter.Node) bool {
			for i := range int(n.NamedChildCount()) {
				c := n.NamedChild(i)
				switch c.Type() {
				case htmlNodeScriptElement:
					if !yield(c) {
						return false
					}

				case htmlNodeElement, htmlNodeStyleElement:
					// <template> and friends

				default:
					if !walk(c) { // error recovery nodes
						return false
					}
				}
			}

			return true
		}

		walk(root)
	}
}

// attributes returns the attributes of an element's start tag. Attributes without a value map to "".
func attributes(el *sitter.Node, content []byte) map[string]string {
	attrs := make(map[string]string)

	var tag *sitter.Node
	for i := range int(el.NamedChildCount()) {
		if c := el.NamedChild(i); c.Type() == htmlNodeStartTag {
			tag = c

			break
		}
	}

	if tag == nil {
		return attrs
	}

	for i := range int(tag.NamedChildCount()) {
		attr := tag.NamedChild(i)
		if attr.Type() != htmlNodeAttribute {
			continue
		}

		var name, value string
		for j := range int(attr.NamedChildCount()) {
			switch c := attr.NamedChild(j); c.Type() {
			case htmlNodeAttributeName:
				name = c.Content(content)

			case htmlNodeAttributeValue:
				value = c.Content(content)

			case htmlNodeQuotedValue:
				if c.NamedChildCount() > 0 {
					value = c.NamedChild(0).Content(content)
				}
			}
		}

		if name != "" {
			attrs[name] = value
		}
	}

	return attrs
}

func rawText(el *sitter.Node) *sitter.Node {
	for i := range int(el.NamedChildCount()) {
		if c := el.NamedChild(i); c.Type() == htmlNodeRawText {
			return c
		}
	}

	return nil
}
