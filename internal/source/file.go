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
	"path/filepath"
	"slices"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/composableguard/internal/syntax"
)

// File is a parsed source file.
type File struct {
	// Path is the file name as given to [Parse].
	Path string

	// Content is the unmodified file content.
	Content []byte

	// Language is the grammar the scripts were parsed with.
	Language Language

	// Tree is the syntax tree of the file's scripts.
	Tree *syntax.Tree

	scriptSetup    syntax.Span
	hasScriptSetup bool

	lines []int // offsets of line starts
}

// ScriptSetup returns the range of the <script setup> element, if any.
func (f *File) ScriptSetup() (syntax.Span, bool) {
	return f.scriptSetup, f.hasScriptSetup
}

// Position is a 1-based line and byte column.
type Position struct {
	Line   int `json:"line"   msgpack:"line"`
	Column int `json:"column" msgpack:"column"`
}

// Position converts a byte offset into a line and column.
func (f *File) Position(offset int) Position {
	i, found := slices.BinarySearch(f.lines, offset)
	if !found {
		i--
	}

	return Position{Line: i + 1, Column: offset - f.lines[i] + 1}
}

// Line returns the text of a 1-based line without the line terminator.
func (f *File) Line(line int) string {
	if line < 1 || line > len(f.lines) {
		return ""
	}

	start, end := f.lines[line-1], len(f.Content)
	if line < len(f.lines) {
		end = f.lines[line] - 1
	}

	return strings.TrimSuffix(string(f.Content[start:end]), "\r")
}

// Lines returns the number of lines.
func (f *File) Lines() int {
	return len(f.lines)
}

// Parse parses the content of the named file. The file type is determined by the extension.
//
// A file the grammar can't parse completely is rejected with a [*SyntaxError].
func Parse(ctx context.Context, path string, content []byte) (*File, error) {
	f := &File{Path: path, Content: content, lines: lineStarts(content)}

	script := content

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case vueExt:
		sfc, err := splitSFC(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		script = sfc.script
		f.Language = sfc.lang
		f.scriptSetup, f.hasScriptSetup = sfc.setup, sfc.hasSetup

	default:
		lang, ok := languageOf[ext]
		if !ok {
			return nil, fmt.Errorf("%s: %w", path, ErrUnsupported)
		}

		f.Language = lang
	}

	tree, err := parseScript(ctx, f.Language, script)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if errs := tree.Errors(); len(errs) > 0 {
		offset := tree.Span(errs[0]).Start

		return nil, &SyntaxError{Path: path, Offset: offset, Pos: f.Position(offset)}
	}

	f.Tree = tree

	return f, nil
}

func parseScript(ctx context.Context, lang Language, script []byte) (*syntax.Tree, error) {
	p := sitter.NewParser()
	defer p.Close()

	p.SetLanguage(lang.grammar())

	st, err := p.ParseCtx(ctx, nil, script)
	if err != nil {
		return nil, fmt.Errorf("can't parse %s: %w", lang, err)
	}
	defer st.Close()

	return syntax.Build(st.RootNode(), script)
}

func lineStarts(content []byte) []int {
	lines := []int{0}
	for i, c := range content {
		if c == '\n' {
			lines = append(lines, i+1)
		}
	}

	return lines
}
