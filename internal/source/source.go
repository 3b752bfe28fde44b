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

// Package source parses JavaScript, TypeScript and Vue single-file components
// into [syntax.Tree]s.
//
// Vue files are split with the HTML grammar: the contents of the top-level
// <script> and <script setup> blocks are parsed together as one program,
// keeping their byte offsets in the original file. The range of the
// <script setup> element is recorded as the file's script-setup boundary.
package source

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// ErrUnsupported is returned for files of unknown type.
var ErrUnsupported = errors.New("unsupported file type")

// Language selects the grammar a script is parsed with.
type Language uint8

const (
	// JavaScript includes JSX.
	JavaScript Language = iota
	// TypeScript without JSX.
	TypeScript
	// TSX is TypeScript with JSX.
	TSX
)

func (l Language) grammar() *sitter.Language {
	switch l {
	case TypeScript:
		return typescript.GetLanguage()

	case TSX:
		return tsx.GetLanguage()

	default:
		return javascript.GetLanguage()
	}
}

func (l Language) String() string {
	switch l {
	case TypeScript:
		return "typescript"

	case TSX:
		return "tsx"

	default:
		return "javascript"
	}
}

// languageOf maps lowercase file extensions to script languages.
var languageOf = map[string]Language{
	".js":  JavaScript,
	".jsx": JavaScript,
	".mjs": JavaScript,
	".cjs": JavaScript,
	".ts":  TypeScript,
	".mts": TypeScript,
	".cts": TypeScript,
	".tsx": TSX,
}

const vueExt = ".vue"

// Supported reports whether path names a file this package can parse.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == vueExt {
		return true
	}

	_, ok := languageOf[ext]

	return ok
}

// Extensions returns the supported file extensions.
func Extensions() []string {
	exts := make([]string, 0, len(languageOf)+1)
	for ext := range languageOf {
		exts = append(exts, ext)
	}

	exts = append(exts, vueExt)
	slices.Sort(exts)

	return exts
}

// SyntaxError reports source the grammar could not parse.
type SyntaxError struct {
	Path   string
	Offset int
	Pos    Position
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d:%d: syntax error", e.Path, e.Pos.Line, e.Pos.Column)
}
