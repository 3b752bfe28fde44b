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

package diagfmt

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"fillmore-labs.com/composableguard/internal/run"
)

type palette struct {
	location, rule, gutter, caret, note *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		location: color.New(color.Bold),
		rule:     color.New(color.FgYellow),
		gutter:   color.New(color.FgBlue, color.Bold),
		caret:    color.New(color.FgRed, color.Bold),
		note:     color.New(color.FgCyan),
	}

	for _, c := range [...]*color.Color{p.location, p.rule, p.gutter, p.caret, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

func (p *Printer) printPretty(w io.Writer, results []run.Result) error {
	pal := newPalette(p.Color)

	var total, files int
	for _, r := range results {
		if len(r.Findings) == 0 {
			continue
		}

		files++

		content, err := p.readFile(r.Path)
		if err != nil {
			content = nil
		}

		for _, f := range r.Findings {
			total++

			if err := writeFinding(w, pal, r.Path, content, f); err != nil {
				return err
			}
		}
	}

	if total == 0 {
		return nil
	}

	_, err := fmt.Fprintf(w, "%d %s in %d %s\n", total, plural(total, "problem"), files, plural(files, "file"))

	return err
}

func writeFinding(w io.Writer, pal palette, path string, content []byte, f run.Finding) error {
	var b strings.Builder

	pal.location.Fprintf(&b, "%s:%d:%d:", path, f.Pos.Line, f.Pos.Column)
	b.WriteByte(' ')
	b.WriteString(f.Message)
	b.WriteByte(' ')
	pal.rule.Fprintf(&b, "[%s]", f.Rule)
	b.WriteByte('\n')

	if line, ok := lineText(content, f.Pos.Line); ok {
		number := strconv.Itoa(f.Pos.Line)
		blank := strings.Repeat(" ", len(number))

		pal.gutter.Fprintf(&b, " %s |", number)
		b.WriteByte(' ')
		b.WriteString(line)
		b.WriteByte('\n')

		pal.gutter.Fprintf(&b, " %s |", blank)
		b.WriteByte(' ')
		pad, width := underline(line, f.Pos.Column, f.End-f.Start)
		b.WriteString(pad)
		pal.caret.Fprint(&b, "^"+strings.Repeat("~", width-1))
		b.WriteByte('\n')
	}

	if f.After != nil {
		b.WriteString("   ")
		pal.note.Fprint(&b, "=")
		fmt.Fprintf(&b, " note: after the await expression at %d:%d\n", f.After.Line, f.After.Column)
	}

	_, err := io.WriteString(w, b.String())

	return err
}

// lineText returns the 1-based line of content without its line terminator.
func lineText(content []byte, line int) (string, bool) {
	if content == nil || line < 1 {
		return "", false
	}

	for range line - 1 {
		i := bytes.IndexByte(content, '\n')
		if i < 0 {
			return "", false
		}

		content = content[i+1:]
	}

	if i := bytes.IndexByte(content, '\n'); i >= 0 {
		content = content[:i]
	}

	return string(bytes.TrimSuffix(content, []byte{'\r'})), true
}

// underline returns the padding up to the 1-based byte column and the display width
// of length bytes from there, clipped to the line and at least 1.
func underline(line string, column, length int) (string, int) {
	start := min(max(column-1, 0), len(line))
	end := min(start+max(length, 0), len(line))

	var pad strings.Builder
	for _, r := range line[:start] {
		if r == '\t' {
			pad.WriteByte('\t')

			continue
		}

		pad.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}

	return pad.String(), max(runewidth.StringWidth(line[start:end]), 1)
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}

	return word + "s"
}
