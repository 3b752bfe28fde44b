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
	"fmt"
	"strings"
)

// Format selects the output representation of findings.
type Format uint8

const (
	// FormatPretty prints findings with a source excerpt.
	FormatPretty Format = iota

	// FormatShort prints one line per finding.
	FormatShort

	// FormatJSON prints a single JSON document.
	FormatJSON
)

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case FormatPretty:
		return []byte("pretty"), nil

	case FormatShort:
		return []byte("short"), nil

	case FormatJSON:
		return []byte("json"), nil

	default:
		return nil, fmt.Errorf("unknown output format %d", f)
	}
}

func (f *Format) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "pretty":
		*f = FormatPretty

	case "short", "line":
		*f = FormatShort

	case "json":
		*f = FormatJSON

	default:
		return fmt.Errorf("unknown output format %q", string(text))
	}

	return nil
}

func (f Format) String() string {
	text, err := f.MarshalText()
	if err != nil {
		return fmt.Sprintf("Format(%d)", f)
	}

	return string(text)
}

// Set implements [github.com/spf13/pflag.Value].
func (f *Format) Set(s string) error { return f.UnmarshalText([]byte(s)) }

// Type implements [github.com/spf13/pflag.Value].
func (*Format) Type() string { return "format" }

// ColorMode controls colored output.
type ColorMode uint8

const (
	// ColorAuto colors output written to a terminal.
	ColorAuto ColorMode = iota

	// ColorOn always colors output.
	ColorOn

	// ColorOff never colors output.
	ColorOff
)

func (c ColorMode) MarshalText() ([]byte, error) {
	switch c {
	case ColorAuto:
		return []byte("auto"), nil

	case ColorOn:
		return []byte("on"), nil

	case ColorOff:
		return []byte("off"), nil

	default:
		return nil, fmt.Errorf("unknown color mode %d", c)
	}
}

func (c *ColorMode) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "auto":
		*c = ColorAuto

	case "on", "true", "always":
		*c = ColorOn

	case "off", "false", "never":
		*c = ColorOff

	default:
		return fmt.Errorf("unknown color mode %q", string(text))
	}

	return nil
}

func (c ColorMode) String() string {
	text, err := c.MarshalText()
	if err != nil {
		return fmt.Sprintf("ColorMode(%d)", c)
	}

	return string(text)
}

// Set implements [github.com/spf13/pflag.Value].
func (c *ColorMode) Set(s string) error { return c.UnmarshalText([]byte(s)) }

// Type implements [github.com/spf13/pflag.Value].
func (*ColorMode) Type() string { return "mode" }

// Enabled reports whether output should be colored, given whether it goes to a terminal.
func (c ColorMode) Enabled(terminal bool) bool {
	switch c {
	case ColorOn:
		return true

	case ColorOff:
		return false

	default:
		return terminal
	}
}
