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

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for configuration files with an unsupported extension.
var ErrUnknownFormat = errors.New("unknown configuration format")

// FileNames are the configuration file names [Find] looks for, in order of preference.
var FileNames = []string{
	".composableguard.yaml",
	".composableguard.yml",
	".composableguard.toml",
	".composableguard.json",
}

// File is the content of a configuration file. Unset values keep their defaults.
type File struct {
	Rules struct {
		ComposablePlacement *bool `json:"composable-placement" toml:"composable-placement" yaml:"composable-placement"`
		LifecyclePlacement  *bool `json:"lifecycle-placement"  toml:"lifecycle-placement"  yaml:"lifecycle-placement"`
	} `json:"rules" toml:"rules" yaml:"rules"`

	Generated      *bool    `json:"generated"       toml:"generated"       yaml:"generated"`
	StoreFactories []string `json:"store-factories" toml:"store-factories" yaml:"store-factories"`
	LifecycleHooks []string `json:"lifecycle-hooks" toml:"lifecycle-hooks" yaml:"lifecycle-hooks"`
	Exclude        []string `json:"exclude"         toml:"exclude"         yaml:"exclude"`

	Format string `json:"format" toml:"format" yaml:"format"`
	Jobs   int    `json:"jobs"   toml:"jobs"   yaml:"jobs"`
	Cache  *bool  `json:"cache"  toml:"cache"  yaml:"cache"`
}

// Load reads a configuration file. The format is determined by the extension.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("can't read configuration: %w", err)
	}

	f, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Decode parses configuration data in the format named by ext (".yaml", ".yml", ".toml" or ".json").
func Decode(data []byte, ext string) (*File, error) {
	var f File

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)

		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}

	case ".toml":
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return nil, fmt.Errorf("invalid TOML: %w", err)
		}

		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown TOML key %q", undecoded[0].String())
		}

	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()

		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	return &f, nil
}

// Find walks up from dir to locate a configuration file.
func Find(dir string) (path string, ok bool, err error) {
	if dir == "" {
		dir = "."
	}

	dir, err = filepath.Abs(dir)
	if err != nil {
		return "", false, fmt.Errorf("can't resolve directory: %w", err)
	}

	for {
		for _, name := range FileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, true, nil
			} else if !errors.Is(err, os.ErrNotExist) {
				return "", false, fmt.Errorf("can't stat %q: %w", candidate, err)
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}

		dir = parent
	}
}
