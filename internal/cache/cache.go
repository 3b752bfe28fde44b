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

// Package cache persists findings on disk, keyed by file content and options.
package cache

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"fillmore-labs.com/composableguard/internal/run"
)

// schemaVersion must be incremented when the payload format changes.
const schemaVersion uint16 = 1

// Disk is a [run.Cache] storing one msgpack file per key.
//
// Disk is safe for concurrent use.
type Disk struct {
	// mu is held exclusively by Clear only; entries are written atomically.
	mu  sync.RWMutex
	dir string
}

var _ run.Cache = (*Disk)(nil)

type payload struct {
	Schema   uint16        `msgpack:"schema"`
	Findings []run.Finding `msgpack:"findings"`
}

// Open returns a cache in dir, creating the directory when needed.
func Open(dir string) (*Disk, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("can't create cache directory: %w", err)
	}

	return &Disk{dir: dir}, nil
}

// DefaultDir returns the cache directory of the named application in the
// user's cache directory.
func DefaultDir(app string) (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("can't determine cache directory: %w", err)
	}

	return filepath.Join(base, app), nil
}

// Dir returns the cache directory.
func (c *Disk) Dir() string {
	return c.dir
}

func (c *Disk) pathFor(key run.Key) string {
	h := hex.EncodeToString(key[:])

	return filepath.Join(c.dir, h[:2], h+".mp")
}

// Get implements [run.Cache]. Unreadable or outdated entries are misses.
func (c *Disk) Get(key run.Key) ([]run.Finding, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		return nil, false
	}

	var p payload
	if err := msgpack.Unmarshal(data, &p); err != nil || p.Schema != schemaVersion {
		return nil, false
	}

	return p.Findings, true
}

// Put implements [run.Cache]. Entries are replaced atomically.
func (c *Disk) Put(key run.Key, findings []run.Finding) (err error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	path := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("can't create cache directory: %w", err)
	}

	f, err := os.CreateTemp(filepath.Dir(path), "tmp-*")
	if err != nil {
		return fmt.Errorf("can't create cache entry: %w", err)
	}

	defer func() {
		if rerr := os.Remove(f.Name()); rerr != nil && !errors.Is(rerr, os.ErrNotExist) && err == nil {
			err = rerr
		}
	}()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(payload{Schema: schemaVersion, Findings: findings}); err != nil {
		_ = f.Close()

		return fmt.Errorf("can't encode cache entry: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("can't write cache entry: %w", err)
	}

	if err := os.Rename(f.Name(), path); err != nil {
		return fmt.Errorf("can't store cache entry: %w", err)
	}

	return nil
}

// Clear removes all entries.
func (c *Disk) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return fmt.Errorf("can't read cache directory: %w", err)
	}

	for _, e := range entries {
		if err := os.RemoveAll(filepath.Join(c.dir, e.Name())); err != nil {
			return fmt.Errorf("can't clear cache: %w", err)
		}
	}

	return nil
}
