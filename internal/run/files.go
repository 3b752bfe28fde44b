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

package run

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Key identifies the findings for a file content under a set of options.
type Key [sha256.Size]byte

// Cache stores findings across runs.
type Cache interface {
	Get(key Key) ([]Finding, bool)
	Put(key Key, findings []Finding) error
}

// Result holds the outcome of checking a single file.
type Result struct {
	Path     string
	Findings []Finding
	Skipped  SkipReason
	Cached   bool
	Err      error
}

// Key computes the cache key of content under the current options. The file
// extension selects the grammar and is part of the key.
func (o *Options) Key(path string, content []byte) Key {
	fp := o.Fingerprint()

	h := sha256.New()
	h.Write(fp[:])
	h.Write([]byte(strings.ToLower(filepath.Ext(path))))
	h.Write([]byte{0})
	h.Write(content)

	var k Key
	h.Sum(k[:0])

	return k
}

// FileSet checks multiple files concurrently.
type FileSet struct {
	Options *Options

	// Jobs is the maximum number of files checked in parallel, GOMAXPROCS when not positive.
	Jobs int

	// Cache, if not nil, stores findings by file content.
	Cache Cache

	// Logger receives progress messages.
	Logger *slog.Logger
}

// CheckFiles reads and checks the given files. The results are in the order of paths.
//
// Errors reading or parsing a file are recorded in its [Result], the returned
// error is only set when ctx is canceled.
func (s *FileSet) CheckFiles(ctx context.Context, paths []string) ([]Result, error) {
	logger := s.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	jobs := s.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Indices are unique per goroutine, no locking needed
	results := make([]Result, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(paths))))

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			results[i] = s.checkFile(gctx, logger, path)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}

	return results, nil
}

func (s *FileSet) checkFile(ctx context.Context, logger *slog.Logger, path string) Result {
	r := Result{Path: path}

	content, err := os.ReadFile(path)
	if err != nil {
		r.Err = fmt.Errorf("can't read file: %w", err)

		return r
	}

	var key Key
	if s.Cache != nil {
		key = s.Options.Key(path, content)
		if findings, ok := s.Cache.Get(key); ok {
			logger.LogAttrs(ctx, slog.LevelDebug, "Cache hit", slog.String("path", path))

			r.Findings, r.Cached = findings, true

			return r
		}
	}

	r.Findings, r.Skipped, r.Err = s.Options.CheckSource(ctx, path, content)

	switch {
	case r.Err != nil:
		logger.LogAttrs(ctx, slog.LevelDebug, "Check failed", slog.String("path", path), slog.Any("error", r.Err))

	case r.Skipped != NotSkipped:
		logger.LogAttrs(ctx, slog.LevelDebug, "Skipped", slog.String("path", path), slog.String("reason", string(r.Skipped)))

	default:
		logger.LogAttrs(ctx, slog.LevelDebug, "Checked", slog.String("path", path), slog.Int("findings", len(r.Findings)))
	}

	if s.Cache != nil && r.Err == nil && r.Skipped == NotSkipped {
		if err := s.Cache.Put(key, r.Findings); err != nil {
			logger.LogAttrs(ctx, slog.LevelWarn, "Can't write cache", slog.String("path", path), slog.Any("error", err))
		}
	}

	return r
}
