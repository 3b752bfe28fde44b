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

package run_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"fillmore-labs.com/composableguard/internal/config"
	. "fillmore-labs.com/composableguard/internal/run"
	"fillmore-labs.com/composableguard/internal/source"
)

const component = `<template>
  <div>{{ count }}</div>
</template>

<script setup lang="ts">
import { onMounted, ref } from 'vue'

const count = ref(0)

function load() {
  onMounted(() => {}) // nolint:lifecycle-placement
  useStore()
}

await load()
useIdle()
</script>
`

func TestCheckSource(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	tests := []struct {
		name string
		opts func(o *Options)
		want []string
		skip SkipReason
	}{
		{
			name: "Default",
			opts: func(*Options) {},
			want: []string{"composable-placement:InvalidContext:useStore"},
		},
		{
			name: "IgnoreNoLint",
			opts: func(o *Options) { o.Behavior.Enable(config.IgnoreNoLint) },
			want: []string{
				"lifecycle-placement:InvalidContext:onMounted",
				"composable-placement:InvalidContext:useStore",
			},
		},
		{
			name: "ComposableOnly",
			opts: func(o *Options) {
				o.Rules.Disable(config.LifecyclePlacement)
				o.Behavior.Enable(config.IgnoreNoLint)
			},
			want: []string{"composable-placement:InvalidContext:useStore"},
		},
		{
			name: "NoRules",
			opts: func(o *Options) { o.Rules = config.NewBitMask[config.RuleFlags]() },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			o := DefaultOptions()
			tt.opts(o)

			findings, skip, err := o.CheckSource(ctx, "Counter.vue", []byte(component))
			if err != nil {
				t.Fatalf("CheckSource failed: %v", err)
			}

			if skip != tt.skip {
				t.Errorf("Got skip reason %q, want %q", skip, tt.skip)
			}

			if len(findings) != len(tt.want) {
				t.Fatalf("Got %d findings %+v, want %q", len(findings), findings, tt.want)
			}

			for i, f := range findings {
				if got := f.Rule + ":" + f.Kind + ":" + f.Name; got != tt.want[i] {
					t.Errorf("Finding %d is %s, want %s", i, got, tt.want[i])
				}
			}
		})
	}
}

func TestCheckFinding(t *testing.T) {
	t.Parallel()

	const src = "export async function useA() {\n  await x\n  useB()\n}\n"

	findings, _, err := DefaultOptions().CheckSource(context.Background(), "a.js", []byte(src))
	if err != nil {
		t.Fatalf("CheckSource failed: %v", err)
	}

	if len(findings) != 1 {
		t.Fatalf("Expected one finding, got %+v", findings)
	}

	f := findings[0]

	if f.Pos != (source.Position{Line: 3, Column: 3}) {
		t.Errorf("Got position %+v", f.Pos)
	}

	if f.After == nil || *f.After != (source.Position{Line: 2, Column: 3}) {
		t.Errorf("Got suspension position %+v", f.After)
	}

	if got := src[f.Start:f.End]; got != "useB()" {
		t.Errorf("Got range %q", got)
	}

	if f.Kind != "AfterSuspension" {
		t.Errorf("Got kind %s", f.Kind)
	}
}

func TestSkip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	const generated = "// Code generated by routes-gen. DO NOT EDIT.\n\nfunction bar() { useFoo() }\n"

	o := DefaultOptions()

	if _, skip, _ := o.CheckSource(ctx, "gen.ts", []byte(generated)); skip != SkipGenerated {
		t.Errorf("Got skip reason %q, want %q", skip, SkipGenerated)
	}

	o.Behavior.Enable(config.IncludeGenerated)

	if findings, skip, _ := o.CheckSource(ctx, "gen.ts", []byte(generated)); skip != NotSkipped || len(findings) != 1 {
		t.Errorf("Got %d findings, skip reason %q", len(findings), skip)
	}

	const nolint = "/* nolint:all */\nfunction bar() { useFoo() }\n"

	if _, skip, _ := o.CheckSource(ctx, "a.mjs", []byte(nolint)); skip != SkipNoLint {
		t.Errorf("Got skip reason %q, want %q", skip, SkipNoLint)
	}
}

func TestConfiguredNames(t *testing.T) {
	t.Parallel()

	const src = `
export const useS = defineSetupStore('s', () => {
  const r = useRouter()
  onIdle(() => {})
})
`

	o := DefaultOptions()

	findings, _, err := o.CheckSource(context.Background(), "s.js", []byte(src))
	if err != nil {
		t.Fatalf("CheckSource failed: %v", err)
	}

	if len(findings) != 1 || findings[0].Name != "useRouter" {
		t.Errorf("Got findings %+v, want useRouter", findings)
	}

	o.StoreFactories = []string{"defineSetupStore"}
	o.LifecycleHooks = []string{"onIdle"}

	findings, _, err = o.CheckSource(context.Background(), "s.js", []byte(src))
	if err != nil {
		t.Fatalf("CheckSource failed: %v", err)
	}

	if len(findings) != 1 || findings[0].Name != "onIdle" {
		t.Errorf("Got findings %+v, want onIdle", findings)
	}

	if DefaultOptions().Fingerprint() == o.Fingerprint() {
		t.Error("Fingerprint ignores configured names")
	}
}

type mapCache struct {
	mu sync.Mutex
	m  map[Key][]Finding
}

func (c *mapCache) Get(key Key) ([]Finding, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	f, ok := c.m[key]

	return f, ok
}

func (c *mapCache) Put(key Key, findings []Finding) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.m[key] = findings

	return nil
}

func TestCheckFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	files := map[string]string{
		"ok.js":     "export function useA() { useB() }\n",
		"bad.ts":    "export function a() { useB() }\n",
		"broken.js": "function (\n",
	}

	paths := []string{
		filepath.Join(dir, "ok.js"),
		filepath.Join(dir, "bad.ts"),
		filepath.Join(dir, "broken.js"),
		filepath.Join(dir, "missing.js"),
	}

	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	cache := &mapCache{m: make(map[Key][]Finding)}
	s := &FileSet{Options: DefaultOptions(), Jobs: 2, Cache: cache}

	results, err := s.CheckFiles(context.Background(), paths)
	if err != nil {
		t.Fatalf("CheckFiles failed: %v", err)
	}

	if len(results) != len(paths) {
		t.Fatalf("Got %d results, want %d", len(results), len(paths))
	}

	for i, r := range results {
		if r.Path != paths[i] {
			t.Errorf("Result %d is for %s, want %s", i, r.Path, paths[i])
		}
	}

	if r := results[0]; r.Err != nil || len(r.Findings) != 0 {
		t.Errorf("ok.js: %+v", r)
	}

	if r := results[1]; r.Err != nil || len(r.Findings) != 1 {
		t.Errorf("bad.ts: %+v", r)
	}

	if r := results[2]; !errors.As(r.Err, new(*source.SyntaxError)) {
		t.Errorf("broken.js: expected syntax error, got %v", r.Err)
	}

	if r := results[3]; !errors.Is(r.Err, os.ErrNotExist) {
		t.Errorf("missing.js: expected %v, got %v", os.ErrNotExist, r.Err)
	}

	if len(cache.m) != 2 {
		t.Errorf("Expected 2 cached results, got %d", len(cache.m))
	}

	results, err = s.CheckFiles(context.Background(), paths[:2])
	if err != nil {
		t.Fatalf("CheckFiles failed: %v", err)
	}

	if !results[0].Cached || !results[1].Cached || len(results[1].Findings) != 1 {
		t.Errorf("Expected cached results, got %+v", results)
	}
}

func TestKey(t *testing.T) {
	t.Parallel()

	content := []byte("useFoo()\n")
	o := DefaultOptions()

	js := o.Key("a.js", content)

	if got := o.Key("dir/b.JS", content); got != js {
		t.Error("Expected equal keys for the same extension")
	}

	for _, path := range []string{"a.ts", "a.vue", "a.tsx"} {
		if o.Key(path, content) == js {
			t.Errorf("Expected %s key to differ from a.js", path)
		}
	}

	if o.Key("a.js", []byte("useBar()\n")) == js {
		t.Error("Expected key to depend on content")
	}

	other := DefaultOptions()
	other.Rules.Disable(config.LifecyclePlacement)

	if other.Key("a.js", content) == js {
		t.Error("Expected key to depend on options")
	}
}

func TestCheckFilesCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := &FileSet{Options: DefaultOptions()}
	if _, err := s.CheckFiles(ctx, []string{"a.js"}); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected %v, got %v", context.Canceled, err)
	}
}
