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

package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"fillmore-labs.com/composableguard/internal/cache"
	"fillmore-labs.com/composableguard/internal/config"
	"fillmore-labs.com/composableguard/internal/diagfmt"
	"fillmore-labs.com/composableguard/internal/run"
	"fillmore-labs.com/composableguard/internal/source"
)

type checkFlags struct {
	format         diagfmt.Format
	color          diagfmt.ColorMode
	jobs           int
	configPath     string
	cache          bool
	cacheDir       string
	generated      bool
	composable     bool
	lifecycle      bool
	storeFactories []string
	lifecycleHooks []string
	verbose        bool
}

func newCheckCmd() *cobra.Command {
	var f checkFlags

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check frontend sources",
		Long:  "Check " + strings.Join(source.Extensions(), " ") + " files in the given files and directories, the current directory by default.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, &f, args)
		},
	}

	flags := cmd.Flags()
	flags.Var(&f.format, "format", "output format (pretty|short|json)")
	flags.Var(&f.color, "color", "colorize output (auto|on|off)")
	flags.IntVarP(&f.jobs, "jobs", "j", 0, "max parallel checks (0=auto)")
	flags.StringVar(&f.configPath, "config", "", "configuration file (default: search .composableguard.{yaml,yml,toml,json} upwards)")
	flags.BoolVar(&f.cache, "cache", false, "cache results by file content")
	flags.StringVar(&f.cacheDir, "cache-dir", "", "cache directory (default: user cache directory)")
	flags.BoolVar(&f.generated, "generated", false, "check generated files")
	flags.BoolVar(&f.composable, "composable-placement", true, "check placement of composable calls")
	flags.BoolVar(&f.lifecycle, "lifecycle-placement", true, "check placement of lifecycle hook calls")
	flags.StringSliceVar(&f.storeFactories, "store-factories", nil, "additional state-store definition functions")
	flags.StringSliceVar(&f.lifecycleHooks, "lifecycle-hooks", nil, "additional lifecycle hook names")
	flags.BoolVarP(&f.verbose, "verbose", "v", false, "log progress to stderr")

	return cmd
}

func runCheck(cmd *cobra.Command, f *checkFlags, args []string) error {
	ctx := cmd.Context()

	level := slog.LevelWarn
	if f.verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	cfg, root, err := loadConfig(f.configPath, logger)
	if err != nil {
		return err
	}

	if err := f.merge(cmd, cfg); err != nil {
		return err
	}

	opts := f.options(cfg)
	logger.LogAttrs(ctx, slog.LevelDebug, "Options", slog.Any("options", opts))

	if len(args) == 0 {
		args = []string{"."}
	}

	paths, err := collectFiles(args, exclusion{root: root, patterns: cfg.Exclude})
	if err != nil {
		return err
	}

	logger.LogAttrs(ctx, slog.LevelDebug, "Collected files", slog.Int("files", len(paths)))

	fileSet := run.FileSet{Options: opts, Jobs: f.jobs, Logger: logger}

	if f.cache {
		c, err := openCache(f.cacheDir)
		if err != nil {
			return err
		}

		logger.LogAttrs(ctx, slog.LevelDebug, "Using cache", slog.String("dir", c.Dir()))
		fileSet.Cache = c
	}

	results, err := fileSet.CheckFiles(ctx, paths)
	if err != nil {
		return err
	}

	for _, r := range results {
		if r.Err != nil {
			logger.LogAttrs(ctx, slog.LevelError, "Check failed", slog.String("path", r.Path), slog.Any("error", r.Err))
		}
	}

	out := cmd.OutOrStdout()
	printer := diagfmt.Printer{Format: f.format, Color: f.color.Enabled(isTerminal(out))}

	if err := printer.Print(out, results); err != nil {
		return fmt.Errorf("can't write results: %w", err)
	}

	switch findings, failed := diagfmt.Count(results); {
	case failed > 0:
		return &exitError{code: 2}

	case findings > 0:
		return &exitError{code: 1}

	default:
		return nil
	}
}

// loadConfig returns the configuration and the directory exclusion patterns are relative to.
func loadConfig(path string, logger *slog.Logger) (*config.File, string, error) {
	if path == "" {
		found, ok, err := config.Find(".")
		if err != nil {
			return nil, "", err
		}

		if !ok {
			root, err := filepath.Abs(".")

			return &config.File{}, root, err
		}

		path = found
	}

	logger.Debug("Loading configuration", slog.String("path", path))

	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}

	path, err = filepath.Abs(path)
	if err != nil {
		return nil, "", err
	}

	return cfg, filepath.Dir(path), nil
}

// merge applies configuration file settings for flags not given on the command line.
func (f *checkFlags) merge(cmd *cobra.Command, cfg *config.File) error {
	changed := cmd.Flags().Changed

	if !changed("format") && cfg.Format != "" {
		if err := f.format.Set(cfg.Format); err != nil {
			return err
		}
	}

	if !changed("jobs") && cfg.Jobs > 0 {
		f.jobs = cfg.Jobs
	}

	mergeBool(&f.cache, changed("cache"), cfg.Cache)
	mergeBool(&f.generated, changed("generated"), cfg.Generated)
	mergeBool(&f.composable, changed("composable-placement"), cfg.Rules.ComposablePlacement)
	mergeBool(&f.lifecycle, changed("lifecycle-placement"), cfg.Rules.LifecyclePlacement)

	return nil
}

func mergeBool(flag *bool, changed bool, value *bool) {
	if !changed && value != nil {
		*flag = *value
	}
}

func (f *checkFlags) options(cfg *config.File) *run.Options {
	opts := run.DefaultOptions()

	opts.Rules.Set(config.ComposablePlacement, f.composable)
	opts.Rules.Set(config.LifecyclePlacement, f.lifecycle)
	opts.Behavior.Set(config.IncludeGenerated, f.generated)
	opts.StoreFactories = append(append(opts.StoreFactories, cfg.StoreFactories...), f.storeFactories...)
	opts.LifecycleHooks = append(append(opts.LifecycleHooks, cfg.LifecycleHooks...), f.lifecycleHooks...)

	return opts
}

func openCache(dir string) (*cache.Disk, error) {
	if dir == "" {
		var err error
		if dir, err = cache.DefaultDir(name); err != nil {
			return nil, err
		}
	}

	return cache.Open(dir)
}
