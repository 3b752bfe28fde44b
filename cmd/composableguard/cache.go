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

	"github.com/spf13/cobra"

	"fillmore-labs.com/composableguard/internal/cache"
)

func newCacheCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the result cache",
	}

	cmd.PersistentFlags().StringVar(&dir, "cache-dir", "", "cache directory (default: user cache directory)")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "clean",
			Short: "Remove all cached results",
			Args:  cobra.NoArgs,
			RunE: func(*cobra.Command, []string) error {
				c, err := openCache(dir)
				if err != nil {
					return err
				}

				return c.Clear()
			},
		},
		&cobra.Command{
			Use:   "dir",
			Short: "Print the cache directory",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				path := dir
				if path == "" {
					var err error
					if path, err = cache.DefaultDir(name); err != nil {
						return err
					}
				}

				_, err := fmt.Fprintln(cmd.OutOrStdout(), path)

				return err
			},
		},
	)

	return cmd
}
