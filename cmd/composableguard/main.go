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

// Command composableguard checks Vue and JavaScript sources for misplaced
// composable and lifecycle hook calls.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const name = "composableguard"

// exitError carries a process exit status without a message.
type exitError struct{ code int }

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	os.Exit(code)
}

func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)

	var ee *exitError
	switch {
	case err == nil:
		return 0

	case errors.As(err, &ee):
		return ee.code

	default:
		fmt.Fprintf(stderr, "%s: %v\n", name, err)

		return 2
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           name,
		Short:         "Check placement of Vue composable and lifecycle hook calls",
		Long:          name + " reports composables and lifecycle hooks called outside of setup(), <script setup>, state stores or other composables, or after an await expression.",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.Version = buildVersion()
	root.AddCommand(newCheckCmd(), newCacheCmd(), newVersionCmd())

	return root
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}
