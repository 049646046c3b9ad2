// Copyright 2026 The Firelight Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete firelight CLI command tree.
package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/firelight-tools/firelight/cmd/firelight/cli"
	"github.com/firelight-tools/firelight/cmd/firelight/viewer"
	"github.com/firelight-tools/firelight/lib/version"
)

// Root builds and returns the complete firelight CLI command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "firelight",
		Description: `firelight: firejail profile highlighter and formatter.

Classify, syntax-highlight, and re-indent firejail sandbox profiles.
Profiles are never validated or executed; any input is accepted and
classified best-effort.`,
		Subcommands: []*cli.Command{
			HighlightCommand(),
			FormatCommand(),
			KeywordsCommand(),
			viewer.Command(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					fmt.Printf("firelight %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Highlight a profile on the terminal",
				Command:     "firelight highlight firefox.profile",
			},
			{
				Description: "Re-indent a profile to stdout",
				Command:     "firelight format firefox.profile",
			},
			{
				Description: "Re-indent a profile in place",
				Command:     "firelight format --write firefox.profile",
			},
			{
				Description: "Export highlight spans for an editor integration",
				Command:     "firelight highlight --spans json firefox.profile",
			},
			{
				Description: "Browse a profile interactively",
				Command:     "firelight view firefox.profile",
			},
		},
	}
}
