// Copyright 2026 The Firelight Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/firelight-tools/firelight/cmd/firelight/cli"
	"github.com/firelight-tools/firelight/profile"
)

// KeywordsCommand returns the "keywords" subcommand.
func KeywordsCommand() *cli.Command {
	var jsonOut bool

	command := &cli.Command{
		Name:    "keywords",
		Summary: "List the keyword catalog",
		Description: `List the keywords firelight recognizes, with their categories.

An optional positional argument filters by category: directive,
option, private-option, dbus-option, special-option, landlock-option,
or allow-option.`,
		Usage: "firelight keywords [category] [flags]",
		Examples: []cli.Example{
			{
				Description: "List every keyword",
				Command:     "firelight keywords",
			},
			{
				Description: "List only the dbus options",
				Command:     "firelight keywords dbus-option",
			},
			{
				Description: "Machine-readable catalog",
				Command:     "firelight keywords --json",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("keywords", pflag.ContinueOnError)
			flagSet.BoolVar(&jsonOut, "json", false, "emit the catalog as JSON")
			return flagSet
		},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			var keywords []profile.Keyword
			switch len(args) {
			case 0:
				keywords = profile.Keywords()
			case 1:
				category, ok := profile.ParseCategory(args[0])
				if !ok {
					return fmt.Errorf("unknown category %q", args[0])
				}
				keywords = profile.Keywords(category)
			default:
				return fmt.Errorf("expected at most one category argument")
			}

			if jsonOut {
				type entry struct {
					Keyword  string `json:"keyword"`
					Category string `json:"category"`
				}
				entries := make([]entry, len(keywords))
				for i, kw := range keywords {
					entries[i] = entry{Keyword: kw.Text, Category: kw.Category.String()}
				}
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")
				return encoder.Encode(entries)
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			for _, kw := range keywords {
				fmt.Fprintf(tw, "%s\t%s\n", kw.Text, kw.Category)
			}
			return tw.Flush()
		},
	}
	return command
}
