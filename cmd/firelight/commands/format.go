// Copyright 2026 The Firelight Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/firelight-tools/firelight/cmd/firelight/cli"
	"github.com/firelight-tools/firelight/lib/config"
	"github.com/firelight-tools/firelight/profile"
)

// FormatCommand returns the "format" subcommand.
func FormatCommand() *cli.Command {
	var indentWidth int
	var tabs bool
	var write bool
	var configPath string

	command := &cli.Command{
		Name:    "format",
		Summary: "Re-indent a profile",
		Description: `Re-indent a firejail profile.

Every line gets one unit of indentation (default two spaces) except
lines beginning with include, blacklist, or whitelist, which stay
flush left. Formatting is idempotent and never changes anything but
each line's leading whitespace.

Reads the file argument or stdin, writes to stdout. With --write the
file is rewritten in place instead.`,
		Usage: "firelight format [file] [flags]",
		Examples: []cli.Example{
			{
				Description: "Format a profile to stdout",
				Command:     "firelight format firefox.profile",
			},
			{
				Description: "Rewrite a profile in place with four-space indentation",
				Command:     "firelight format --write --indent 4 firefox.profile",
			},
			{
				Description: "Format from a pipe",
				Command:     "cat firefox.profile | firelight format",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("format", pflag.ContinueOnError)
			flagSet.IntVar(&indentWidth, "indent", 0, "spaces per indentation unit (default from config, normally 2)")
			flagSet.BoolVar(&tabs, "tabs", false, "indent with tabs instead of spaces")
			flagSet.BoolVar(&write, "write", false, "rewrite the input file in place")
			flagSet.StringVar(&configPath, "config", "", "path to config file")
			return flagSet
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			cfg, err := config.Resolve(configPath)
			if err != nil {
				return err
			}
			opts := profile.Options{Width: cfg.Indent.Width, Tabs: cfg.Indent.Tabs}
			if indentWidth > 0 {
				opts.Width = indentWidth
			}
			if tabs {
				opts.Tabs = true
			}

			source, path, err := readInput(args)
			if err != nil {
				return err
			}

			formatted := profile.Format(source, opts)

			if write {
				if path == "" {
					return fmt.Errorf("--write requires a file argument")
				}
				if formatted == source {
					logger.Info("already formatted", "path", path)
					return nil
				}
				info, err := os.Stat(path)
				if err != nil {
					return fmt.Errorf("stat %s: %w", path, err)
				}
				if err := os.WriteFile(path, []byte(formatted), info.Mode().Perm()); err != nil {
					return fmt.Errorf("writing %s: %w", path, err)
				}
				logger.Info("formatted", "path", path)
				return nil
			}

			_, err = os.Stdout.WriteString(formatted)
			return err
		},
	}
	return command
}
