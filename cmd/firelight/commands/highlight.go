// Copyright 2026 The Firelight Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/firelight-tools/firelight/cmd/firelight/cli"
	"github.com/firelight-tools/firelight/lib/codec"
	"github.com/firelight-tools/firelight/lib/config"
	"github.com/firelight-tools/firelight/profile"
	"github.com/firelight-tools/firelight/render"
)

// SpanRecord is one classified region in span export output. Line is
// 1-based; Start and End are byte offsets within the line, End
// exclusive. Category is empty for non-keyword spans.
type SpanRecord struct {
	Line     int    `json:"line" cbor:"line"`
	Start    int    `json:"start" cbor:"start"`
	End      int    `json:"end" cbor:"end"`
	Kind     string `json:"kind" cbor:"kind"`
	Category string `json:"category,omitempty" cbor:"category,omitempty"`
}

// spanRecords flattens highlight results into export records.
func spanRecords(lines []profile.LineSpans) []SpanRecord {
	records := []SpanRecord{}
	for _, line := range lines {
		for _, span := range line.Spans {
			record := SpanRecord{
				Line:  line.Line,
				Start: span.Start,
				End:   span.End,
				Kind:  span.Kind.String(),
			}
			if span.Kind == profile.KindKeyword {
				record.Category = span.Category.String()
			}
			records = append(records, record)
		}
	}
	return records
}

// HighlightCommand returns the "highlight" subcommand.
func HighlightCommand() *cli.Command {
	var spansEncoding string
	var htmlOut bool
	var styleName string
	var themePath string
	var colorMode string
	var configPath string

	command := &cli.Command{
		Name:    "highlight",
		Summary: "Syntax-highlight a profile",
		Description: `Syntax-highlight a firejail profile.

By default writes ANSI-styled text to stdout, coloring keywords by
category plus comments, ${VARIABLE} references, and paths. Color is
dropped automatically when stdout is not a terminal; override with
--color.

With --spans, emits the raw (line, start, end, kind, category) span
records as JSON or CBOR instead, suitable for editor semantic-
highlighting integrations. With --html, emits a standalone HTML
document styled by a chroma style.`,
		Usage: "firelight highlight [file] [flags]",
		Examples: []cli.Example{
			{
				Description: "Highlight a profile on the terminal",
				Command:     "firelight highlight firefox.profile",
			},
			{
				Description: "Export spans as JSON",
				Command:     "firelight highlight --spans json firefox.profile",
			},
			{
				Description: "Render HTML with the monokai style",
				Command:     "firelight highlight --html --style monokai firefox.profile > firefox.html",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("highlight", pflag.ContinueOnError)
			flagSet.StringVar(&spansEncoding, "spans", "", "emit span records instead of styled text: json or cbor")
			flagSet.BoolVar(&htmlOut, "html", false, "emit a standalone HTML document")
			flagSet.StringVar(&styleName, "style", "github", "chroma style for --html output")
			flagSet.StringVar(&themePath, "theme", "", "path to a JSONC theme file")
			flagSet.StringVar(&colorMode, "color", "", "ANSI color: auto, always, or never")
			flagSet.StringVar(&configPath, "config", "", "path to config file")
			return flagSet
		},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			cfg, err := config.Resolve(configPath)
			if err != nil {
				return err
			}
			if themePath == "" {
				themePath = cfg.Theme
			}
			if colorMode == "" {
				colorMode = cfg.Color
			}

			source, _, err := readInput(args)
			if err != nil {
				return err
			}

			switch {
			case spansEncoding != "":
				return writeSpans(spansEncoding, source)
			case htmlOut:
				return render.HTML(os.Stdout, source, styleName)
			default:
				theme := render.DefaultTheme()
				if themePath != "" {
					theme, err = render.LoadTheme(themePath)
					if err != nil {
						return err
					}
				}
				colorProfile, err := resolveColorProfile(colorMode)
				if err != nil {
					return err
				}
				return render.ANSI(os.Stdout, source, theme, colorProfile)
			}
		},
	}
	return command
}

func writeSpans(encoding, source string) error {
	records := spanRecords(profile.Highlight(source))
	switch encoding {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(records)
	case "cbor":
		return codec.NewEncoder(os.Stdout).Encode(records)
	}
	return fmt.Errorf("unknown span encoding %q (want json or cbor)", encoding)
}

func resolveColorProfile(mode string) (termenv.Profile, error) {
	switch mode {
	case "always":
		return termenv.ANSI256, nil
	case "never":
		return termenv.Ascii, nil
	case "auto", "":
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return termenv.ColorProfile(), nil
		}
		return termenv.Ascii, nil
	}
	return termenv.Ascii, fmt.Errorf("unknown color mode %q (want auto, always, or never)", mode)
}
