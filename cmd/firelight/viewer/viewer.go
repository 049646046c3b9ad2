// Copyright 2026 The Firelight Authors
// SPDX-License-Identifier: Apache-2.0

// Package viewer provides the interactive profile viewer TUI command.
// This is a separate package from cmd/firelight/commands so that the
// charmbracelet/bubbletea dependency closure is only linked into
// binaries that actually import it.
package viewer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	"github.com/firelight-tools/firelight/cmd/firelight/cli"
	"github.com/firelight-tools/firelight/profile"
	"github.com/firelight-tools/firelight/render"
)

// Command returns the "view" subcommand that launches the interactive
// profile viewer.
func Command() *cli.Command {
	var themePath string

	return &cli.Command{
		Name:    "view",
		Summary: "Browse a highlighted profile interactively",
		Description: `Open a firejail profile in a scrollable, syntax-highlighted pager.

Keys: up/down or j/k to scroll, page up/down or space/b to page,
g/G for top/bottom, q or escape to quit.`,
		Usage: "firelight view <file> [flags]",
		Examples: []cli.Example{
			{
				Description: "Browse a profile",
				Command:     "firelight view firefox.profile",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("view", pflag.ContinueOnError)
			flagSet.StringVar(&themePath, "theme", "", "path to a JSONC theme file")
			return flagSet
		},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one profile file")
			}
			theme := render.DefaultTheme()
			if themePath != "" {
				var err error
				theme, err = render.LoadTheme(themePath)
				if err != nil {
					return err
				}
			}
			model, err := newModel(args[0], theme)
			if err != nil {
				return err
			}
			program := tea.NewProgram(model, tea.WithAltScreen())
			_, err = program.Run()
			return err
		},
	}
}

// model is the bubbletea model for the profile pager: a fixed header
// line rendered above a bubbles viewport holding the highlighted
// profile body.
type model struct {
	path     string
	lines    []profile.LineSpans
	theme    render.Theme
	viewport viewport.Model
	ready    bool
}

func newModel(path string, theme render.Theme) (*model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	source := string(data)
	return &model{
		path:  path,
		lines: profile.Highlight(source),
		theme: theme,
	}, nil
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		switch message.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			m.viewport.LineUp(1)
		case "down", "j":
			m.viewport.LineDown(1)
		case "pgup", "b":
			m.viewport.HalfViewUp()
		case "pgdown", " ":
			m.viewport.HalfViewDown()
		case "g":
			m.viewport.GotoTop()
		case "G":
			m.viewport.GotoBottom()
		}

	case tea.WindowSizeMsg:
		// One line reserved for the header.
		m.viewport.Width = message.Width
		m.viewport.Height = message.Height - 1
		if !m.ready {
			m.viewport.SetContent(m.renderBody())
			m.ready = true
		}
	}
	return m, nil
}

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}
	return m.headerView() + "\n" + m.viewport.View()
}

// headerView renders the fixed top line: file path, line count, and
// scroll position, truncated to the viewport width.
func (m *model) headerView() string {
	header := fmt.Sprintf("%s — %d lines — %3.0f%%",
		m.path, len(m.lines), m.scrollPercent()*100)
	header = ansi.Truncate(header, m.viewport.Width, "…")
	return m.renderer().NewStyle().Reverse(true).Width(m.viewport.Width).Render(header)
}

// scrollPercent reports how far the viewport is scrolled, 0 at the
// top and 1 when the last line is visible.
func (m *model) scrollPercent() float64 {
	maxOffset := m.viewport.TotalLineCount() - m.viewport.Height
	if maxOffset <= 0 {
		return 1
	}
	return float64(m.viewport.YOffset) / float64(maxOffset)
}

// renderer returns a lipgloss renderer pinned to ANSI256. The TUI
// always renders in color: bubbletea owns the terminal, so profile
// auto-detection would misfire in test environments with no TTY.
func (m *model) renderer() *lipgloss.Renderer {
	renderer := lipgloss.NewRenderer(os.Stdout, termenv.WithProfile(termenv.ANSI256))
	renderer.SetColorProfile(termenv.ANSI256)
	return renderer
}

// renderBody produces the highlighted profile text for the viewport.
func (m *model) renderBody() string {
	renderer := m.renderer()
	var b strings.Builder
	for i, line := range m.lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(render.StyledLine(renderer, m.theme, line))
	}
	return b.String()
}
