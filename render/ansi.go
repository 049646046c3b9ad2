// Copyright 2026 The Firelight Authors
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/firelight-tools/firelight/profile"
)

// ANSI writes src to w with highlight spans styled per theme. The
// termenv profile is forced rather than auto-detected:
// SetColorProfile is required because lipgloss.Renderer re-detects
// from the environment unless an explicit profile is set, which would
// strip color under tests and pipes even when the caller wants it.
// With termenv.Ascii the output is the input text unchanged.
func ANSI(w io.Writer, src string, theme Theme, colorProfile termenv.Profile) error {
	renderer := lipgloss.NewRenderer(w, termenv.WithProfile(colorProfile))
	renderer.SetColorProfile(colorProfile)

	var b strings.Builder
	for _, line := range profile.Highlight(src) {
		writeStyledLine(&b, renderer, theme, line)
		b.WriteByte('\n')
	}
	out := b.String()
	if !strings.HasSuffix(src, "\n") {
		out = strings.TrimSuffix(out, "\n")
	}
	_, err := io.WriteString(w, out)
	return err
}

// StyledLine renders a single highlighted line to a string, for
// callers that assemble their own display (the interactive viewer).
func StyledLine(renderer *lipgloss.Renderer, theme Theme, line profile.LineSpans) string {
	var b strings.Builder
	writeStyledLine(&b, renderer, theme, line)
	return b.String()
}

func writeStyledLine(b *strings.Builder, renderer *lipgloss.Renderer, theme Theme, line profile.LineSpans) {
	cursor := 0
	for _, span := range line.Spans {
		b.WriteString(line.Text[cursor:span.Start])
		b.WriteString(applyStyle(renderer, theme.styleFor(span), line.Text[span.Start:span.End]))
		cursor = span.End
	}
	b.WriteString(line.Text[cursor:])
}

func applyStyle(renderer *lipgloss.Renderer, style Style, text string) string {
	if style.isZero() {
		return text
	}
	s := renderer.NewStyle()
	if style.Foreground != "" {
		s = s.Foreground(lipgloss.Color(style.Foreground))
	}
	if style.Bold {
		s = s.Bold(true)
	}
	if style.Italic {
		s = s.Italic(true)
	}
	return s.Render(text)
}
