// Copyright 2026 The Firelight Authors
// SPDX-License-Identifier: Apache-2.0

package profile

import "strings"

// DefaultIndentWidth is the number of spaces per indentation unit
// when Options does not specify one.
const DefaultIndentWidth = 2

// Options configures formatting.
type Options struct {
	// Width is the number of spaces per indentation unit. Zero or
	// negative means DefaultIndentWidth. Ignored when Tabs is set.
	Width int

	// Tabs emits one tab per indentation unit instead of spaces.
	Tabs bool
}

func (o Options) unit() string {
	if o.Tabs {
		return "\t"
	}
	width := o.Width
	if width <= 0 {
		width = DefaultIndentWidth
	}
	return strings.Repeat(" ", width)
}

// flushLeft is the exact set of keywords whose lines stay at column
// zero. The dialect's other directives (noblacklist, mkdir, ignore)
// are deliberately absent: the observed rule indents them like any
// other line.
var flushLeft = map[string]bool{
	"include":   true,
	"blacklist": true,
	"whitelist": true,
}

// IndentFor returns the indentation level for a single line: 0 when
// the line's first token is exactly include, blacklist, or whitelist
// (case-sensitive), otherwise 1. The result depends only on the line
// itself, never on surrounding lines, so re-indentation is
// idempotent. Profiles have no block nesting; there is no deeper
// level than 1.
func IndentFor(line string) int {
	token, ok := NewTokenizer(line).Next()
	if ok && token.Kind == KindWord && flushLeft[token.Text] {
		return 0
	}
	return 1
}

// Format replaces each line's leading whitespace with the indentation
// computed by [IndentFor]: one unit per level, spaces by default,
// tabs when Options.Tabs is set. Lines that are empty or contain only
// whitespace format to empty lines. The rest of each line, including
// interior and trailing whitespace, is preserved byte for byte, so
// formatting already-formatted text returns identical output.
func Format(src string, opts Options) string {
	unit := opts.unit()
	lines := strings.Split(src, "\n")
	var b strings.Builder
	b.Grow(len(src) + len(lines)*len(unit))
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		content := strings.TrimLeft(line, " \t")
		if content == "" {
			continue
		}
		for level := IndentFor(content); level > 0; level-- {
			b.WriteString(unit)
		}
		b.WriteString(content)
	}
	return b.String()
}
