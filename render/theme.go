// Copyright 2026 The Firelight Authors
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/firelight-tools/firelight/profile"
)

// Style describes the visual treatment of one span kind or keyword
// category. Foreground accepts anything lipgloss does: an ANSI 256
// index ("63") or a hex code ("#7aa2f7"). The zero Style renders as
// plain text.
type Style struct {
	Foreground string `json:"foreground,omitempty"`
	Bold       bool   `json:"bold,omitempty"`
	Italic     bool   `json:"italic,omitempty"`
}

func (s Style) isZero() bool {
	return s.Foreground == "" && !s.Bold && !s.Italic
}

// Theme maps highlight span kinds and keyword categories to styles.
// JSON field names match Category.String() and Kind.String() so a
// theme file reads the same as span export output.
type Theme struct {
	Comment        Style `json:"comment"`
	Directive      Style `json:"directive"`
	Option         Style `json:"option"`
	PrivateOption  Style `json:"private-option"`
	DbusOption     Style `json:"dbus-option"`
	SpecialOption  Style `json:"special-option"`
	LandlockOption Style `json:"landlock-option"`
	AllowOption    Style `json:"allow-option"`
	Variable       Style `json:"variable"`
	Path           Style `json:"path"`
}

// DefaultTheme returns the built-in palette. ANSI 256 indexes, chosen
// to read on both dark and light backgrounds.
func DefaultTheme() Theme {
	return Theme{
		Comment:        Style{Foreground: "245", Italic: true},
		Directive:      Style{Foreground: "203", Bold: true},
		Option:         Style{Foreground: "75"},
		PrivateOption:  Style{Foreground: "141"},
		DbusOption:     Style{Foreground: "72"},
		SpecialOption:  Style{Foreground: "179"},
		LandlockOption: Style{Foreground: "137"},
		AllowOption:    Style{Foreground: "114"},
		Variable:       Style{Foreground: "215", Bold: true},
		Path:           Style{Foreground: "110"},
	}
}

// LoadTheme reads a JSONC theme file and overlays it on the default
// theme. Comments and trailing commas are stripped before decoding,
// so theme files can document their choices inline. Entries absent
// from the file keep their defaults.
func LoadTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("reading theme: %w", err)
	}
	theme := DefaultTheme()
	if err := json.Unmarshal(jsonc.ToJSON(data), &theme); err != nil {
		return Theme{}, fmt.Errorf("%s: %w", path, err)
	}
	return theme, nil
}

// styleFor returns the theme entry for a span. Word and punctuation
// spans (which the highlighter does not emit) and unknown kinds get
// the zero style.
func (t Theme) styleFor(span profile.Span) Style {
	switch span.Kind {
	case profile.KindComment:
		return t.Comment
	case profile.KindVariable:
		return t.Variable
	case profile.KindPath:
		return t.Path
	case profile.KindKeyword:
		switch span.Category {
		case profile.CategoryDirective:
			return t.Directive
		case profile.CategoryOption:
			return t.Option
		case profile.CategoryPrivateOption:
			return t.PrivateOption
		case profile.CategoryDbusOption:
			return t.DbusOption
		case profile.CategorySpecialOption:
			return t.SpecialOption
		case profile.CategoryLandlockOption:
			return t.LandlockOption
		case profile.CategoryAllowOption:
			return t.AllowOption
		}
	}
	return Style{}
}
