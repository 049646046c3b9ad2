// Copyright 2026 The Firelight Authors
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

const sampleProfile = "# firefox profile\nnoblacklist ${HOME}/.mozilla\ninclude firefox.local\nprivate-bin firefox\nseccomp\n"

func TestANSIAsciiProfilePassesThrough(t *testing.T) {
	var out strings.Builder
	if err := ANSI(&out, sampleProfile, DefaultTheme(), termenv.Ascii); err != nil {
		t.Fatalf("ANSI failed: %v", err)
	}
	if out.String() != sampleProfile {
		t.Errorf("Ascii render = %q, want input unchanged", out.String())
	}
}

func TestANSIColoredOutput(t *testing.T) {
	var out strings.Builder
	if err := ANSI(&out, sampleProfile, DefaultTheme(), termenv.ANSI256); err != nil {
		t.Fatalf("ANSI failed: %v", err)
	}
	rendered := out.String()
	if !strings.Contains(rendered, "\x1b[") {
		t.Error("ANSI256 render contains no escape sequences")
	}
	// Styling never changes the text content.
	if stripped := ansi.Strip(rendered); stripped != sampleProfile {
		t.Errorf("stripped render = %q, want %q", stripped, sampleProfile)
	}
}

func TestANSIPreservesMissingTrailingNewline(t *testing.T) {
	var out strings.Builder
	if err := ANSI(&out, "noroot", DefaultTheme(), termenv.Ascii); err != nil {
		t.Fatalf("ANSI failed: %v", err)
	}
	if out.String() != "noroot" {
		t.Errorf("render = %q, want %q", out.String(), "noroot")
	}
}

func TestANSIEmptyInput(t *testing.T) {
	var out strings.Builder
	if err := ANSI(&out, "", DefaultTheme(), termenv.ANSI256); err != nil {
		t.Fatalf("ANSI failed: %v", err)
	}
	if out.String() != "" {
		t.Errorf("render of empty input = %q", out.String())
	}
}
