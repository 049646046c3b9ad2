// Copyright 2026 The Firelight Authors
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"strings"
	"testing"
)

func TestHTMLOutput(t *testing.T) {
	var out strings.Builder
	if err := HTML(&out, sampleProfile, "github"); err != nil {
		t.Fatalf("HTML failed: %v", err)
	}
	rendered := out.String()
	if !strings.Contains(rendered, "<html>") {
		t.Error("expected standalone HTML document")
	}
	for _, want := range []string{"noblacklist", "private-bin", "firefox profile"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestHTMLUnknownStyleFallsBack(t *testing.T) {
	var out strings.Builder
	if err := HTML(&out, "noroot\n", "no-such-style"); err != nil {
		t.Fatalf("HTML failed: %v", err)
	}
	if !strings.Contains(out.String(), "noroot") {
		t.Error("output missing source text")
	}
}
