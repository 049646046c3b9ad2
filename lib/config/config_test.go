// Copyright 2026 The Firelight Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Indent.Width != 2 {
		t.Errorf("default indent width = %d, want 2", cfg.Indent.Width)
	}
	if cfg.Indent.Tabs {
		t.Error("default should use spaces, not tabs")
	}
	if cfg.Color != "auto" {
		t.Errorf("default color = %q, want auto", cfg.Color)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
indent:
  width: 4
  tabs: true
theme: /etc/firelight/theme.jsonc
color: never
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Indent.Width != 4 || !cfg.Indent.Tabs {
		t.Errorf("indent = %+v, want width 4 tabs", cfg.Indent)
	}
	if cfg.Theme != "/etc/firelight/theme.jsonc" {
		t.Errorf("theme = %q", cfg.Theme)
	}
	if cfg.Color != "never" {
		t.Errorf("color = %q, want never", cfg.Color)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("theme: my.jsonc\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Indent.Width != 2 || cfg.Color != "auto" {
		t.Errorf("partial config lost defaults: %+v", cfg)
	}
}

func TestLoadInvalidColor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("color: sometimes\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid color mode")
	}
}

func TestResolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("color: always\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Resolve(path)
	if err != nil {
		t.Fatalf("Resolve with flag failed: %v", err)
	}
	if cfg.Color != "always" {
		t.Errorf("color = %q, want always", cfg.Color)
	}

	t.Setenv(EnvConfigPath, path)
	cfg, err = Resolve("")
	if err != nil {
		t.Fatalf("Resolve with env failed: %v", err)
	}
	if cfg.Color != "always" {
		t.Errorf("color = %q, want always", cfg.Color)
	}

	t.Setenv(EnvConfigPath, "")
	cfg, err = Resolve("")
	if err != nil {
		t.Fatalf("Resolve with defaults failed: %v", err)
	}
	if cfg.Color != "auto" {
		t.Errorf("color = %q, want auto", cfg.Color)
	}
}
