// Copyright 2026 The Firelight Authors
// SPDX-License-Identifier: Apache-2.0

// Package render turns [profile.Highlight] spans into presentable
// output: styled ANSI text for terminals and chroma-formatted HTML
// for export.
//
// A [Theme] maps span kinds and keyword categories to styles. Themes
// are authored on disk as JSONC (JSON with comments and trailing
// commas) and overlay the built-in defaults, so a theme file only
// needs to name the entries it changes.
//
// The ANSI renderer takes an explicit termenv color profile rather
// than auto-detecting: callers decide (the CLI detects the terminal,
// tests pin a profile), keeping rendering deterministic.
package render
