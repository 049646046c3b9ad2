// Copyright 2026 The Firelight Authors
// SPDX-License-Identifier: Apache-2.0

// Package profile classifies, highlights, and re-indents firejail
// sandbox profiles.
//
// Profiles are line-oriented: every line stands alone, there is no
// block nesting, and any byte sequence is accepted input. The package
// never rejects a profile; it classifies best-effort and leaves
// anything it does not recognize untouched.
//
// The central pieces are the keyword catalog ([Classify]), which maps
// the ~90 known profile keywords to their [Category]; the forward
// [Tokenizer], which splits a line into word and punctuation runs
// while skipping whitespace and # comments; [HighlightLine] and
// [Highlight], which produce sorted, non-overlapping [Span] values
// for renderers and span export; and [Format] / [IndentFor], which
// apply the single indentation rule of the dialect: every line gets
// one unit of indentation except lines whose first token is include,
// blacklist, or whitelist, which stay flush left.
//
// Everything here is a pure function over its input plus one
// immutable catalog built at init, so all operations are safe for
// concurrent use without synchronization.
package profile
