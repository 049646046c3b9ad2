// Copyright 2026 The Firelight Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli implements the command tree for the firelight CLI:
// command dispatch over spf13/pflag flag sets, structured help
// output, typo suggestions for unknown subcommands and flags, and
// the shared command logger.
package cli
