// Copyright 2026 The Firelight Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"
	"os"
)

// readInput returns the profile source from the first positional
// argument, or from stdin when no argument (or "-") is given. The
// returned path is empty for stdin.
func readInput(args []string) (string, string, error) {
	if len(args) > 1 {
		return "", "", fmt.Errorf("expected at most one input file, got %d arguments", len(args))
	}
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), "", nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), args[0], nil
}
