// SPDX-License-Identifier: MIT

// Command hill encodes and decodes text with a Hill cipher.
//
//	hill encode --key "2 3; 1 1" HELP          → 5 13 20 2
//	hill decode --key "2 3; 1 1" 5 13 20 2     → HELP
//	hill validate --key-file key.toml
//	hill interactive
package main

import (
	"context"
	"errors"
	"os"

	"github.com/charmbracelet/fang"
)

// Version is the semantic version (set via -ldflags).
var Version = "dev"

func main() {
	root := newRootCmd()
	if err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
