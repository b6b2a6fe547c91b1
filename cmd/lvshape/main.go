// SPDX-License-Identifier: MIT

// Command lvshape ingests shape files and reports or queries their metrics.
//
//	lvshape report [file] [--plane XY --offset 1 --sort id]
//	lvshape query  [file] [--name Triangle --min-area 1 --first-quadrant ...]
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		os.Exit(1)
	}
}
