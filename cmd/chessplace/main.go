// Command chessplace is the interactive/flag-driven front end for the
// search package: it collects (rows, cols, counts) from the command line
// or an interactive prompt, runs the enumerator, and either prints every
// board, counts them, or cross-checks the three traversal strategies
// against each other. None of this file is part of the core: it is the
// "problem input collector", "board formatter" and "CLI surface"
// collaborators described in the core's external-interfaces contract.
package main

import "os"

func main() {
	// newRootCmd leaves SilenceErrors/SilenceUsage at cobra's defaults, so
	// Execute already prints "Error: <message>" to stderr on failure; we
	// only need to translate that into a non-zero exit status.
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
