// Package main is the entry point for the impala-dialect CLI.
package main

import (
	"fmt"
	"os"

	"github.com/datagrove-io/impala-dialect/cli/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
