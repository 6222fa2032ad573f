// Package main is the entry point for the keychord CLI.
package main

import (
	"fmt"
	"os"

	"github.com/dshills/keychord/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
