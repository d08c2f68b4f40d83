// Package main is the entry point for the projsize command.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/projsize/internal/cli"
)

// version is set via ldflags during build.
var version = "dev"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
