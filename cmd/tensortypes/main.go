// Package main provides the tensortypes CLI.
package main

import (
	"fmt"
	"os"

	"github.com/tensor-types/tensortypes/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
