// Package main provides the CLI for the chemparse formula toolkit.
package main

import (
	"os"

	"github.com/chemstack-labs/chemparse/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
