// Package main provides the CLI for the leapimport enrollment converter.
package main

import (
	"os"

	"github.com/leapstack-labs/leapimport/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
