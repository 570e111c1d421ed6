// Package main provides the schemastrip CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/schemastrip/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
