// This is the main entry point for the typeduuid CLI.
// Build with: go build -o bin/typeduuid ./cmd/typeduuid
// Usage: typeduuid <command> [options]
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
