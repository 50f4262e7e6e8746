// Package main provides the entry point for the foodindex CLI.
package main

import (
	"os"

	"github.com/dietsurvey/foodindex/cmd/foodindex/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
