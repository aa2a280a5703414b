// main is the entry point for the windward CLI.
package main

import (
	"os"

	"github.com/sailhq/windward/cmd"
	"github.com/sailhq/windward/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogWarn("Running windward", err)
		os.Exit(1)
	}
}
