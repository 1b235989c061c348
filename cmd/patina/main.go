package main

import (
	"os"

	"github.com/runnerr0/patina/internal/cli"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// The parser runs with PrintErrors, so failures are already reported.
	if err := cli.Run(version); err != nil {
		os.Exit(1)
	}
}
