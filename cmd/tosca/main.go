package main

import (
	"os"
	"runtime"
)

// Build-time variables (set via -ldflags by the build system)
var (
	version   = "dev"
	buildTime = "unknown"
	gitCommit = "unknown"
	goVersion = runtime.Version()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
