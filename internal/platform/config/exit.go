package config

import (
	"fmt"
	"os"
)

// Process exit statuses shared by CLI entry points.
const (
	ExitOK      = 0
	ExitFailure = 1
)

// Exitf writes a formatted error message to stderr and exits with ExitFailure.
// It provides a consistent fatal-exit pattern for CLI entry points.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(ExitFailure)
}
