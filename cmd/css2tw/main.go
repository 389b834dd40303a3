// Package main provides the css2tw CLI tool for converting CSS rules into
// Tailwind utility classes.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		var silent *silentError
		if !errors.As(err, &silent) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// silentError fails the process without printing anything more, used when
// the command already reported why (quiet mode or a printed check result).
type silentError struct {
	err error
}

func (e *silentError) Error() string { return e.err.Error() }

func (e *silentError) Unwrap() error { return e.err }
