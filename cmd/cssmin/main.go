// Package main provides the cssmin CLI: a thin Cobra wrapper around the
// cssmin library for minifying CSS files from the command line.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
