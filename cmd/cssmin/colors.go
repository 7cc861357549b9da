package main

import "os"

// shouldUseColors determines whether diagnostic output should be
// colorized: an explicit --color flag wins, then common CI color-forcing
// environment variables, then TTY auto-detection.
func shouldUseColors(explicit bool) bool {
	if explicit {
		return true
	}

	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}
