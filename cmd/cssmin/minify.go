package main

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/yacobolo/cssmin"
	"github.com/yacobolo/cssmin/internal/compat"
	"github.com/yacobolo/cssmin/internal/cssast"
)

var minifyCmd = &cobra.Command{
	Use:   "minify [glob...]",
	Short: "Fold shorthands, down-level logical properties, and emit fallbacks for matched CSS files",
	Long: `minify parses every file matched by the given globs (default
"**/*.css"), folds property shorthands, rewrites logical properties
against --targets, and writes the result to stdout (or --write to
rewrite files in place).`,
	RunE: runMinify,
}

func init() {
	minifyCmd.Flags().StringSlice("include", nil, "Glob patterns for CSS input files")
	minifyCmd.Flags().String("targets", "", `Browser target matrix, e.g. "chrome 90, safari 14"`)
	minifyCmd.Flags().Bool("write", false, "Rewrite matched files in place instead of printing to stdout")
}

func runMinify(cmd *cobra.Command, args []string) error {
	if err := loadConfig(cmd); err != nil {
		return err
	}

	patterns := args
	if len(patterns) == 0 {
		patterns = getStringSliceWithFallback("include", "minify.include", []string{"**/*.css"})
	}

	targetSpec := getStringWithFallback("targets", "minify.targets", "")
	targets, err := parseTargets(targetSpec)
	if err != nil {
		return fmt.Errorf("parsing targets: %w", err)
	}

	write := getBoolWithFallback("write", "minify.write", false)
	verbose := getBoolWithFallback("verbose", "verbose", false)

	files, err := expandGlobs(patterns)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "cssmin: no files matched")
		return nil
	}

	useColor := shouldUseColors(getBoolWithFallback("color", "color", false))
	red := color.New(color.FgRed, color.Bold)

	exitCode := 0
	for _, path := range files {
		if verbose {
			fmt.Fprintf(os.Stderr, "cssmin: minifying %s\n", path)
		}

		out, err := minifyFile(path, targets)
		if err != nil {
			exitCode = 1
			reportError(red, useColor, path, err)
			continue
		}

		if write {
			if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
				exitCode = 1
				reportError(red, useColor, path, err)
			}
			continue
		}

		fmt.Print(out)
	}

	if exitCode != 0 {
		os.Exit(exitCode)
	}
	return nil
}

func minifyFile(path string, targets compat.Targets) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	rules, err := cssast.ParseStyleSheet(string(content))
	if err != nil {
		return "", &cssmin.ParseError{Err: err}
	}

	sheet := &cssmin.StyleSheet{Rules: rules, Sources: []string{path}}
	minified, err := sheet.Minify(cssmin.MinifyOptions{Targets: targets})
	if err != nil {
		return "", err
	}

	return cssast.Print(minified), nil
}

func expandGlobs(patterns []string) ([]string, error) {
	var out []string
	seen := make(map[string]bool)
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	return out, nil
}

func reportError(red *color.Color, useColor bool, path string, err error) {
	msg := fmt.Sprintf("%s: %v", path, err)
	if useColor {
		red.Fprintln(os.Stderr, msg)
		return
	}
	fmt.Fprintln(os.Stderr, msg)
}
