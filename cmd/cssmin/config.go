package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	"github.com/yacobolo/cssmin/internal/compat"
)

var k = koanf.New(".")

// activeCmd holds the cobra command that was executed, used to check
// whether a flag was explicitly set on the command line.
var activeCmd *cobra.Command

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	activeCmd = cmd

	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".cssmin.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment
// variables. Separated from loadConfig to allow testing without a
// cobra command.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("CSSMIN_", ".", func(s string) string {
		// CSSMIN_MINIFY_TARGETS -> minify.targets
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "CSSMIN_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// flagChanged reports whether the given flag was explicitly set on the command line.
func flagChanged(flagKey string) bool {
	if activeCmd == nil {
		return false
	}
	if f := activeCmd.Flags().Lookup(flagKey); f != nil {
		return f.Changed
	}
	if f := activeCmd.InheritedFlags().Lookup(flagKey); f != nil {
		return f.Changed
	}
	return false
}

func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if flagChanged(flagKey) {
		if v := k.String(flagKey); v != "" {
			return v
		}
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if flagChanged(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

func getStringSliceWithFallback(flagKey, configKey string, defaultVal []string) []string {
	if flagChanged(flagKey) {
		if v := k.Strings(flagKey); len(v) > 0 {
			return v
		}
	}
	if v := k.Strings(configKey); len(v) > 0 {
		return v
	}
	return defaultVal
}

// browserNames maps the compat.Browser enum to the identifiers accepted
// in a --targets value, mirroring the browserslist-style keys a caller
// already knows from npm tooling.
var browserNames = map[string]compat.Browser{
	"chrome":     compat.Chrome,
	"firefox":    compat.Firefox,
	"safari":     compat.Safari,
	"ios_saf":    compat.IOSSafari,
	"ios-safari": compat.IOSSafari,
	"edge":       compat.Edge,
	"opera":      compat.Opera,
	"android":    compat.Android,
	"samsung":    compat.Samsung,
	"ie":         compat.IE,
}

// parseTargets parses a comma-separated "browser version" list such as
// "chrome 100, firefox 91, safari 15.4" into a compat.Targets matrix.
// An empty string returns a nil matrix ("assume modern").
func parseTargets(spec string) (compat.Targets, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, nil
	}

	targets := compat.Targets{}
	for _, entry := range strings.Split(spec, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		fields := strings.Fields(entry)
		if len(fields) != 2 {
			return nil, fmt.Errorf("invalid target entry %q: expected \"browser version\"", entry)
		}
		browser, ok := browserNames[strings.ToLower(fields[0])]
		if !ok {
			return nil, fmt.Errorf("unknown browser %q", fields[0])
		}
		version, err := parseVersion(fields[1])
		if err != nil {
			return nil, fmt.Errorf("invalid version for %q: %w", fields[0], err)
		}
		targets[browser] = version
	}
	return targets, nil
}

func parseVersion(s string) (compat.Version, error) {
	parts := strings.SplitN(s, ".", 3)
	nums := make([]uint32, 3)
	for i := 0; i < len(parts) && i < 3; i++ {
		n, err := strconv.ParseUint(parts[i], 10, 32)
		if err != nil {
			return 0, err
		}
		nums[i] = uint32(n)
	}
	return compat.NewVersion(nums[0], nums[1], nums[2]), nil
}
