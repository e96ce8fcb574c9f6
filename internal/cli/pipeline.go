package cli

import (
	"context"
	"fmt"
	"os"
	"regexp"

	"addrbook/internal/book"
	"addrbook/internal/config"
)

// DefaultBookFile is the book read when no file argument is given.
const DefaultBookFile = "output.txt"

// readBookFile opens path, drains it into lines, and releases the file
// handle before any parsing or sorting happens.
func readBookFile(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // user-supplied path is the point
	if err != nil {
		return nil, fmt.Errorf("opening book file: %w", err)
	}
	defer f.Close()

	return book.ReadLines(f)
}

// resolvePattern compiles the filter pattern from either a raw regular
// expression or a named profile. Returns nil when no filtering is requested.
func resolvePattern(ctx context.Context, pattern, profile string) (*regexp.Regexp, error) {
	if pattern != "" && profile != "" {
		return nil, fmt.Errorf("--pattern and --profile are mutually exclusive")
	}

	if profile != "" {
		var custom map[string]book.ProfileConfig

		if data, err := tryReadConfigFile(ctx); err == nil && data != nil {
			custom, _ = book.ParseCustomProfiles(data)
		}

		return book.ResolveProfile(profile, custom)
	}

	if pattern == "" {
		return nil, nil //nolint:nilnil // intentional: no filtering configured
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	return re, nil
}

// tryReadConfigFile reads the raw config file bytes for the profiles
// section. It prefers the path resolved by viper (respects --config) and
// falls back to .addrbook.yaml in the current directory.
func tryReadConfigFile(ctx context.Context) ([]byte, error) {
	cfg := config.FromContext(ctx)
	if cfg.ConfigFile != "" {
		return os.ReadFile(cfg.ConfigFile)
	}

	return os.ReadFile(".addrbook.yaml")
}
