package book

import (
	"fmt"
	"regexp"

	"addrbook/internal/address"
)

// CompileOptions configures Compile.
type CompileOptions struct {
	// Pattern, when non-nil, keeps only entries whose checksummed address
	// contains a match. The raw address and the label are never tested.
	Pattern *regexp.Regexp
}

// Compile runs the full pipeline over raw lines: sort by raw-address suffix,
// parse, checksum, filter. The input slice is not modified. The first
// malformed line or uninterpretable address aborts the whole compilation.
func Compile(lines []string, opts CompileOptions) ([]Entry, error) {
	sorted := append([]string(nil), lines...)
	SortLines(sorted)

	entries := make([]Entry, 0, len(sorted))

	for _, line := range sorted {
		label, addr, err := ParseLine(line)
		if err != nil {
			return nil, err
		}

		sum, err := address.Checksum(addr)
		if err != nil {
			return nil, fmt.Errorf("checksumming address for %q: %w", label, err)
		}

		if opts.Pattern != nil && !opts.Pattern.MatchString(sum) {
			continue
		}

		entries = append(entries, Entry{Label: label, Address: addr, Checksummed: sum})
	}

	return entries, nil
}
