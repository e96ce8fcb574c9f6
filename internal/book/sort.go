package book

import (
	"sort"
	"strings"
)

// SortKeyLength is the number of trailing raw-address characters used to
// order entries.
const SortKeyLength = 4

// SortKey returns the ordering key for a raw line: the last four characters
// of the field following the delimiter, before any checksum encoding is
// applied. Lines without a delimiter key on their own suffix; they fail
// later at parse time.
func SortKey(line string) string {
	s := strings.TrimSpace(line)

	if parts := strings.Split(s, Delimiter); len(parts) >= 2 {
		s = parts[1]
	}

	if len(s) <= SortKeyLength {
		return s
	}

	return s[len(s)-SortKeyLength:]
}

// SortLines orders raw lines ascending by SortKey using byte-wise
// comparison. The sort is stable: lines with equal keys keep their
// original relative order.
func SortLines(lines []string) {
	sort.SliceStable(lines, func(i, j int) bool {
		return SortKey(lines[i]) < SortKey(lines[j])
	})
}
