package watch

import (
	"fmt"
	"strings"

	"addrbook/internal/book"
)

// EntryChange describes a single change to the compiled book between two
// consecutive generations.
type EntryChange struct {
	// Kind is one of "added", "removed", or "address-changed".
	Kind string
	// Label is the entry label.
	Label string
	// Detail provides extra information (e.g., old and new address).
	Detail string
}

// EntryDiff compares two compiled books by label and returns the changes.
// When a label appears more than once, the first occurrence wins; the book
// format does not deduplicate, and neither does the diff.
func EntryDiff(prev, curr []book.Entry) []EntryChange {
	prevMap := byLabel(prev)
	currMap := byLabel(curr)

	var changes []EntryChange

	seen := make(map[string]bool)

	for _, e := range prev {
		if seen[e.Label] {
			continue
		}

		seen[e.Label] = true

		if _, ok := currMap[e.Label]; !ok {
			changes = append(changes, EntryChange{Kind: "removed", Label: e.Label, Detail: e.Checksummed})
		}
	}

	seen = make(map[string]bool)

	for _, e := range curr {
		if seen[e.Label] {
			continue
		}

		seen[e.Label] = true

		pe, existed := prevMap[e.Label]
		if !existed {
			changes = append(changes, EntryChange{Kind: "added", Label: e.Label, Detail: e.Checksummed})
			continue
		}

		if pe.Checksummed != e.Checksummed {
			changes = append(changes, EntryChange{
				Kind:   "address-changed",
				Label:  e.Label,
				Detail: fmt.Sprintf("%s -> %s", pe.Checksummed, e.Checksummed),
			})
		}
	}

	return changes
}

// DiffSummary returns a human-readable one-line summary.
func DiffSummary(changes []EntryChange) string {
	var added, removed, changed int

	for _, c := range changes {
		switch c.Kind {
		case "added":
			added++
		case "removed":
			removed++
		case "address-changed":
			changed++
		}
	}

	if added == 0 && removed == 0 && changed == 0 {
		return "no entry changes"
	}

	parts := make([]string, 0, 3)

	if added > 0 {
		parts = append(parts, fmt.Sprintf("+%d entry(ies) added", added))
	}

	if removed > 0 {
		parts = append(parts, fmt.Sprintf("-%d entry(ies) removed", removed))
	}

	if changed > 0 {
		parts = append(parts, fmt.Sprintf("~%d address(es) changed", changed))
	}

	return strings.Join(parts, ", ")
}

func byLabel(entries []book.Entry) map[string]book.Entry {
	m := make(map[string]book.Entry, len(entries))

	for _, e := range entries {
		if _, ok := m[e.Label]; !ok {
			m[e.Label] = e
		}
	}

	return m
}
