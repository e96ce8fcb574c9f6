package book

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Delimiter separates the label from the address in a book line.
const Delimiter = " => "

// ErrMalformedLine is returned when a line does not split into exactly
// a non-empty label and a non-empty address.
var ErrMalformedLine = errors.New("malformed book line")

// Entry is a single parsed and normalized book entry.
type Entry struct {
	// Label is the left-hand side of the line, emitted verbatim.
	Label string

	// Address is the raw right-hand side as read from the file.
	Address string

	// Checksummed is the canonical EIP-55 form of Address.
	Checksummed string
}

// ReadLines consumes r fully and returns its lines with trailing newlines
// stripped. The reader is fully drained before any further processing, so
// file handles can be released early.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading lines: %w", err)
	}

	return lines, nil
}

// ParseLine splits a raw line on the delimiter. Exactly two non-empty parts
// are required; anything else is a malformed-line error carrying the
// offending line.
func ParseLine(line string) (label, addr string, err error) {
	parts := strings.Split(strings.TrimSpace(line), Delimiter)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%w: %q split into %d part(s)", ErrMalformedLine, line, len(parts))
	}

	return parts[0], parts[1], nil
}
