package output

import (
	"bytes"
	"fmt"
	"io"

	"addrbook/internal/book"
)

// EncodeOptions configures the JSON block encoder.
type EncodeOptions struct {
	// StrictJSON omits the comma on the final entry so the block is valid
	// JSON. The legacy format puts a trailing comma on every entry line,
	// including the last one, and existing consumers depend on those bytes.
	StrictJSON bool
}

// Encoder streams a book as a JSON object block: a "{" line, one
// tab-indented `"label": "address",` line per entry, and a "}" line.
// Labels and addresses are written verbatim, with no escaping.
//
// Streaming matters for error fidelity: when a malformed line aborts a run
// mid-book, everything already written stays written and the closing brace
// is never emitted.
type Encoder struct {
	w    io.Writer
	opts EncodeOptions

	// pending holds the previous entry line in strict mode, so the comma
	// decision can be deferred until we know whether another entry follows.
	pending  string
	havePrev bool
}

// NewEncoder creates an encoder writing to w.
func NewEncoder(w io.Writer, opts EncodeOptions) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Begin writes the opening brace line.
func (e *Encoder) Begin() error {
	if _, err := fmt.Fprintln(e.w, "{"); err != nil {
		return fmt.Errorf("writing opening brace: %w", err)
	}

	return nil
}

// WriteEntry writes a single entry line.
func (e *Encoder) WriteEntry(label, checksummed string) error {
	// Quotes are literal: labels are emitted verbatim even when they
	// themselves contain a double quote.
	line := fmt.Sprintf("\t\"%s\": \"%s\"", label, checksummed)

	if !e.opts.StrictJSON {
		if _, err := fmt.Fprintf(e.w, "%s,\n", line); err != nil {
			return fmt.Errorf("writing entry: %w", err)
		}

		return nil
	}

	if e.havePrev {
		if _, err := fmt.Fprintf(e.w, "%s,\n", e.pending); err != nil {
			return fmt.Errorf("writing entry: %w", err)
		}
	}

	e.pending = line
	e.havePrev = true

	return nil
}

// End flushes any held-back entry and writes the closing brace line.
func (e *Encoder) End() error {
	if e.opts.StrictJSON && e.havePrev {
		if _, err := fmt.Fprintf(e.w, "%s\n", e.pending); err != nil {
			return fmt.Errorf("writing entry: %w", err)
		}

		e.havePrev = false
	}

	if _, err := fmt.Fprintln(e.w, "}"); err != nil {
		return fmt.Errorf("writing closing brace: %w", err)
	}

	return nil
}

// Encode renders a fully compiled book as one buffered block. Consumers that
// need the whole output at once (diff, watch, the library API) use this
// instead of the streaming encoder.
func Encode(entries []book.Entry, opts EncodeOptions) ([]byte, error) {
	var buf bytes.Buffer

	enc := NewEncoder(&buf, opts)

	if err := enc.Begin(); err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if err := enc.WriteEntry(entry.Label, entry.Checksummed); err != nil {
			return nil, err
		}
	}

	if err := enc.End(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
