// Package addrbook provides a public Go API for formatting address book
// files into EIP-55 checksummed JSON-like output.
//
// This package exposes the addrbook format pipeline as a library, allowing
// programmatic use without the CLI.
//
// Basic usage:
//
//	result, err := addrbook.Format(ctx, "output.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(string(result.Output))
//
// With options:
//
//	result, err := addrbook.Format(ctx, "output.txt",
//	    addrbook.WithPattern("^0xA"),
//	    addrbook.WithStrictJSON(),
//	)
package addrbook

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"

	"addrbook/internal/book"
	"addrbook/internal/output"
)

// Option configures the format pipeline.
type Option func(*options)

type options struct {
	pattern        string
	customProfiles []byte
	profile        string
	strictJSON     bool
}

// --- Filtering ---

// WithPattern filters entries by a regular expression matched against the
// checksummed address (search semantics, not anchored).
func WithPattern(pattern string) Option { return func(o *options) { o.pattern = pattern } }

// WithProfile selects a named filter profile. Built-in profiles are always
// available; custom profiles require WithCustomProfiles.
func WithProfile(name string) Option { return func(o *options) { o.profile = name } }

// WithCustomProfiles sets raw YAML bytes of a .addrbook.yaml config. When
// set, its profiles section extends the built-in profile table.
func WithCustomProfiles(data []byte) Option {
	return func(o *options) { o.customProfiles = data }
}

// --- Output ---

// WithStrictJSON omits the trailing comma after the last entry so the
// output parses as standard JSON.
func WithStrictJSON() Option { return func(o *options) { o.strictJSON = true } }

// Result holds the output of a successful format run.
type Result struct {
	// Output is the rendered output bytes.
	Output []byte

	// Entries are the checksummed entries in output order, after filtering.
	Entries []book.Entry

	// LineCount is the number of lines read from the book file.
	LineCount int
}

// Format reads an address book file, sorts and checksums its entries, and
// renders them as a JSON-like object.
//
// Pass no options to use all defaults:
//
//	result, err := addrbook.Format(ctx, "output.txt")
func Format(ctx context.Context, path string, opts ...Option) (*Result, error) {
	if path == "" {
		return nil, errors.New("book path must not be empty")
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 1. Resolve the filter pattern.
	re, err := resolvePattern(o)
	if err != nil {
		return nil, err
	}

	// 2. Read the book file.
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading book: %w", err)
	}

	lines, err := book.ReadLines(f)

	closeErr := f.Close()

	if err != nil {
		return nil, fmt.Errorf("reading book: %w", err)
	}

	if closeErr != nil {
		return nil, fmt.Errorf("reading book: %w", closeErr)
	}

	// 3. Sort, parse and checksum.
	entries, err := book.Compile(lines, book.CompileOptions{Pattern: re})
	if err != nil {
		return nil, fmt.Errorf("compiling book: %w", err)
	}

	// 4. Render.
	out, err := output.Encode(entries, output.EncodeOptions{StrictJSON: o.strictJSON})
	if err != nil {
		return nil, fmt.Errorf("encoding book: %w", err)
	}

	return &Result{
		Output:    out,
		Entries:   entries,
		LineCount: len(lines),
	}, nil
}

func resolvePattern(o *options) (*regexp.Regexp, error) {
	if o.pattern != "" && o.profile != "" {
		return nil, errors.New("pattern and profile are mutually exclusive")
	}

	if o.profile != "" {
		custom, err := book.ParseCustomProfiles(o.customProfiles)
		if err != nil {
			return nil, fmt.Errorf("parsing custom profiles: %w", err)
		}

		return book.ResolveProfile(o.profile, custom)
	}

	if o.pattern == "" {
		return nil, nil
	}

	re, err := regexp.Compile(o.pattern)
	if err != nil {
		return nil, fmt.Errorf("compiling pattern: %w", err)
	}

	return re, nil
}
