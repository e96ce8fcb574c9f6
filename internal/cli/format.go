package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"addrbook/internal/address"
	"addrbook/internal/book"
	"addrbook/internal/logging"
	"addrbook/internal/output"
)

type formatOptions struct {
	// Filtering.
	pattern string
	profile string

	// Output.
	outputPath string
	strictJSON bool
}

func newFormatCommand() *cobra.Command {
	opts := &formatOptions{}

	cmd := &cobra.Command{
		Use:   "format [file] [pattern]",
		Short: "Format a book file as a checksummed JSON object",
		Long: `Format reads a book of "LABEL => ADDRESS" lines, sorts entries by the
last four characters of the raw address (stable for ties), converts every
address to its EIP-55 checksummed form, and prints the result as a JSON
object.

The optional second argument is a regular expression tested against the
checksummed address; entries without a match anywhere in the string are
omitted. The label and the raw address are never tested.

By default every emitted entry line carries a trailing comma — including
the last one — for byte-compatibility with existing consumers. Pass
--strict-json to emit valid JSON instead.

Exit codes:
  0  Success
  1  Internal error
  2  Invalid arguments
  3  Malformed book (bad line or uninterpretable address)`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := DefaultBookFile
			if len(args) > 0 {
				path = args[0]
			}

			if len(args) > 1 && opts.pattern == "" {
				opts.pattern = args[1]
			}

			return runFormat(cmd.Context(), cmd, path, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.pattern, "pattern", "p", "", "regular expression tested against checksummed addresses")
	f.StringVar(&opts.profile, "profile", "", "named filter profile from the config file")
	f.StringVarP(&opts.outputPath, "output", "o", "", "output file path (default: stdout)")
	f.BoolVar(&opts.strictJSON, "strict-json", false, "omit the trailing comma on the final entry")

	return cmd
}

func runFormat(ctx context.Context, cmd *cobra.Command, path string, opts *formatOptions) error {
	logger := logging.FromContext(ctx)

	re, err := resolvePattern(ctx, opts.pattern, opts.profile)
	if err != nil {
		return &ExitError{Code: 2, Err: err}
	}

	lines, err := readBookFile(path)
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	encOpts := output.EncodeOptions{StrictJSON: opts.strictJSON}

	// File output is buffered so a malformed book never clobbers an
	// existing output file with a half-written block.
	if opts.outputPath != "" {
		entries, compileErr := book.Compile(lines, book.CompileOptions{Pattern: re})
		if compileErr != nil {
			return &ExitError{Code: 3, Err: compileErr}
		}

		data, encErr := output.Encode(entries, encOpts)
		if encErr != nil {
			return &ExitError{Code: 1, Err: encErr}
		}

		w := output.NewFileWriter(opts.outputPath, output.WithLogger(logger))
		if writeErr := w.Write(data); writeErr != nil {
			return &ExitError{Code: 1, Err: writeErr}
		}

		logger.Info("book written",
			slog.String("path", opts.outputPath),
			slog.Int("entries", len(entries)),
		)

		return nil
	}

	// Stdout output streams entry by entry: when a malformed line aborts
	// the run, entries sorted before it stay printed and the closing brace
	// is never emitted.
	sorted := append([]string(nil), lines...)
	book.SortLines(sorted)

	enc := output.NewEncoder(cmd.OutOrStdout(), encOpts)

	if err := enc.Begin(); err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	emitted := 0

	for _, line := range sorted {
		label, addr, parseErr := book.ParseLine(line)
		if parseErr != nil {
			return &ExitError{Code: 3, Err: parseErr}
		}

		sum, sumErr := address.Checksum(addr)
		if sumErr != nil {
			return &ExitError{Code: 3, Err: sumErr}
		}

		if re != nil && !re.MatchString(sum) {
			continue
		}

		if writeErr := enc.WriteEntry(label, sum); writeErr != nil {
			return &ExitError{Code: 1, Err: writeErr}
		}

		emitted++
	}

	if err := enc.End(); err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	logger.Debug("book formatted",
		slog.Int("lines", len(lines)),
		slog.Int("entries", emitted),
	)

	return nil
}
