package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"addrbook/internal/book"
	"addrbook/internal/config"
	"addrbook/internal/diff"
	"addrbook/internal/output"
)

type diffOptions struct {
	formatOptions

	// Existing output file to diff against.
	existing string

	// Number of unified diff context lines.
	contextLines int
}

func newDiffCommand() *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff [file]",
		Short: "Compare formatted output against a previous version",
		Long: `Diff formats a book in memory and compares the rendered JSON block
against an existing output file, printing a unified diff.

Exit codes:
  0  No differences
  1  Internal error
  2  Invalid arguments
  3  Malformed book
  4  Differences detected`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := DefaultBookFile
			if len(args) > 0 {
				path = args[0]
			}

			return runDiff(cmd.Context(), cmd, path, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.existing, "existing", "", "existing output file to diff against (required)")
	f.StringVarP(&opts.pattern, "pattern", "p", "", "regular expression tested against checksummed addresses")
	f.StringVar(&opts.profile, "profile", "", "named filter profile from the config file")
	f.BoolVar(&opts.strictJSON, "strict-json", false, "render the in-memory block without trailing comma on the final entry")
	f.IntVar(&opts.contextLines, "context", 3, "number of unified diff context lines")

	return cmd
}

func runDiff(ctx context.Context, cmd *cobra.Command, path string, opts *diffOptions) error {
	if opts.existing == "" {
		return &ExitError{Code: 2, Err: fmt.Errorf("--existing flag is required")}
	}

	re, err := resolvePattern(ctx, opts.pattern, opts.profile)
	if err != nil {
		return &ExitError{Code: 2, Err: err}
	}

	lines, err := readBookFile(path)
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	entries, err := book.Compile(lines, book.CompileOptions{Pattern: re})
	if err != nil {
		return &ExitError{Code: 3, Err: err}
	}

	generated, err := output.Encode(entries, output.EncodeOptions{StrictJSON: opts.strictJSON})
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	existing, err := os.ReadFile(opts.existing)
	if err != nil {
		return &ExitError{Code: 1, Err: fmt.Errorf("reading existing output: %w", err)}
	}

	diffOpts := diff.DefaultOptions()
	diffOpts.OldLabel = opts.existing
	diffOpts.NewLabel = path + " (formatted)"
	diffOpts.Context = opts.contextLines

	result, err := diff.Compute(string(existing), string(generated), diffOpts)
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	cfg := config.FromContext(ctx)
	diff.Write(cmd.OutOrStdout(), result, !cfg.NoColor)

	if result.HasDifferences {
		return &ExitError{Code: 4, Err: fmt.Errorf("differences detected")}
	}

	return nil
}
