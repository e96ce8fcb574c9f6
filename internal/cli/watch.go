package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"addrbook/internal/book"
	"addrbook/internal/logging"
	"addrbook/internal/output"
	"addrbook/internal/watch"
)

type watchOptions struct {
	formatOptions

	// Watch-specific options.
	debounce time.Duration
}

func newWatchCommand() *cobra.Command {
	opts := &watchOptions{}

	cmd := &cobra.Command{
		Use:   "watch [file]",
		Short: "Watch a book file and re-format on change",
		Long: `Watch monitors a book file and automatically re-runs the format
pipeline whenever the file changes, writing the rendered JSON block to
the output path. File events are debounced to avoid rapid re-runs, and
each regeneration reports line/entry counts plus entry-level changes
(entries added, removed, or pointing at a new address).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := DefaultBookFile
			if len(args) > 0 {
				path = args[0]
			}

			return runWatch(cmd.Context(), cmd, path, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.pattern, "pattern", "p", "", "regular expression tested against checksummed addresses")
	f.StringVar(&opts.profile, "profile", "", "named filter profile from the config file")
	f.StringVarP(&opts.outputPath, "output", "o", "", "output file path (required)")
	f.BoolVar(&opts.strictJSON, "strict-json", false, "omit the trailing comma on the final entry")
	f.DurationVar(&opts.debounce, "debounce", 500*time.Millisecond, "debounce interval for file changes")

	return cmd
}

func runWatch(ctx context.Context, cmd *cobra.Command, path string, opts *watchOptions) error {
	if opts.outputPath == "" {
		return &ExitError{Code: 2, Err: fmt.Errorf("--output (-o) is required for watch mode")}
	}

	re, err := resolvePattern(ctx, opts.pattern, opts.profile)
	if err != nil {
		return &ExitError{Code: 2, Err: err}
	}

	logger := logging.FromContext(ctx)

	// Track the previous generation for entry change detection.
	var prev []book.Entry
	first := true

	runFn := func(context.Context) (*watch.RunResult, error) {
		lines, readErr := readBookFile(path)
		if readErr != nil {
			return nil, readErr
		}

		entries, compileErr := book.Compile(lines, book.CompileOptions{Pattern: re})
		if compileErr != nil {
			return nil, compileErr
		}

		data, encErr := output.Encode(entries, output.EncodeOptions{StrictJSON: opts.strictJSON})
		if encErr != nil {
			return nil, encErr
		}

		w := output.NewFileWriter(opts.outputPath, output.WithLogger(logger))
		if writeErr := w.Write(data); writeErr != nil {
			return nil, fmt.Errorf("writing output: %w", writeErr)
		}

		var changes []watch.EntryChange
		if !first {
			changes = watch.EntryDiff(prev, entries)
		}

		prev = entries
		first = false

		return &watch.RunResult{
			Lines:      len(lines),
			Entries:    len(entries),
			Changes:    changes,
			OutputPath: opts.outputPath,
		}, nil
	}

	watchOpts := watch.Options{
		BookPath: path,
		Debounce: opts.debounce,
		Logger:   logger,
		Out:      cmd.ErrOrStderr(),
	}

	return watch.Run(ctx, watchOpts, runFn)
}
