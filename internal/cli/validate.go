package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"addrbook/internal/address"
	"addrbook/internal/book"
)

func newValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a book file without formatting it",
		Long: `Validate parses every line of a book file in input order and checks that
each address is interpretable, reporting all problems with their line
numbers instead of stopping at the first. Nothing is formatted or written.

Exit codes:
  0  Book is well-formed
  1  Internal error
  3  One or more lines are malformed`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := DefaultBookFile
			if len(args) > 0 {
				path = args[0]
			}

			return runValidate(cmd.Context(), cmd, path)
		},
	}

	return cmd
}

func runValidate(_ context.Context, cmd *cobra.Command, path string) error {
	lines, err := readBookFile(path)
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	problems := 0

	for i, line := range lines {
		_, addr, parseErr := book.ParseLine(line)
		if parseErr != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "line %d: %v\n", i+1, parseErr)
			problems++

			continue
		}

		if _, sumErr := address.Checksum(addr); sumErr != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "line %d: %v\n", i+1, sumErr)
			problems++
		}
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "%d line(s), %d problem(s)\n", len(lines), problems)

	if problems > 0 {
		return &ExitError{Code: 3, Err: fmt.Errorf("book %s has %d problem(s)", path, problems)}
	}

	return nil
}
