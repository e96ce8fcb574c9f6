package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"addrbook/internal/address"
)

func newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <address>...",
		Short: "Print the checksummed form of addresses",
		Long: `Check converts each argument to its canonical EIP-55 checksummed form
and prints it, one per line. The first uninterpretable address aborts the
run with exit code 3.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				sum, err := address.Checksum(arg)
				if err != nil {
					return &ExitError{Code: 3, Err: err}
				}

				if _, err := fmt.Fprintln(cmd.OutOrStdout(), sum); err != nil {
					return &ExitError{Code: 1, Err: err}
				}
			}

			return nil
		},
	}

	return cmd
}
