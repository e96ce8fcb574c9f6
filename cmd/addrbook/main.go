// addrbook formats label-to-address books as checksummed JSON objects.
package main

import (
	"os"

	"addrbook/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
