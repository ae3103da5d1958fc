// Command gitql queries git repositories with SQL.
package main

import (
	"os"

	"github.com/gitql-labs/gitql/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
