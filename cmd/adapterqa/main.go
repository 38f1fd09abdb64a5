// Command adapterqa checks protocol adapter configuration schemas and renders QA reports.
package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		if hints := errors.FlattenHints(err); hints != "" {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hints)
		}

		os.Exit(1)
	}
}
