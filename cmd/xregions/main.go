// Command xregions is the CLI driver for the explanation core: it loads
// an ensemble model and an optional limits file, builds the feature-space
// and oracle, and drives either a single explain() call, a full
// enumerate_explanations() stream, or a benchmark sweep across models.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
