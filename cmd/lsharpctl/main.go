// Command lsharpctl drives an L# learning session against a built-in
// demo SUL from the command line. It is a thin operator-facing wrapper
// over package lsharp, not a benchmark harness.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lsharpctl",
	Short: "Run an L# active-automata-learning session against a demo SUL",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
