package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "neocat",
	Short: "Encode and decode NEOPACK values",
	Long: "neocat is a small command-line tool built on neopack.dev/neopack/wire.\n" +
		"It has no bearing on the wire format itself; it exists to exercise the\n" +
		"encoder and decoder against real input from a terminal or a pipe.",
}

func init() {
	rootCmd.AddCommand(encodeCmd, decodeCmd)
}

// Execute runs the root command, exiting with status 1 on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
