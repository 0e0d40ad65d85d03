package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"neopack.dev/neopack/wire"
)

var encodeOut string

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Read key=value lines from stdin and write a NEOPACK Map",
	RunE:  runEncode,
}

func init() {
	encodeCmd.Flags().StringVarP(&encodeOut, "out", "o", "", "write the encoded bytes to a file instead of stdout")
}

func runEncode(cmd *cobra.Command, args []string) error {
	enc := wire.NewEncoder()
	enc.Map()

	scanner := bufio.NewScanner(os.Stdin)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if text == "" {
			continue
		}
		k, v, ok := strings.Cut(text, "=")
		if !ok {
			return fmt.Errorf("neocat: line %d: expected key=value, got %q", line, text)
		}
		if !utf8.ValidString(k) || !utf8.ValidString(v) {
			return fmt.Errorf("neocat: line %d: key and value must be valid UTF-8", line)
		}
		enc.Key(k)
		enc.Str(v)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("neocat: reading stdin: %w", err)
	}
	enc.EndMap()

	out, err := enc.IntoBytes()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if encodeOut != "" {
		f, err := os.Create(encodeOut)
		if err != nil {
			return fmt.Errorf("neocat: %w", err)
		}
		defer f.Close()
		w = f
	}
	_, err = w.Write(out)
	return err
}
