package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"neopack.dev/neopack"
	"neopack.dev/neopack/wire"
)

var decodeIn string

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Decode a NEOPACK value from a file or stdin and print its structure",
	RunE:  runDecode,
}

func init() {
	decodeCmd.Flags().StringVarP(&decodeIn, "in", "i", "", "read input from a file instead of stdin")
}

// growChunk is the minimum number of bytes read per retry round, so that a
// stream of many small Pending(1)/Pending(2) shortfalls doesn't turn into a
// storm of one-byte reads.
const growChunk = 4096

// runDecode reads a NEOPACK value from src in growable chunks. A Pending
// result from the wire.Reader means the buffer accumulated so far is a valid
// but incomplete prefix, not an error: runDecode reads at least the
// requested number of additional bytes and retries the whole decode from a
// fresh Reader over the grown buffer, exactly as [wire.Reader]'s retry
// contract expects. It only gives up once src is exhausted and the decoder
// is still asking for more.
func runDecode(cmd *cobra.Command, args []string) error {
	src := cmd.InOrStdin()
	if decodeIn != "" {
		f, err := os.Open(decodeIn)
		if err != nil {
			return fmt.Errorf("neocat: %w", err)
		}
		defer f.Close()
		src = f
	}

	buf := make([]byte, 0, growChunk)
	chunk := make([]byte, growChunk)
	eof := false

	for {
		var out strings.Builder
		r := wire.NewReader(buf)
		v, derr := r.Value()
		if derr == nil {
			derr = printValue(&out, r, v, 0)
		}
		if derr == nil {
			fmt.Fprint(cmd.OutOrStdout(), out.String())
			return nil
		}
		if !errors.Is(derr, neopack.Pending) {
			return fmt.Errorf("neocat: %w", derr)
		}
		if eof {
			return fmt.Errorf("neocat: input ended while decoder still needs %d more byte(s)", derr.Needed)
		}

		need := derr.Needed
		if need < growChunk {
			need = growChunk
		}
		if need > len(chunk) {
			chunk = make([]byte, need)
		}
		n, err := io.ReadFull(src, chunk[:need])
		buf = append(buf, chunk[:n]...)
		switch {
		case err == nil:
			// got everything asked for; loop and retry the decode
		case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
			eof = true
		default:
			return fmt.Errorf("neocat: reading input: %w", err)
		}
	}
}

func printValue(w io.Writer, r *wire.Reader, v neopack.Value, depth int) *neopack.Error {
	indent := strings.Repeat("  ", depth)
	switch {
	case v.Tag.IsScalar():
		fmt.Fprintf(w, "%s%s\n", indent, scalarString(v))
	case v.Tag == neopack.TagString:
		fmt.Fprintf(w, "%sString(%q)\n", indent, v.Str())
	case v.Tag.IsBlob():
		fmt.Fprintf(w, "%s%s(%d bytes)\n", indent, v.Tag, len(v.Bytes()))
	case v.Tag == neopack.TagList:
		fmt.Fprintf(w, "%sList[%d]\n", indent, v.Container().Count)
		lr, err := r.List()
		if err != nil {
			return err
		}
		for {
			item, ok, err := lr.Next()
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			if err := printValue(w, r, item, depth+1); err != nil {
				return err
			}
		}
	case v.Tag == neopack.TagMap:
		fmt.Fprintf(w, "%sMap[%d]\n", indent, v.Container().Count)
		mr, err := r.Map()
		if err != nil {
			return err
		}
		for {
			key, val, more, err := mr.Next()
			if err != nil {
				return err
			}
			if !more {
				return nil
			}
			fmt.Fprintf(w, "%s  %q:\n", indent, key)
			if err := printValue(w, r, val, depth+2); err != nil {
				return err
			}
		}
	case v.Tag == neopack.TagArray:
		h := v.Container()
		fmt.Fprintf(w, "%sArray[%d]<%s, stride=%d>\n", indent, h.Count, h.ItemTag, h.Stride)
		ar, err := r.Array()
		if err != nil {
			return err
		}
		for {
			item, ok, err := ar.Next()
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			fmt.Fprintf(w, "%s  % x\n", indent, item)
		}
	}
	return nil
}

func scalarString(v neopack.Value) string {
	switch v.Tag {
	case neopack.TagBool:
		return fmt.Sprintf("Bool(%v)", v.Bool())
	case neopack.TagS8:
		return fmt.Sprintf("S8(%d)", v.I8())
	case neopack.TagU8:
		return fmt.Sprintf("U8(%d)", v.U8())
	case neopack.TagS16:
		return fmt.Sprintf("S16(%d)", v.I16())
	case neopack.TagU16:
		return fmt.Sprintf("U16(%d)", v.U16())
	case neopack.TagS32:
		return fmt.Sprintf("S32(%d)", v.I32())
	case neopack.TagU32:
		return fmt.Sprintf("U32(%d)", v.U32())
	case neopack.TagS64:
		return fmt.Sprintf("S64(%d)", v.I64())
	case neopack.TagU64:
		return fmt.Sprintf("U64(%d)", v.U64())
	case neopack.TagF32:
		return fmt.Sprintf("F32(%v)", v.F32())
	case neopack.TagF64:
		return fmt.Sprintf("F64(%v)", v.F64())
	}
	return v.Tag.String()
}
