// Command lzavtool compresses and decompresses files using the lzav
// package. It is a thin wrapper: all the real work happens in
// github.com/woozymasta/lzav.
package main

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/woozymasta/lzav"
)

var errMissingLength = errors.New("lzavtool: -l/--length is required for -d without a length-prefixed stream")

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "lzavtool:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flagSet := flag.NewFlagSet("lzavtool", flag.ContinueOnError)
	flagSet.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: lzavtool [-d] [-o output] [-l length] [input]")
		fmt.Fprintln(os.Stderr, "Reads from stdin and writes to stdout when input/-o are omitted.")
		flagSet.PrintDefaults()
	}

	decompress := flagSet.BoolP("decompress", "d", false, "decompress instead of compress")
	output := flagSet.StringP("output", "o", "", "output file (default: stdout)")
	length := flagSet.IntP("length", "l", -1, "decompressed length in bytes (decompress mode only; omit if the stream carries a length prefix written by this tool)")
	framed := flagSet.BoolP("frame", "f", true, "compress mode: prefix the output with its decompressed length, so -d needs no -l")

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	var in io.Reader = os.Stdin
	if flagSet.NArg() > 0 {
		f, err := os.Open(flagSet.Arg(0))
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	src, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("lzavtool: read input: %w", err)
	}

	var out []byte
	if *decompress {
		out, err = decompressStream(src, *length)
	} else {
		out, err = compressStream(src, *framed)
	}
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if *output != "" {
		f, ferr := os.Create(*output)
		if ferr != nil {
			return ferr
		}
		defer f.Close()
		w = f
	}

	_, err = w.Write(out)
	return err
}

// compressStream compresses src. When framed, it prepends an 8-byte
// little-endian length header recording len(src), letting decompressStream
// recover dstl without the caller passing -l.
func compressStream(src []byte, framed bool) ([]byte, error) {
	compressed := lzav.CompressDefault(src)
	if compressed == nil {
		if len(src) == 0 {
			compressed = []byte{}
		} else {
			return nil, fmt.Errorf("lzavtool: compression failed for %d-byte input", len(src))
		}
	}
	if !framed {
		return compressed, nil
	}

	var buf bytes.Buffer
	buf.Grow(8 + len(compressed))
	var hdr [8]byte
	binary.LittleEndian.PutUint64(hdr[:], uint64(len(src)))
	buf.Write(hdr[:])
	buf.Write(compressed)
	return buf.Bytes(), nil
}

// decompressStream reverses compressStream. If length >= 0 it is used
// directly (src is assumed unframed); otherwise an 8-byte length header is
// read off the front of src.
func decompressStream(src []byte, length int) ([]byte, error) {
	if length >= 0 {
		return lzav.Decompress(src, length)
	}

	if len(src) < 8 {
		return nil, errMissingLength
	}
	dstl := int(binary.LittleEndian.Uint64(src[:8]))
	return lzav.Decompress(src[8:], dstl)
}
