// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package lzav

import (
	"bytes"
	"fmt"
	"math/rand"
	"testing"
)

func testInputSet() []struct {
	name string
	data []byte
} {
	rng := rand.New(rand.NewSource(1))
	incompressible := make([]byte, 20000)
	rng.Read(incompressible)

	return []struct {
		name string
		data []byte
	}{
		{name: "nil", data: nil},
		{name: "empty", data: []byte{}},
		{name: "single-byte", data: []byte{0xAB}},
		{name: "shorter-than-fin", data: []byte{1, 2, 3}},
		{name: "exactly-fin", data: []byte{1, 2, 3, 4, 5}},
		{name: "short-text", data: []byte("hello world, lzav test")},
		{name: "repeated-pattern", data: bytes.Repeat([]byte("abc123"), 2000)},
		{name: "long-run", data: bytes.Repeat([]byte{0xFF}, 12000)},
		{name: "byte-cycle", data: bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 1200)},
		{name: "far-back-reference", data: append(append(bytes.Repeat([]byte("z"), 1<<17), []byte("needle")...), bytes.Repeat([]byte("z"), 10)...)},
		{name: "incompressible-random", data: incompressible},
	}
}

func TestCompressDecompress_RoundTrip(t *testing.T) {
	for _, in := range testInputSet() {
		t.Run(in.name, func(t *testing.T) {
			cmp := Compress(in.data, nil)
			if len(in.data) == 0 {
				if cmp != nil {
					t.Fatalf("Compress of empty input should be nil, got %v", cmp)
				}
				return
			}

			out, err := Decompress(cmp, len(in.data))
			if err != nil {
				t.Fatalf("Decompress failed: %v", err)
			}
			if !bytes.Equal(out, in.data) {
				t.Fatalf("round-trip mismatch: got len=%d want len=%d", len(out), len(in.data))
			}
		})
	}
}

func TestCompressDecompress_RoundTripInto(t *testing.T) {
	for _, in := range testInputSet() {
		if len(in.data) == 0 {
			continue
		}
		t.Run(in.name, func(t *testing.T) {
			dst := make([]byte, CompressBound(len(in.data)))
			n, err := CompressInto(in.data, dst, nil)
			if err != nil {
				t.Fatalf("CompressInto error: %v", err)
			}
			cmp := dst[:n]

			out := make([]byte, len(in.data))
			got, err := DecompressInto(cmp, out)
			if err != nil {
				t.Fatalf("DecompressInto error: %v", err)
			}
			if got != len(in.data) {
				t.Fatalf("DecompressInto returned %d, want %d", got, len(in.data))
			}
			if !bytes.Equal(out, in.data) {
				t.Fatal("round-trip mismatch via Into variants")
			}
		})
	}
}

func TestCompress_IncompressibleDataExpansionBound(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	data := make([]byte, 1<<20)
	rng.Read(data)

	cmp := Compress(data, nil)
	ratio := float64(len(cmp)) / float64(len(data))

	// Worst case: every byte becomes a literal with no reference blocks, so
	// expansion should stay within a small constant factor above 1.0.
	const maxRatio = 1.0058
	if ratio > maxRatio {
		t.Fatalf("incompressible data expanded by %.5fx, want <= %.5fx", ratio, maxRatio)
	}
}

func TestCompress_Idempotent(t *testing.T) {
	data := bytes.Repeat([]byte("idempotence check payload"), 777)
	a := Compress(data, nil)
	b := Compress(data, nil)
	if !bytes.Equal(a, b) {
		t.Fatal("compressing identical input twice produced different output")
	}
}

func FuzzCompressDecompressRoundTrip(f *testing.F) {
	f.Add([]byte(""), uint8(0))
	f.Add([]byte("hello world"), uint8(1))
	f.Add(bytes.Repeat([]byte{0x00}, 1024), uint8(9))
	f.Add(bytes.Repeat([]byte("abc"), 500), uint8(7))
	f.Add([]byte{1, 2, 3}, uint8(0))

	f.Fuzz(func(t *testing.T, data []byte, _ uint8) {
		if len(data) > 1<<16 {
			data = data[:1<<16]
		}

		cmp := Compress(data, nil)
		if len(data) == 0 {
			if cmp != nil {
				t.Fatalf("Compress of empty input should be nil, got %v", cmp)
			}
			return
		}

		out, err := Decompress(cmp, len(data))
		if err != nil {
			t.Fatalf("Decompress failed: %v", err)
		}
		if !bytes.Equal(out, data) {
			t.Fatalf("round-trip mismatch: got=%d want=%d", len(out), len(data))
		}
	})
}

// FuzzDecompressNeverPanics feeds arbitrary bytes straight into the decoder:
// on malformed input it must return a sentinel error, never panic or read
// or write out of bounds.
func FuzzDecompressNeverPanics(f *testing.F) {
	f.Add([]byte{0x10}, 0)
	f.Add([]byte{0x10, 0x00}, 1)
	f.Add([]byte{0x70, 0xFF, 0xFF, 0xFF}, 100)
	f.Add([]byte{}, 0)

	f.Fuzz(func(t *testing.T, src []byte, dstl int) {
		if dstl < 0 {
			dstl = -dstl
		}
		if dstl > 1<<16 {
			dstl = dstl % (1 << 16)
		}

		_, _ = Decompress(src, dstl) // must not panic regardless of err
	})
}

func TestCompressDecompress_AcrossSizes(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, n := range []int{1, 5, 6, 7, 31, 32, 33, 100, 1000, 1 << 15, 1 << 20} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			data := make([]byte, n)
			rng.Read(data)
			// bias toward compressibility so references actually get exercised
			for i := 32; i < len(data); i++ {
				if i%7 != 0 {
					data[i] = data[i-32]
				}
			}

			cmp := Compress(data, nil)
			out, err := Decompress(cmp, n)
			if err != nil {
				t.Fatalf("Decompress error: %v", err)
			}
			if !bytes.Equal(out, data) {
				t.Fatal("round-trip mismatch")
			}
		})
	}
}
