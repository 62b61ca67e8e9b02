// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package lzav

import "testing"

func TestCompressBound(t *testing.T) {
	tests := []struct {
		srcl int
		min  int
	}{
		{0, 8},
		{-5, 8},
		{1, 9},
		{litLen, litLen + 8},
		{1 << 20, 1 << 20},
	}

	for _, tc := range tests {
		got := CompressBound(tc.srcl)
		if got < tc.min {
			t.Fatalf("CompressBound(%d) = %d, want >= %d", tc.srcl, got, tc.min)
		}
	}
}

func TestCompressBound_NeverExceededInPractice(t *testing.T) {
	samples := [][]byte{
		nil,
		{},
		{0},
		make([]byte, 1000), // filled below with a repeating 0..250 byte cycle
	}
	for i := range samples {
		if len(samples[i]) == 0 {
			continue
		}
		for j := range samples[i] {
			samples[i][j] = byte(j % 251) // incompressible-ish filler
		}
	}

	for _, src := range samples {
		out := Compress(src, nil)
		bound := CompressBound(len(src))
		if len(out) > bound {
			t.Fatalf("Compress produced %d bytes, exceeding CompressBound(%d)=%d", len(out), len(src), bound)
		}
	}
}
