// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package lzav

import (
	"encoding/binary"
	"math/bits"
)

// matchLen returns the length of the common prefix of a and b, bounded by
// limit. It compares in 8-byte words and uses a trailing-zero count to
// find the first differing byte (math/bits gives us that intrinsic on
// every Go platform, so there is no separate byte-unrolled fallback to
// maintain).
//
// limit is additionally clamped to len(a) and len(b): Go slices carry
// their own length, so matchLen never needs a caller-supplied padding
// guarantee to stay memory-safe.
func matchLen(a, b []byte, limit int) int {
	if limit > len(a) {
		limit = len(a)
	}
	if limit > len(b) {
		limit = len(b)
	}

	n := 0
	for n+8 <= limit {
		x := binary.LittleEndian.Uint64(a[n:n+8]) ^ binary.LittleEndian.Uint64(b[n:n+8])
		if x != 0 {
			return n + bits.TrailingZeros64(x)>>3
		}
		n += 8
	}

	for n < limit && a[n] == b[n] {
		n++
	}

	return n
}
