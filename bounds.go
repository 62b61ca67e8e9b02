// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package lzav

import "unsafe"

// CompressBound returns the maximum number of bytes Compress/CompressInto
// can write for an input of length srcl. Destination buffers should be
// sized at least this large.
func CompressBound(srcl int) int {
	if srcl <= 0 {
		return 8
	}
	return srcl + srcl*3/litLen + 8
}

// buffersOverlap reports whether a and b share any byte of backing memory.
// CompressInto and DecompressInto require non-overlapping source and
// destination buffers; an empty slice never overlaps anything.
func buffersOverlap(a, b []byte) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	aStart := uintptr(unsafe.Pointer(&a[0]))
	aEnd := aStart + uintptr(len(a))
	bStart := uintptr(unsafe.Pointer(&b[0]))
	bEnd := bStart + uintptr(len(b))
	return aStart < bEnd && bStart < aEnd
}
