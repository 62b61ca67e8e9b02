// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package lzav

import "errors"

// Sentinel errors returned by Decompress and DecompressInto. A valid
// decode of a corrupt stream is still possible if the corruption happens
// to preserve every structural constraint the parser checks for.
var (
	// ErrParams is returned for invalid decompress arguments: an empty
	// source with a nonzero dstl, a non-empty source with dstl 0, a
	// negative dstl, or overlapping buffers.
	ErrParams = errors.New("lzav: invalid arguments")
	// ErrUnknownFormat is returned when the stream's prefix byte does not
	// carry the current format tag in its high nibble.
	ErrUnknownFormat = errors.New("lzav: unknown stream format")
	// ErrSrcOverrun is returned when a literal block or reference header
	// would need to read past the end of the compressed input.
	ErrSrcOverrun = errors.New("lzav: source buffer overrun")
	// ErrDstOverrun is returned when a copy would write past the end of
	// the destination buffer.
	ErrDstOverrun = errors.New("lzav: destination buffer overrun")
	// ErrRefOverrun is returned when a back-reference's offset points
	// before the start of the destination buffer.
	ErrRefOverrun = errors.New("lzav: reference offset underrun")
	// ErrDstLenMismatch is returned when decoding completes without
	// producing exactly dstl bytes of output.
	ErrDstLenMismatch = errors.New("lzav: output length mismatch")
)
