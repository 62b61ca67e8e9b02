// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

/*
Package lzav implements the LZAV in-memory compressor and decompressor:
a fast, single-pass LZ77 codec that produces a raw, self-contained
compressed buffer with no envelope, no checksum, and no streaming API.

The compressed stream begins with a one-byte format/min-reference-length
tag, followed by literal and back-reference blocks (see format_constants.go
and blockcodec.go for the wire format). Integrity checking of the
uncompressed payload is the caller's responsibility; LZAV does not embed
one.

# Compress

	out := lzav.Compress(data, nil)
	out := lzav.Compress(data, &lzav.CompressOptions{ExternalBuffer: scratch})

CompressBound reports the worst-case output size for a given input length,
for callers who want to size their own destination buffer and call
CompressInto directly:

	dst := make([]byte, lzav.CompressBound(len(data)))
	n, err := lzav.CompressInto(data, dst, nil)

# Decompress

Decompress requires the exact original length (dstl); it is not encoded in
the stream:

	out, err := lzav.Decompress(compressed, len(data))

DecompressInto reuses a caller-provided destination buffer instead of
allocating one:

	dst := make([]byte, len(data))
	n, err := lzav.DecompressInto(compressed, dst)

Decompress is safe to call on arbitrary, adversarial, or truncated input:
it never reads past the end of the compressed buffer nor writes past the
end of the destination buffer, regardless of how malformed the input is.
*/
package lzav
