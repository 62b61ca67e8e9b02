// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package lzav

// CompressOptions configures Compress. The zero value is valid and selects
// default behavior (built-in or heap-allocated fingerprint-table scratch).
type CompressOptions struct {
	// ExternalBuffer, if non-nil, may be reused as fingerprint-table scratch
	// instead of allocating one. It is used only when the table for the
	// input is larger than the table's built-in array, and only if the
	// buffer is 4-byte aligned and at least as long as the table (a power
	// of two of bytes in [tableMinBytes, tableMaxBytes]); otherwise it is
	// ignored and the compressor falls back to a heap allocation for this
	// call.
	//
	// ExternalBuffer is not safe for concurrent reuse: callers sharing
	// one buffer across concurrent Compress calls will get undefined
	// (though still well-formed and decodable) output.
	ExternalBuffer []byte
}

// DefaultCompressOptions returns options with no external scratch buffer.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{}
}
