// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package lzav

// Stream format constants. formatVersion is the only published format
// identifier; minRefLen ("mref") is stored alongside it in the one-byte
// stream prefix.
const (
	formatVersion = 1 // fmt
	minRefLen     = 6 // mref: minimum reference length

	winLen    = 1 << 24              // WIN_LEN: max back-reference offset + 1
	litLen    = 1 + 15 + 255 + 255    // LIT_LEN: max single literal-block length (526)
	litFin    = 5                    // LIT_FIN: literals mandatory at stream end
	refLen    = minRefLen + 15 + 255 // REF_LEN: max reference length (276)
	refRelMax = 15 + 255              // max value of (rc - minRefLen)
)

// Block header layout: top 2 bits are carry/offset bits, bits 4-5 are the
// block type, bits 0-3 are the length nibble.
const (
	blockTypeLiteral = 0
	blockTypeRef10   = 1
	blockTypeRef18   = 2
	blockTypeRef24   = 3

	blockTypeShift = 4
	blockTypeMask  = 0x30
	nibbleMask     = 0x0f
	topBitsShift   = 6

	// carryShift is the fixed shift applied when assembling a reference's
	// offset from (high bits, carried low bits): d = (bytes << carryShift) | cv.
	carryShift = 2
)

// Offset ranges addressable by each reference block type.
const (
	offsetMaxRef10 = 1 << 10
	offsetMaxRef18 = 1 << 18
)

// minMatchOffset is the largest back-reference distance the compressor
// rejects: offsets at or below it are uneconomical, so the smallest offset
// it emits is minMatchOffset+1.
const minMatchOffset = 7
