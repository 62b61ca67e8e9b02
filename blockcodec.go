// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package lzav

// Block codec: encode and decode of one literal or back-reference block,
// including the reference-offset carry protocol. EmitLiteralBlock and
// EmitRefBlock are the two block-emit primitives exported for reuse by
// experimental compressors built on top of this package.

// encodeRefLen splits a reference length rc (minRefLen..refLen) into a
// 4-bit nibble and, if the length doesn't fit in the nibble alone, an
// extension byte: a reference never encodes a length smaller than
// minRefLen, so the stored nibble is rc + 1 - minRefLen. ext is only
// meaningful when extended is true.
func encodeRefLen(rc int) (nibble byte, extended bool, ext byte) {
	rel := rc - minRefLen
	if rel < 15 {
		return byte(rel + 1), false, 0
	}
	return 0, true, byte(rel - 15)
}

// EmitLiteralBlock appends a literal block containing lit (1..litLen bytes)
// to dst. It returns the extended buffer and the index of the block's
// header byte, which the caller should remember as a pending offset-carry
// donor for the next reference block: the header's top two bits start at
// zero and may later be OR-ed with a carried value.
func EmitLiteralBlock(dst []byte, lit []byte) (out []byte, headerIdx int) {
	headerIdx = len(dst)
	n := len(lit)

	switch {
	case n <= 15:
		dst = append(dst, byte(n))
	case n <= 15+255:
		dst = append(dst, 0, byte(n-16))
	default:
		dst = append(dst, 0, 255, byte(n-16-255))
	}

	dst = append(dst, lit...)
	return dst, headerIdx
}

// EmitRefBlock appends a back-reference block of length rc (minRefLen..refLen)
// and offset d (1..winLen-1) to dst, choosing the smallest offset class
// (10/18/24-bit) that fits d. cbp is the index of a pending carry donor
// header (a previous literal or 24-bit-offset block), or -1 if none is
// pending; when set, the block's own low two offset bits are OR-ed into
// dst[cbp] instead of its own header.
//
// It returns the extended buffer and the new pending-carry index: -1 for
// 10-bit/18-bit blocks (they always consume any pending carry), or this
// block's own header index for a 24-bit block (24-bit references always
// donate their own header to whichever reference follows them).
func EmitRefBlock(dst []byte, rc, d, cbp int) (out []byte, newCbp int) {
	nibble, extended, ext := encodeRefLen(rc)

	switch {
	case d < offsetMaxRef10:
		return emitRefShort(dst, blockTypeRef10, nibble, extended, ext, d, cbp, 1), -1
	case d < offsetMaxRef18:
		return emitRefShort(dst, blockTypeRef18, nibble, extended, ext, d, cbp, 2), -1
	default:
		return emitRef24(dst, nibble, extended, ext, d)
	}
}

// emitRefShort appends a 10-bit or 18-bit offset reference. highBytes is 1
// for the 10-bit form and 2 for the 18-bit form, carrying d>>carryShift in
// little-endian order; the low carryShift bits of d go either into the
// block's own header (no pending carry) or into dst[cbp] (pending carry).
func emitRefShort(dst []byte, blockType int, nibble byte, extended bool, ext byte, d, cbp, highBytes int) []byte {
	header := byte(blockType<<blockTypeShift) | nibble
	low := byte(d&3) << topBitsShift

	if cbp < 0 {
		header |= low
	}

	dst = append(dst, header)
	high := d >> carryShift
	for i := 0; i < highBytes; i++ {
		dst = append(dst, byte(high>>(8*i)))
	}
	if extended {
		dst = append(dst, ext)
	}

	if cbp >= 0 {
		dst[cbp] |= low
	}
	return dst
}

// emitRef24 appends a 24-bit-offset reference block. The offset is written
// in full across three little-endian bytes; the header's top two bits are
// left at zero so they can later be OR-ed with a carry value donated to the
// next 10-bit/18-bit reference (24-bit blocks never consume a carry
// themselves).
func emitRef24(dst []byte, nibble byte, extended bool, ext byte, d int) (out []byte, newCbp int) {
	headerIdx := len(dst)
	header := byte(blockTypeRef24 << blockTypeShift) | nibble

	dst = append(dst, header, byte(d), byte(d>>8), byte(d>>16))
	if extended {
		dst = append(dst, ext)
	}
	return dst, headerIdx
}

// emitLiteralBlocks appends one or more literal blocks covering all of lit,
// splitting into chunks of at most litLen bytes each: a single literal
// block's length nibble and its extension bytes can only address up to
// litLen bytes, so a longer run must be carved into several blocks back to
// back. It returns the index of the *last* emitted block's header byte, the
// pending carry donor for whatever reference block follows.
func emitLiteralBlocks(dst []byte, lit []byte) (out []byte, headerIdx int) {
	pos := 0
	for len(lit)-pos > litLen {
		dst, _ = EmitLiteralBlock(dst, lit[pos:pos+litLen])
		pos += litLen
	}
	return EmitLiteralBlock(dst, lit[pos:])
}

// writeFin appends the mandatory finishing literal run covering src[ipa:].
// It splits the run if needed so the final emitted block always has a
// length in [litFin, 15], guaranteeing decoders a minimum trailing run of
// litFin literal bytes at the end of every stream.
func writeFin(dst []byte, src []byte, ipa int) []byte {
	total := len(src) - ipa
	if total <= 0 {
		return dst
	}

	finalLen := total
	if finalLen > 15 {
		finalLen = 15
	}
	pos := ipa

	if head := total - finalLen; head > 0 {
		dst, _ = emitLiteralBlocks(dst, src[pos:pos+head])
		pos += head
	}

	dst, _ = EmitLiteralBlock(dst, src[pos:pos+finalLen])
	return dst
}
