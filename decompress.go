// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package lzav

// Decompress decompresses src into a freshly allocated buffer of length
// dstl. It is safe to call on arbitrary, adversarial, or truncated input:
// it never reads past src nor writes past the destination, returning a
// sentinel error instead.
func Decompress(src []byte, dstl int) ([]byte, error) {
	if dstl < 0 {
		return nil, ErrParams
	}

	dst := make([]byte, dstl)
	n, err := DecompressInto(src, dst)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// DecompressInto decompresses src into dst, reusing the caller's buffer
// instead of allocating one; src and dst must not overlap. len(dst) is the
// expected decompressed length (dstl); on success it always equals the
// returned count.
func DecompressInto(src []byte, dst []byte) (int, error) {
	srcl := len(src)
	dstl := len(dst)

	if srcl == 0 {
		if dstl == 0 {
			return 0, nil
		}
		return 0, ErrParams
	}
	if dstl == 0 {
		return 0, ErrParams
	}
	if buffersOverlap(src, dst) {
		return 0, ErrParams
	}

	if src[0]>>4 != formatVersion {
		return 0, ErrUnknownFormat
	}

	ip := 1
	op := 0

	var cv uint32
	var pending bool

	for op < dstl {
		if ip >= srcl {
			return 0, ErrSrcOverrun
		}
		hdr := src[ip]
		ip++

		nibble := hdr & nibbleMask
		blockType := int(hdr&blockTypeMask) >> blockTypeShift

		switch blockType {
		case blockTypeLiteral:
			n, err := decodeLiteralLen(nibble, src, &ip)
			if err != nil {
				return 0, err
			}

			if ip+n > srcl {
				return 0, ErrSrcOverrun
			}
			if op+n > dstl {
				return 0, ErrDstOverrun
			}
			copy(dst[op:op+n], src[ip:ip+n])
			ip += n
			op += n

			cv = uint32(hdr >> topBitsShift)
			pending = true

		case blockTypeRef10, blockTypeRef18:
			nBytes := 1
			if blockType == blockTypeRef18 {
				nBytes = 2
			}
			if ip+nBytes > srcl {
				return 0, ErrSrcOverrun
			}
			high := 0
			for i := 0; i < nBytes; i++ {
				high |= int(src[ip+i]) << (8 * i)
			}
			ip += nBytes

			rc, err := decodeRefLen(nibble, src, &ip)
			if err != nil {
				return 0, err
			}

			var low uint32
			if pending {
				low = cv
			} else {
				low = uint32(hdr>>topBitsShift) & 3
			}
			d := (high << carryShift) | int(low)

			if err := copyRef(dst, op, d, rc); err != nil {
				return 0, err
			}
			op += rc

			cv, pending = 0, false

		case blockTypeRef24:
			if ip+3 > srcl {
				return 0, ErrSrcOverrun
			}
			d := int(src[ip]) | int(src[ip+1])<<8 | int(src[ip+2])<<16
			ip += 3

			rc, err := decodeRefLen(nibble, src, &ip)
			if err != nil {
				return 0, err
			}

			if err := copyRef(dst, op, d, rc); err != nil {
				return 0, err
			}
			op += rc

			cv = uint32(hdr >> topBitsShift)
			pending = true
		}
	}

	if op != dstl {
		return 0, ErrDstLenMismatch
	}
	return op, nil
}

// decodeLiteralLen reads a literal block's length from its header nibble,
// consuming 0, 1, or 2 extension bytes from src at *ip: nibble 0 means the
// real length is 16 or more, held in the next byte unless that byte is
// 255, in which case a further byte follows and the length is
// 16 + 255 + that byte.
func decodeLiteralLen(nibble byte, src []byte, ip *int) (int, error) {
	if nibble != 0 {
		return int(nibble), nil
	}

	if *ip >= len(src) {
		return 0, ErrSrcOverrun
	}
	ext1 := src[*ip]
	*ip++
	if ext1 != 255 {
		return 16 + int(ext1), nil
	}

	if *ip >= len(src) {
		return 0, ErrSrcOverrun
	}
	ext2 := src[*ip]
	*ip++
	return 16 + 255 + int(ext2), nil
}

// decodeRefLen reads a reference block's length from its header nibble,
// consuming 0 or 1 extension bytes from src at *ip: nibble 0 means an
// extension byte follows giving the length past minRefLen+15.
func decodeRefLen(nibble byte, src []byte, ip *int) (int, error) {
	if nibble != 0 {
		return minRefLen + int(nibble) - 1, nil
	}

	if *ip >= len(src) {
		return 0, ErrSrcOverrun
	}
	ext := src[*ip]
	*ip++
	return minRefLen + 15 + int(ext), nil
}

// copyRef copies rc bytes from dst[op-d:] to dst[op:], the decoder's safe
// back-reference copy. It validates bounds before copying -- a reference
// whose distance points before the start of dst, or whose length would
// write past the end of dst, is rejected without touching dst.
//
// When d < rc the copy is intentionally self-referential (the source
// region includes bytes this same call is writing), reproducing the LZ77
// "repeat pattern" semantics for short-distance matches: seed one
// distance-sized chunk, then double the already-written region until the
// full length is covered, which keeps every chunk's source fully written
// before it is read.
func copyRef(dst []byte, op, d, rc int) error {
	mp := op - d
	if d < 1 || mp < 0 {
		return ErrRefOverrun
	}
	if op+rc > len(dst) {
		return ErrDstOverrun
	}

	if d >= rc {
		copy(dst[op:op+rc], dst[mp:op])
		return nil
	}

	copy(dst[op:op+d], dst[mp:op])
	copied := d
	for copied < rc {
		n := copy(dst[op+copied:op+rc], dst[op:op+copied])
		copied += n
	}
	return nil
}
