// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package lzav

import "encoding/binary"

// Compress compresses src and returns a new compressed buffer, or nil if
// src is empty: compressing empty input is a rejected operation, not
// an error.
func Compress(src []byte, opts *CompressOptions) []byte {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	dst := make([]byte, CompressBound(len(src)))
	n, err := CompressInto(src, dst, opts.ExternalBuffer)
	if err != nil || n == 0 {
		return nil
	}
	return dst[:n]
}

// CompressDefault compresses src with no external scratch buffer; it is
// equivalent to Compress(src, nil).
func CompressDefault(src []byte) []byte {
	return Compress(src, nil)
}

// CompressInto compresses src into dst, which must have length at least
// CompressBound(len(src)) and must not overlap src; extBuf, if non-nil, may
// be reused as fingerprint-table scratch (see CompressOptions.ExternalBuffer
// for when it is used). It returns the number of bytes
// written, or (0, nil) if src is empty, too large for a signed 32-bit
// length, dst is too small, or src and dst overlap -- every rejection is
// reported before any work is done. CompressInto never returns a non-nil
// error for well-formed input with a sufficiently sized, non-overlapping
// destination; only an allocation failure could make it do so, and Go's
// allocator reports that as a panic rather than an error, so in practice
// it always returns a nil error.
func CompressInto(src, dst []byte, extBuf []byte) (int, error) {
	srcl := len(src)
	if srcl <= 0 || srcl >= 1<<31 {
		return 0, nil
	}
	if len(dst) < CompressBound(srcl) {
		return 0, nil
	}
	if buffersOverlap(src, dst) {
		return 0, nil
	}

	out := dst[:0]
	out = append(out, byte(formatVersion<<4|minRefLen))

	if srcl <= litFin {
		out, _ = EmitLiteralBlock(out, src)
		for i := srcl; i < litFin; i++ {
			out = append(out, 0)
		}
		return len(out), nil
	}

	tbl := acquireTable()
	defer releaseTable(tbl)
	tbl.init(src, extBuf)

	out = compressMain(src, tbl, out)
	return len(out), nil
}

// compressMain is the compressor driver's main loop: walk the input,
// probe the fingerprint table, extend matches, emit blocks, and adapt the
// skip-ahead throttle on misses.
func compressMain(src []byte, tbl *fingerprintTable, out []byte) []byte {
	srcl := len(src)
	ip := minRefLen
	ipe := srcl - litFin
	ipa := 0
	cbp := -1

	mavg := int64(100) << 22
	rndb := 0

	for ip < ipe {
		key := binary.LittleEndian.Uint32(src[ip:])
		h := fingerprintHash(src[ip:])
		idx := h & tbl.mask

		wpo, which, hit := tbl.probeAndUpdate(src, ip, key, idx)

		if !hit {
			mavg -= mavg >> 11
			step := 1
			if mavg < 200<<15 && ip > ipa {
				step = 2 + rndb
				if mavg < 130<<15 {
					step++
				}
				if mavg < 100<<15 {
					step += 100 - int(mavg>>15)
				}
				rndb = (ip - 1) & 1
			}
			ip += step
			continue
		}

		wp := int(wpo)
		d := ip - wp

		if d <= minMatchOffset || d >= winLen {
			ip++
			continue
		}

		ml := d
		if refLen < ml {
			ml = refLen
		}
		if rem := ipe - ip; rem < ml {
			ml = rem
		}
		if ml < minRefLen {
			ip++
			continue
		}

		matchIP := ip
		var rc int

		lc := ip - ipa
		absorbed := false
		if lc > 0 && lc < minRefLen && wp-lc >= 0 {
			if rc2 := matchLen(src[ip-lc:], src[wp-lc:], ml); rc2 >= minRefLen {
				rc = rc2
				ip -= lc
				absorbed = true
			}
		}
		if !absorbed {
			rc = minRefLen + matchLen(src[ip+minRefLen:], src[wp+minRefLen:], ml-minRefLen)
		}

		if ip > ipa {
			out, cbp = emitLiteralBlocks(out, src[ipa:ip])
		}
		out, cbp = EmitRefBlock(out, rc, d, cbp)

		if d > refLen {
			tbl.refresh(idx, which, key, matchIP)
		}

		ip += rc
		ipa = ip
		mavg += ((int64(rc) << 22) - mavg) >> 10
	}

	return writeFin(out, src, ipa)
}
