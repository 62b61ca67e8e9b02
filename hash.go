// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package lzav

import "encoding/binary"

// fingerprintHash computes a keyed, komihash-style multiply-and-fold mix over
// the 6 bytes at p (p must have length >= 6). It is not cryptographic; it
// is tuned to diffuse short keys well into a table slot index.
func fingerprintHash(p []byte) uint32 {
	w := binary.LittleEndian.Uint32(p)
	h2 := binary.LittleEndian.Uint16(p[4:6])

	seed1 := uint32(0x243F6A88) ^ w
	mix2 := uint32(0x85A308D3) ^ uint32(h2)

	m64 := uint64(seed1) * uint64(mix2)
	return uint32(m64) ^ uint32(m64>>32)
}
