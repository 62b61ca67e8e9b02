// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package lzav

import (
	"encoding/binary"
	"sync"
	"unsafe"
)

// Fingerprint table: an open-addressed, power-of-two-sized array of
// 16-byte slots, each holding two (key, pos) tuples. Represented as a flat
// contiguous slice rather than a map -- the speed comes from contiguous,
// branch-free slot access.
const (
	tableMinSlots   = 256     // clamp floor on slot count
	tableMaxSlots   = 1 << 16 // clamp ceiling on slot count
	slotBytes       = 16      // bytes per slot: two (u32 key, u32 pos) tuples
	tableStackSlots = 1024    // 16 KiB worth of slots: fits on the stack
	tableMinBytes   = tableMinSlots * slotBytes
	tableMaxBytes   = tableMaxSlots * slotBytes
)

type tableSlot struct {
	key0, pos0 uint32
	key1, pos1 uint32
}

// fingerprintTable is the compressor's per-call scratch. It is pooled
// (tablePool) so repeated Compress calls can reuse the struct and its
// built-in slot array; a heap-allocated slot array is dropped on release
// and allocated afresh by the next call that needs one.
type fingerprintTable struct {
	slots []tableSlot
	mask  uint32
	stack [tableStackSlots]tableSlot
}

var tablePool = sync.Pool{
	New: func() any { return new(fingerprintTable) },
}

func acquireTable() *fingerprintTable {
	return tablePool.Get().(*fingerprintTable)
}

func releaseTable(t *fingerprintTable) {
	if t == nil {
		return
	}
	t.slots = nil
	tablePool.Put(t)
}

// tableSlotCount returns 2^k, the smallest power of two making
// slots*slotBytes >= srcl*4, clamped to [tableMinSlots, tableMaxSlots].
func tableSlotCount(srcl int) int {
	need := srcl * 4
	n := tableMinSlots
	for n*slotBytes < need && n < tableMaxSlots {
		n <<= 1
	}
	return n
}

// extBufAsSlots reinterprets a caller-supplied external buffer as a slot
// array without copying, so a reused scratch buffer never costs an
// allocation. It requires the buffer to already be sized and aligned for
// n slots; callers that don't fit fall back to a heap allocation instead.
func extBufAsSlots(buf []byte, n int) ([]tableSlot, bool) {
	if len(buf) < n*slotBytes {
		return nil, false
	}
	if uintptr(unsafe.Pointer(&buf[0]))%unsafe.Alignof(tableSlot{}) != 0 {
		return nil, false
	}
	return unsafe.Slice((*tableSlot)(unsafe.Pointer(&buf[0])), n), true
}

// init sizes the table for src and fills every slot with the init
// sentinel: the table's own stack-sized array is used when it suffices,
// then extBuf if it fits, then a fresh heap allocation as a last resort.
func (t *fingerprintTable) init(src []byte, extBuf []byte) {
	n := tableSlotCount(len(src))

	switch {
	case n <= tableStackSlots:
		t.slots = t.stack[:n]
	default:
		if slots, ok := extBufAsSlots(extBuf, n); ok {
			t.slots = slots
		} else {
			t.slots = make([]tableSlot, n)
		}
	}
	t.mask = uint32(n - 1)

	var initKey uint32
	if len(src) >= minRefLen {
		initKey = binary.LittleEndian.Uint32(src)
	}
	sentinel := tableSlot{key0: initKey, pos0: minRefLen, key1: initKey, pos1: minRefLen}
	for i := range t.slots {
		t.slots[i] = sentinel
	}
}

// probeAndUpdate resolves the slot for key at idx. On a hit, it verifies
// the 6-byte prefix at the candidate position against src[ip:] before
// accepting it, falling through key0 -> key1 -> miss on verification
// failure. On an outright miss it inserts (key, ip) into whichever tuple
// did not match, the 2-way victim-cache replacement policy.
func (t *fingerprintTable) probeAndUpdate(src []byte, ip int, key uint32, idx uint32) (wpo uint32, which int, found bool) {
	s := &t.slots[idx]

	if s.key0 == key && verifyCandidate(src, ip, int(s.pos0)) {
		return s.pos0, 0, true
	}
	if s.key1 == key && verifyCandidate(src, ip, int(s.pos1)) {
		return s.pos1, 1, true
	}

	if s.key0 != key {
		s.key0, s.pos0 = key, uint32(ip) //nolint:gosec // G115: ip bounded by srcl < 2^31
	} else {
		s.key1, s.pos1 = key, uint32(ip) //nolint:gosec // G115: ip bounded by srcl < 2^31
	}
	return 0, -1, false
}

// refresh overwrites the winning tuple (identified by which, as returned by
// probeAndUpdate) with (key, pos), keeping a good long-range reference
// fresh for future lookups.
func (t *fingerprintTable) refresh(idx uint32, which int, key uint32, pos int) {
	s := &t.slots[idx]
	if which == 1 {
		s.key1, s.pos1 = key, uint32(pos) //nolint:gosec // G115: pos bounded by srcl < 2^31
		return
	}
	s.key0, s.pos0 = key, uint32(pos) //nolint:gosec // G115: pos bounded by srcl < 2^31
}

// verifyCandidate reports whether src[wpo:wpo+6] == src[ip:ip+6], the
// 6-byte prefix check required before accepting a table hit as a usable
// match candidate.
func verifyCandidate(src []byte, ip, wpo int) bool {
	if wpo < 0 || wpo >= ip {
		return false
	}
	if ip+6 > len(src) || wpo+6 > len(src) {
		return false
	}
	a := src[ip : ip+6]
	b := src[wpo : wpo+6]
	for i := 0; i < 6; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
