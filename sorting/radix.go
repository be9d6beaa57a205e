// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sorting

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// RadixSort sorts s ascending with a least-significant-digit radix sort
// over 8-bit digits. Each digit is placed with a stable counting pass, so
// RadixSort takes O(w·(n+256)) time for w-byte elements and O(n) extra
// space.
//
// For signed types the sign bit of the most significant digit is flipped
// so negative values order before non-negative ones.
func RadixSort[E constraints.Integer](s []E) {
	if len(s) < 2 {
		return
	}
	var zero E
	width := int(unsafe.Sizeof(zero))
	signed := ^zero < 0

	src, dst := s, make([]E, len(s))
	for d := 0; d < width; d++ {
		shift := uint(8 * d)
		flip := 0
		if signed && d == width-1 {
			flip = 0x80
		}
		err := CountingSortKey(src, dst, 256, func(v E) int {
			return int(uint64(v)>>shift&0xff) ^ flip
		})
		if err != nil {
			panic(err) // keys are bytes, so this cannot happen
		}
		src, dst = dst, src
	}
	if width%2 == 1 {
		copy(s, src)
	}
}
