// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sorting

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// CountingSort writes the elements of input to output in ascending order.
// Every element must lie in [0, maxValue), and output must have the same
// length as input without overlapping it. input is not
// modified.
//
// CountingSort runs in O(len(input) + maxValue) time with O(maxValue)
// extra space. It is stable, though for plain integers stability cannot be
// observed; see CountingSortKey.
func CountingSort[E constraints.Integer](input, output []E, maxValue int) error {
	return countingSort("countingsort", input, output, maxValue, func(v E) int {
		if uint64(v) > uint64(maxValue) {
			// Also catches negative values, which wrap to large ones.
			return -1
		}
		return int(v)
	})
}

// overlaps reports whether a and b share any element of memory.
func overlaps[T any](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	size := unsafe.Sizeof(a[0])
	if size == 0 {
		return false
	}
	pa := uintptr(unsafe.Pointer(&a[0]))
	pb := uintptr(unsafe.Pointer(&b[0]))
	return pa < pb+uintptr(len(b))*size && pb < pa+uintptr(len(a))*size
}

// CountingSortKey writes the elements of input to output ordered by key,
// which must map every element into [0, buckets). Elements with equal keys
// keep their relative input order. key may be called several times per
// element.
func CountingSortKey[T any](input, output []T, buckets int, key func(T) int) error {
	return countingSort("countingsortkey", input, output, buckets, key)
}

func countingSort[T any](op string, input, output []T, buckets int, key func(T) int) error {
	if len(output) != len(input) {
		return invalidf("%s: output length %d differs from input length %d", op, len(output), len(input))
	}
	if buckets < 0 {
		return invalidf("%s: negative bound %d", op, buckets)
	}
	if overlaps(input, output) {
		return invalidf("%s: output overlaps input", op)
	}
	for i, v := range input {
		if k := key(v); k < 0 || k >= buckets {
			return &ValueError{Op: op, Index: i, Value: v, Limit: buckets}
		}
	}

	count := make([]int, buckets)
	for _, v := range input {
		count[key(v)]++
	}
	// count[k] becomes the number of elements with key <= k, which is one
	// past the last output slot for key k.
	for k := 1; k < buckets; k++ {
		count[k] += count[k-1]
	}
	for i := len(input) - 1; i >= 0; i-- {
		k := key(input[i])
		count[k]--
		output[count[k]] = input[i]
	}
	return nil
}
