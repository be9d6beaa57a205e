// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sorting

import "golang.org/x/exp/constraints"

// Merge merges the ascending runs s[lo:mid] and s[mid:hi] into an
// ascending s[lo:hi], using O(hi-lo) scratch space.
//
// sup is appended to a copy of each run as a sentinel, so it must be
// strictly greater than every element of s[lo:hi]; Merge rejects the call
// otherwise. When the runs hold equal elements, the one from the upper run
// is written first.
//
// Merge does not check that the runs are sorted.
func Merge[E constraints.Ordered](s []E, lo, mid, hi int, sup E) error {
	if err := checkSplit("merge", len(s), lo, mid, hi); err != nil {
		return err
	}
	for i := lo; i < hi; i++ {
		if !(s[i] < sup) {
			return invalidf("merge: element %v at index %d is not below sentinel %v", s[i], i, sup)
		}
	}
	sentinelMerge(s, lo, mid, hi, sup)
	return nil
}

func sentinelMerge[E constraints.Ordered](s []E, lo, mid, hi int, sup E) {
	if lo >= hi {
		return
	}
	left := make([]E, mid-lo+1)
	copy(left, s[lo:mid])
	left[mid-lo] = sup
	right := make([]E, hi-mid+1)
	copy(right, s[mid:hi])
	right[hi-mid] = sup

	l, r := 0, 0
	for i := lo; i < hi; i++ {
		if left[l] < right[r] {
			s[i] = left[l]
			l++
		} else {
			s[i] = right[r]
			r++
		}
	}
}

// boundedMerge is sentinelMerge for element types without a usable
// sentinel: each step checks whether a run is exhausted. Ties are broken
// the same way.
func boundedMerge[E constraints.Ordered](s []E, lo, mid, hi int) {
	left := append([]E(nil), s[lo:mid]...)
	right := append([]E(nil), s[mid:hi]...)

	l, r := 0, 0
	for i := lo; i < hi; i++ {
		switch {
		case l == len(left):
			s[i] = right[r]
			r++
		case r == len(right):
			s[i] = left[l]
			l++
		case left[l] < right[r]:
			s[i] = left[l]
			l++
		default:
			s[i] = right[r]
			r++
		}
	}
}

// MergeSort sorts s[lo:hi] ascending in place in O(n log n) time.
//
// Runs are merged with Supremum[E]() as sentinel. If s[lo:hi] contains
// that value (or a NaN), no strict sentinel exists and MergeSort merges
// with explicit bounds checks instead; the result is the same.
func MergeSort[E Bounded](s []E, lo, hi int) error {
	return TraceMergeSort[E](nil, s, lo, hi)
}

// TraceMergeSort is MergeSort reporting each split and merge to t.
// A nil t traces nothing.
func TraceMergeSort[E Bounded](t Tracer, s []E, lo, hi int) error {
	if err := checkRange("mergesort", len(s), lo, hi); err != nil {
		return err
	}
	sup := Supremum[E]()
	r := &run[E]{
		t: t,
		merge: func(s []E, lo, mid, hi int) {
			sentinelMerge(s, lo, mid, hi, sup)
		},
	}
	for _, v := range s[lo:hi] {
		if !(v < sup) {
			r.merge = boundedMerge[E]
			break
		}
	}
	r.mergeSort(s, lo, hi, 0)
	return nil
}

func (r *run[E]) mergeSort(s []E, lo, hi, depth int) {
	if hi-lo < 2 {
		return
	}
	mid := split(lo, hi)
	r.step(StepSplit, lo, mid, hi, depth)
	r.mergeSort(s, lo, mid, depth+1)
	r.mergeSort(s, mid, hi, depth+1)
	r.step(StepMerge, lo, mid, hi, depth)
	r.merge(s, lo, mid, hi)
}
