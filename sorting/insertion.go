// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sorting

import "golang.org/x/exp/constraints"

// InsertionSort sorts s in ascending order.
//
// It runs in O(n²) time in general and O(n) when s is already sorted.
// Equal elements keep their relative order.
func InsertionSort[E constraints.Ordered](s []E) {
	insertionSort(s, 0, len(s))
}

// InsertionSortFunc sorts s so that less(s[j], s[i]) is false for every
// i < j. Passing func(a, b E) bool { return a > b } sorts descending.
// Equal elements keep their relative order.
func InsertionSortFunc[E any](s []E, less func(a, b E) bool) {
	for j := 1; j < len(s); j++ {
		v := s[j]
		i := j - 1
		for i >= 0 && less(v, s[i]) {
			s[i+1] = s[i]
			i--
		}
		s[i+1] = v
	}
}

// insertionSort sorts s[lo:hi] ascending in place, keeping equal
// elements in order.
func insertionSort[E constraints.Ordered](s []E, lo, hi int) {
	for j := lo + 1; j < hi; j++ {
		v := s[j]
		i := j - 1
		for i >= lo && s[i] > v {
			s[i+1] = s[i]
			i--
		}
		s[i+1] = v
	}
}

// insertionSortTiesFirst sorts s[lo:hi] ascending in place, moving each
// element ahead of the equal ones before it. Runs of equal elements end
// up reversed, matching the merges, which take from the right on ties.
func insertionSortTiesFirst[E constraints.Ordered](s []E, lo, hi int) {
	for j := lo + 1; j < hi; j++ {
		v := s[j]
		i := j - 1
		for i >= lo && s[i] >= v {
			s[i+1] = s[i]
			i--
		}
		s[i+1] = v
	}
}
