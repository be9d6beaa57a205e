// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sorting

import "golang.org/x/exp/constraints"

// QuickSort sorts s[lo:hi] ascending in place. It partitions around the
// median of the first, middle and last elements and recurses into the
// smaller side first, so the stack depth stays O(log n). The running time
// is O(n log n) on average and O(n²) in the worst case, which includes
// ranges dominated by a single repeated value.
func QuickSort[E constraints.Ordered](s []E, lo, hi int) error {
	if err := checkRange("quicksort", len(s), lo, hi); err != nil {
		return err
	}
	quickSort(s, lo, hi)
	return nil
}

func quickSort[E constraints.Ordered](s []E, lo, hi int) {
	for hi-lo > 1 {
		p := partition(s, lo, hi)
		if p-lo < hi-p-1 {
			quickSort(s, lo, p)
			lo = p + 1
		} else {
			quickSort(s, p+1, hi)
			hi = p
		}
	}
}

// partition rearranges s[lo:hi] around a pivot and returns its final
// index p: s[lo:p] <= s[p] < s[p+1:hi]. hi-lo must be at least 1.
func partition[E constraints.Ordered](s []E, lo, hi int) int {
	m := medianOfThree(s, lo, lo+(hi-lo)/2, hi-1)
	last := hi - 1
	s[m], s[last] = s[last], s[m]
	pivot := s[last]
	i := lo
	for j := lo; j < last; j++ {
		if s[j] <= pivot {
			s[i], s[j] = s[j], s[i]
			i++
		}
	}
	s[i], s[last] = s[last], s[i]
	return i
}

// medianOfThree returns whichever of a, b and c indexes the median of the
// three elements.
func medianOfThree[E constraints.Ordered](s []E, a, b, c int) int {
	if s[b] < s[a] {
		a, b = b, a
	}
	if s[c] < s[b] {
		b = c
		if s[b] < s[a] {
			b = a
		}
	}
	return b
}

// Select returns the k-th smallest element of s, counting from 0. It
// reorders s so that s[k] holds that element, s[:k] holds nothing larger
// and s[k+1:] nothing smaller.
func Select[E constraints.Ordered](s []E, k int) (E, error) {
	if k < 0 || k >= len(s) {
		var zero E
		return zero, invalidf("select: rank %d outside [0, %d)", k, len(s))
	}
	lo, hi := 0, len(s)
	for hi-lo > 1 {
		p := partition(s, lo, hi)
		switch {
		case k == p:
			return s[p], nil
		case k < p:
			hi = p
		default:
			lo = p + 1
		}
	}
	return s[k], nil
}

// Median returns the median of s. For an even number of elements it is
// the midpoint of the two middle elements, truncated toward zero for
// integer types. Median reorders s as Select does.
//
// Median of an empty slice is an error.
func Median[E Bounded](s []E) (E, error) {
	n := len(s)
	if n == 0 {
		var zero E
		return zero, invalidf("median: empty input")
	}
	b, err := Select(s, n/2)
	if err != nil || n%2 == 1 {
		return b, err
	}
	// Select leaves the lower middle element as the maximum of s[:n/2].
	a := s[0]
	for _, v := range s[1 : n/2] {
		if v > a {
			a = v
		}
	}
	return midpoint(a, b), nil
}

// midpoint returns the value halfway between a <= b without overflowing.
func midpoint[E Bounded](a, b E) E {
	var zero E
	if (a < zero) != (b < zero) {
		return (a + b) / 2
	}
	return a + (b-a)/2
}

// QuickMedian estimates the median of s without fully selecting it. It
// insertion sorts each group of five consecutive elements in place, takes
// the middle of every group (the midpoint of the two middle values for a
// short even-length final group) and returns the median of those.
//
// The estimate is exact for five or fewer elements. For larger inputs at
// least 3/10 of the elements, less a constant, lie on each side of it.
// QuickMedian runs in O(n) time and reorders s.
//
// QuickMedian of an empty slice is an error.
func QuickMedian[E Bounded](s []E) (E, error) {
	const group = 5
	if len(s) == 0 {
		var zero E
		return zero, invalidf("quickmedian: empty input")
	}
	mids := make([]E, 0, (len(s)+group-1)/group)
	for lo := 0; lo < len(s); lo += group {
		hi := lo + group
		if hi > len(s) {
			hi = len(s)
		}
		insertionSort(s, lo, hi)
		m := lo + (hi-lo)/2
		if (hi-lo)%2 == 1 {
			mids = append(mids, s[m])
		} else {
			mids = append(mids, midpoint(s[m-1], s[m]))
		}
	}
	return Median(mids)
}
