// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sorting

import "golang.org/x/exp/constraints"

// DefaultThreshold is a reasonable HybridSort threshold for machine
// integers.
const DefaultThreshold = 16

// HybridSort sorts s[lo:hi] ascending in place. Ranges of at most k
// elements are insertion sorted; longer ranges are split at the same point
// MergeSort uses, sorted recursively and merged.
//
// The merge checks for run exhaustion instead of relying on a sentinel, so
// HybridSort accepts any ordered type, strings included. On ties the
// element from the upper run is written first, and the insertion pass
// likewise moves later elements ahead of equal earlier ones, so equal
// elements come out in reverse input order.
//
// The result does not depend on k, only the running time does. This holds
// even for values that compare equal but differ, such as -0 and +0. k must
// be at least 1.
func HybridSort[E constraints.Ordered](s []E, k, lo, hi int) error {
	return TraceHybridSort[E](nil, s, k, lo, hi)
}

// TraceHybridSort is HybridSort reporting each split, merge and insertion
// pass to t. A nil t traces nothing.
func TraceHybridSort[E constraints.Ordered](t Tracer, s []E, k, lo, hi int) error {
	if k < 1 {
		return invalidf("hybridsort: threshold %d is below 1", k)
	}
	if err := checkRange("hybridsort", len(s), lo, hi); err != nil {
		return err
	}
	r := &run[E]{t: t, merge: boundedMerge[E]}
	hybridSort(r, s, k, lo, hi, 0)
	return nil
}

func hybridSort[E constraints.Ordered](r *run[E], s []E, k, lo, hi, depth int) {
	if hi-lo <= k {
		r.step(StepInsertion, lo, 0, hi, depth)
		insertionSortTiesFirst(s, lo, hi)
		return
	}
	mid := split(lo, hi)
	r.step(StepSplit, lo, mid, hi, depth)
	hybridSort(r, s, k, lo, mid, depth+1)
	hybridSort(r, s, k, mid, hi, depth+1)
	r.step(StepMerge, lo, mid, hi, depth)
	r.merge(s, lo, mid, hi)
}
