// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sorting

// StepKind identifies what a recursive sort did with a range.
type StepKind uint8

const (
	// StepSplit: the range was divided at Mid and both halves are about
	// to be sorted.
	StepSplit StepKind = iota + 1
	// StepMerge: the sorted halves [Lo, Mid) and [Mid, Hi) are about to
	// be merged.
	StepMerge
	// StepInsertion: the range is small enough to be insertion sorted.
	StepInsertion
)

func (k StepKind) String() string {
	switch k {
	case StepSplit:
		return "split"
	case StepMerge:
		return "merge"
	case StepInsertion:
		return "insertion"
	}
	return "unknown"
}

// A Step describes one decision taken by MergeSort or HybridSort.
type Step struct {
	Kind  StepKind
	Lo    int
	Mid   int // zero for StepInsertion
	Hi    int
	Depth int // recursion depth, 0 for the range passed by the caller
}

// A Tracer observes the steps of a recursive sort. Step is called
// synchronously from the sorting goroutine, before the step runs.
type Tracer interface {
	Step(Step)
}

// TracerFunc adapts an ordinary function to the Tracer interface.
type TracerFunc func(Step)

func (f TracerFunc) Step(s Step) { f(s) }

// run carries the per-call state of a recursive sort.
type run[E any] struct {
	t     Tracer
	merge func(s []E, lo, mid, hi int)
}

func (r *run[E]) step(kind StepKind, lo, mid, hi, depth int) {
	if r.t == nil {
		return
	}
	r.t.Step(Step{Kind: kind, Lo: lo, Mid: mid, Hi: hi, Depth: depth})
}

// split returns the midpoint of [lo, hi), rounded up, so the lower half
// [lo, mid) is never shorter than the upper half [mid, hi): [0, 5) splits
// into [0, 3) and [3, 5).
func split(lo, hi int) int {
	return int(uint(lo+hi+1) >> 1)
}
