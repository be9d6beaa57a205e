// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sorting

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHybridSortThresholdIndependent(t *testing.T) {
	const n = 64
	input := randomInts(t, n, -100, 100, 11)
	want := append([]int{}, input...)
	InsertionSort(want)
	for k := 1; k <= n; k++ {
		got := append([]int{}, input...)
		if err := HybridSort(got, k, 0, n); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("k=%d: mismatch (-want +got):\n%s", k, diff)
		}
	}
}

func TestHybridSortThresholdIndependentSignedZero(t *testing.T) {
	negZero := math.Copysign(0, -1)
	input := []float64{0, negZero, 1, negZero, 0, -1, 0, negZero, 2, negZero, 0}
	signs := func(s []float64) []bool {
		b := make([]bool, len(s))
		for i, v := range s {
			b[i] = math.Signbit(v)
		}
		return b
	}

	var want []bool
	for k := 1; k <= len(input)+1; k++ {
		got := append([]float64{}, input...)
		if err := HybridSort(got, k, 0, len(got)); err != nil {
			t.Fatal(err)
		}
		if !IsSorted(got) {
			t.Fatalf("k=%d: not sorted: %v", k, got)
		}
		if k == 1 {
			want = signs(got)
			continue
		}
		if diff := cmp.Diff(want, signs(got)); diff != "" {
			t.Errorf("k=%d: sign bits differ from k=1 (-want +got):\n%s", k, diff)
		}
	}

	// Two elements: the merge at k=1 and the insertion pass at k=2 agree.
	for k := 1; k <= 2; k++ {
		got := []float64{0, negZero}
		if err := HybridSort(got, k, 0, 2); err != nil {
			t.Fatal(err)
		}
		if !math.Signbit(got[0]) || math.Signbit(got[1]) {
			t.Errorf("k=%d: got sign bits [%v %v], want [true false]", k, math.Signbit(got[0]), math.Signbit(got[1]))
		}
	}
}

func TestTraceHybridSort(t *testing.T) {
	var steps []Step
	s := []int{5, 3, 4, 1, 2}
	if err := TraceHybridSort(TracerFunc(func(st Step) { steps = append(steps, st) }), s, 2, 0, len(s)); err != nil {
		t.Fatal(err)
	}
	want := []Step{
		{Kind: StepSplit, Lo: 0, Mid: 3, Hi: 5},
		{Kind: StepSplit, Lo: 0, Mid: 2, Hi: 3, Depth: 1},
		{Kind: StepInsertion, Lo: 0, Hi: 2, Depth: 2},
		{Kind: StepInsertion, Lo: 2, Hi: 3, Depth: 2},
		{Kind: StepMerge, Lo: 0, Mid: 2, Hi: 3, Depth: 1},
		{Kind: StepInsertion, Lo: 3, Hi: 5, Depth: 1},
		{Kind: StepMerge, Lo: 0, Mid: 3, Hi: 5},
	}
	if diff := cmp.Diff(want, steps); diff != "" {
		t.Errorf("steps mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 2, 3, 4, 5}, s); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestInsertionSortFunc(t *testing.T) {
	s := []int{5, 3, 4, 1, 2}
	InsertionSortFunc(s, func(a, b int) bool { return a > b })
	if diff := cmp.Diff([]int{5, 4, 3, 2, 1}, s); diff != "" {
		t.Errorf("descending mismatch (-want +got):\n%s", diff)
	}
	if !IsSortedFunc(s, func(a, b int) bool { return a > b }) {
		t.Errorf("IsSortedFunc(descending) = false")
	}
	if IsSorted(s) {
		t.Errorf("IsSorted(%v) = true", s)
	}

	recs := []record{{2, 0}, {1, 1}, {2, 2}, {1, 3}}
	InsertionSortFunc(recs, func(a, b record) bool { return a.key < b.key })
	want := []record{{1, 1}, {1, 3}, {2, 0}, {2, 2}}
	if diff := cmp.Diff(want, recs, cmp.AllowUnexported(record{})); diff != "" {
		t.Errorf("stability mismatch (-want +got):\n%s", diff)
	}
}
