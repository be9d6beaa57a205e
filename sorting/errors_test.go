// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sorting

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInvalidArgument(t *testing.T) {
	input := []int{3, 1, 2}
	tests := []struct {
		name string
		call func(s []int) error
	}{
		{"merge lo>hi", func(s []int) error { return MergeSort(s, 2, 1) }},
		{"merge hi>len", func(s []int) error { return MergeSort(s, 0, 4) }},
		{"merge lo<0", func(s []int) error { return MergeSort(s, -1, 2) }},
		{"hybrid k=0", func(s []int) error { return HybridSort(s, 0, 0, 3) }},
		{"hybrid k<0", func(s []int) error { return HybridSort(s, -3, 0, 3) }},
		{"hybrid hi>len", func(s []int) error { return HybridSort(s, 2, 0, 9) }},
		{"quick lo>hi", func(s []int) error { return QuickSort(s, 3, 0) }},
		{"core mid>hi", func(s []int) error { return Merge(s, 0, 3, 2, 100) }},
		{"core mid<lo", func(s []int) error { return Merge(s, 1, 0, 3, 100) }},
		{"core sentinel", func(s []int) error { return Merge(s, 0, 1, 3, 3) }},
		{"select rank", func(s []int) error { _, err := Select(s, 3); return err }},
		{"counting max", func(s []int) error { return CountingSort(s, make([]int, 3), 3) }},
		{"counting length", func(s []int) error { return CountingSort(s, make([]int, 2), 10) }},
		{"counting alias", func(s []int) error { return CountingSort(s, s, 10) }},
		{"counting overlap", func(s []int) error {
			buf := append(append([]int{}, s...), 0)
			err := CountingSort(buf[0:3], buf[1:4], 10)
			copy(s, buf)
			return err
		}},
		{"counting overlap below", func(s []int) error {
			buf := append([]int{0}, s...)
			err := CountingSort(buf[1:4], buf[0:3], 10)
			copy(s, buf[1:])
			return err
		}},
		{"counting negative bound", func(s []int) error { return CountingSort(s, make([]int, 3), -1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := append([]int{}, input...)
			err := tt.call(s)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("got %v, want an ErrInvalidArgument", err)
			}
			if diff := cmp.Diff(input, s); diff != "" {
				t.Errorf("rejected call modified its input (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRangeError(t *testing.T) {
	err := MergeSort([]int{1, 2}, 1, 5)
	var re *RangeError
	if !errors.As(err, &re) {
		t.Fatalf("got %T, want *RangeError", err)
	}
	want := &RangeError{Op: "mergesort", Lo: 1, Mid: -1, Hi: 5, Len: 2}
	if diff := cmp.Diff(want, re); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if got, want := re.Error(), "sorting: mergesort: range [1, 5) invalid for length 2"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestMedianEmpty(t *testing.T) {
	if _, err := Median([]float64{}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got %v, want an ErrInvalidArgument", err)
	}
}
