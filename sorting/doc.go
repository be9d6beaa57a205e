// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sorting provides in-memory sorting routines over slices of
// ordered elements.
//
// The routines trade asymptotic guarantees against constant factors:
//
//   - InsertionSort is O(n²) but fast on short or nearly sorted input.
//   - MergeSort is O(n log n), merging with sentinel values so the merge
//     loop needs no end-of-run checks.
//   - HybridSort splits like MergeSort but hands ranges of at most k
//     elements to insertion sort, and merges with explicit exhaustion
//     checks so it works for element types without a maximum value.
//   - CountingSort and RadixSort do not compare elements at all; they
//     require integer keys from a known domain.
//
// QuickSort, Select and Median round out the package with partition-based
// routines.
//
// Every function is stateless. Ranges are half-open intervals [lo, hi) of
// indices. Arguments are validated before anything is written, so a call
// that returns an error leaves its slices untouched. All rejections wrap
// ErrInvalidArgument.
//
// Functions that sort in place must not be called concurrently on the same
// slice. Calls on distinct slices need no synchronization.
//
// Diagnostic output is not produced by this package. Callers that want to
// observe the recursion of MergeSort or HybridSort pass a Tracer to
// TraceMergeSort or TraceHybridSort.
package sorting
