// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sorting

import "golang.org/x/exp/constraints"

// IsSorted reports whether s is sorted in ascending order.
func IsSorted[E constraints.Ordered](s []E) bool {
	for i := len(s) - 1; i > 0; i-- {
		if s[i] < s[i-1] {
			return false
		}
	}
	return true
}

// IsSortedFunc reports whether s is sorted according to less.
func IsSortedFunc[E any](s []E, less func(a, b E) bool) bool {
	for i := len(s) - 1; i > 0; i-- {
		if less(s[i], s[i-1]) {
			return false
		}
	}
	return true
}
