// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sorting

import (
	"errors"
	"fmt"

	"golang.org/x/xerrors"
)

// ErrInvalidArgument is wrapped by every error returned from this package.
var ErrInvalidArgument = errors.New("invalid argument")

// A RangeError reports a range that does not fit its slice.
type RangeError struct {
	Op          string
	Lo, Mid, Hi int // Mid is -1 when the operation takes no split point
	Len         int
}

func (e *RangeError) Error() string {
	if e.Mid < 0 {
		return fmt.Sprintf("sorting: %s: range [%d, %d) invalid for length %d", e.Op, e.Lo, e.Hi, e.Len)
	}
	return fmt.Sprintf("sorting: %s: split [%d, %d, %d) invalid for length %d", e.Op, e.Lo, e.Mid, e.Hi, e.Len)
}

func (e *RangeError) Unwrap() error { return ErrInvalidArgument }

// A ValueError reports an element that lies outside the domain an
// operation accepts.
type ValueError struct {
	Op    string
	Index int
	Value any
	Limit any // exclusive upper bound of the domain
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("sorting: %s: element %v at index %d outside [0, %v)", e.Op, e.Value, e.Index, e.Limit)
}

func (e *ValueError) Unwrap() error { return ErrInvalidArgument }

func checkRange(op string, n, lo, hi int) error {
	if lo < 0 || lo > hi || hi > n {
		return &RangeError{Op: op, Lo: lo, Mid: -1, Hi: hi, Len: n}
	}
	return nil
}

func checkSplit(op string, n, lo, mid, hi int) error {
	if lo < 0 || lo > mid || mid > hi || hi > n {
		return &RangeError{Op: op, Lo: lo, Mid: mid, Hi: hi, Len: n}
	}
	return nil
}

func invalidf(format string, args ...any) error {
	return xerrors.Errorf("sorting: "+format+": %w", append(args, ErrInvalidArgument)...)
}
