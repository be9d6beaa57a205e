// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package randgen produces pseudo-random integers in a closed interval.
// It supplies test and benchmark input for package sorting, which never
// depends on it.
package randgen

import (
	"time"

	"golang.org/x/exp/rand"
	"golang.org/x/xerrors"
)

// now is replaced in tests.
var now = time.Now

// A Generator yields integers uniformly distributed in [start, end].
// A Generator is not safe for concurrent use.
type Generator struct {
	start int
	span  uint64 // end-start+1; 0 means the whole int range
	r     *rand.Rand
}

// New returns a Generator for [start, end] seeded from the current time.
func New(start, end int) (*Generator, error) {
	return NewSeeded(start, end, uint64(now().UnixNano()))
}

// NewSeeded returns a Generator for [start, end] whose sequence is
// determined by seed.
func NewSeeded(start, end int, seed uint64) (*Generator, error) {
	if start > end {
		return nil, xerrors.Errorf("randgen: empty interval [%d, %d]", start, end)
	}
	return &Generator{
		start: start,
		span:  uint64(end) - uint64(start) + 1,
		r:     rand.New(rand.NewSource(seed)),
	}, nil
}

// Next returns the next value.
func (g *Generator) Next() int {
	if g.span == 0 {
		return int(g.r.Uint64())
	}
	return g.start + int(g.r.Uint64n(g.span))
}

// Fill overwrites every element of s with the next values.
func (g *Generator) Fill(s []int) {
	for i := range s {
		s[i] = g.Next()
	}
}

// Ints returns a new slice of n values.
func (g *Generator) Ints(n int) []int {
	s := make([]int, n)
	g.Fill(s)
	return s
}
