// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bench

import (
	"golang.org/x/exp/slices"
	"golang.org/x/xerrors"

	"github.com/algolab/clrs/sorting"
)

// Params carries the per-suite arguments some algorithms need.
type Params struct {
	K   int // hybrid threshold
	Max int // largest value the input may hold; counting sort needs Max >= 0
}

// An Algorithm sorts a whole slice of ints in place.
type Algorithm struct {
	Name string
	// Traced reports whether Sort passes steps to its Tracer.
	Traced bool
	// Sort sorts s. t may be nil.
	Sort func(s []int, p Params, t sorting.Tracer) error
}

var algorithms = map[string]Algorithm{
	"insertion": {
		Name: "insertion",
		Sort: func(s []int, _ Params, _ sorting.Tracer) error {
			sorting.InsertionSort(s)
			return nil
		},
	},
	"merge": {
		Name:   "merge",
		Traced: true,
		Sort: func(s []int, _ Params, t sorting.Tracer) error {
			return sorting.TraceMergeSort(t, s, 0, len(s))
		},
	},
	"hybrid": {
		Name:   "hybrid",
		Traced: true,
		Sort: func(s []int, p Params, t sorting.Tracer) error {
			return sorting.TraceHybridSort(t, s, p.K, 0, len(s))
		},
	},
	"counting": {
		Name: "counting",
		Sort: func(s []int, p Params, _ sorting.Tracer) error {
			out := make([]int, len(s))
			// Max is inclusive; the counting bound is exclusive.
			if err := sorting.CountingSort(s, out, p.Max+1); err != nil {
				return err
			}
			copy(s, out)
			return nil
		},
	},
	"radix": {
		Name: "radix",
		Sort: func(s []int, _ Params, _ sorting.Tracer) error {
			sorting.RadixSort(s)
			return nil
		},
	},
	// pdq is the pattern-defeating quicksort of golang.org/x/exp/slices,
	// the baseline the others are measured against.
	"pdq": {
		Name: "pdq",
		Sort: func(s []int, _ Params, _ sorting.Tracer) error {
			slices.Sort(s)
			return nil
		},
	},
	"quick": {
		Name: "quick",
		Sort: func(s []int, _ Params, _ sorting.Tracer) error {
			return sorting.QuickSort(s, 0, len(s))
		},
	},
}

// Lookup returns the algorithm registered under name.
func Lookup(name string) (Algorithm, error) {
	a, ok := algorithms[name]
	if !ok {
		return Algorithm{}, xerrors.Errorf("bench: unknown algorithm %q (have %v)", name, Names())
	}
	return a, nil
}

// Names returns the registered algorithm names in order.
func Names() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sorting.InsertionSort(names)
	return names
}
