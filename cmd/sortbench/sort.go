// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/xerrors"

	"github.com/algolab/clrs/bench"
	"github.com/algolab/clrs/randgen"
	"github.com/algolab/clrs/sorting"
	"github.com/algolab/clrs/sortotel"
)

type sortOptions struct {
	algorithm string
	k         int
	n         int
	min, max  int
	seed      uint64
	trace     bool
}

func newSortCmd(root *rootOptions) *cobra.Command {
	opts := &sortOptions{}
	cmd := &cobra.Command{
		Use:   "sort [values...]",
		Short: "Sort the given values, or a generated sequence",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(cmd, root, opts, args)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.algorithm, "algorithm", "a", "hybrid", "sorting algorithm")
	f.IntVarP(&opts.k, "threshold", "k", sorting.DefaultThreshold, "hybrid sort insertion threshold")
	f.IntVarP(&opts.n, "n", "n", 25, "number of values to generate")
	f.IntVar(&opts.min, "min", 0, "smallest generated value")
	f.IntVar(&opts.max, "max", 1000, "largest generated value, inclusive")
	f.Uint64Var(&opts.seed, "seed", 0, "generator seed; 0 seeds from the clock")
	f.BoolVar(&opts.trace, "trace", false, "log each split, merge and insertion step")
	return cmd
}

func runSort(cmd *cobra.Command, root *rootOptions, opts *sortOptions, args []string) error {
	alg, err := bench.Lookup(opts.algorithm)
	if err != nil {
		return err
	}
	input, err := sortInput(opts, args)
	if err != nil {
		return err
	}
	// The largest value the input may hold.
	top := opts.max
	if len(args) > 0 {
		top = 0
		for _, v := range input {
			if v > top {
				top = v
			}
		}
	}

	var mk backend
	if opts.trace {
		if mk, err = lookupBackend(root.backend); err != nil {
			return err
		}
	}
	in, err := instrument()
	if err != nil {
		return err
	}

	output := make([]int, len(input))
	copy(output, input)
	run := sortotel.Run{Algorithm: alg.Name, N: len(output)}
	if alg.Name == "hybrid" {
		run.K = opts.k
	}
	err = in.Do(cmd.Context(), run, func(ctx context.Context) error {
		var t sorting.Tracer
		if mk != nil {
			t = mk(ctx, root.logger, cmd.ErrOrStderr())
		}
		return alg.Sort(output, bench.Params{K: opts.k, Max: top}, t)
	})
	if err != nil {
		root.logger.Error("sort failed", zap.String("algorithm", alg.Name), zap.Error(err))
		return err
	}
	root.logger.Debug("sorted", zap.String("algorithm", alg.Name), zap.Int("n", len(output)))

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "input: ", input)
	fmt.Fprintln(w, "output:", output)
	return nil
}

func sortInput(opts *sortOptions, args []string) ([]int, error) {
	if len(args) > 0 {
		values := make([]int, len(args))
		for i, a := range args {
			v, err := strconv.Atoi(a)
			if err != nil {
				return nil, xerrors.Errorf("value %d: %w", i, err)
			}
			values[i] = v
		}
		return values, nil
	}
	if opts.n < 0 {
		return nil, xerrors.Errorf("n must not be negative, got %d", opts.n)
	}
	var (
		g   *randgen.Generator
		err error
	)
	if opts.seed == 0 {
		g, err = randgen.New(opts.min, opts.max)
	} else {
		g, err = randgen.NewSeeded(opts.min, opts.max, opts.seed)
	}
	if err != nil {
		return nil, err
	}
	return g.Ints(opts.n), nil
}
