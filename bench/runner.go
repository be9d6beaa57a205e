// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bench times the sorting algorithms over generated inputs.
//
// A suite runs each trial on its own freshly generated slice, so trials
// share no data and may run concurrently on a worker pool.
package bench

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"
	"golang.org/x/xerrors"

	"github.com/algolab/clrs/logutil"
	"github.com/algolab/clrs/randgen"
	"github.com/algolab/clrs/sortotel"
	"github.com/algolab/clrs/stats"
)

// A Result holds the timings of one suite at one input size.
type Result struct {
	Suite     string
	Algorithm string
	N         int
	Samples   []time.Duration // indexed by trial
	Summary   stats.Summary
}

// A Runner executes suites.
type Runner struct {
	logger     *zap.Logger
	instrument *sortotel.Instrument
}

// An Option configures a Runner.
type Option func(*Runner)

// WithLogger logs suite progress to l.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// WithInstrument reports every trial through in.
func WithInstrument(in *sortotel.Instrument) Option {
	return func(r *Runner) { r.instrument = in }
}

// NewRunner returns a Runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunConfig runs every suite in c in order.
func (r *Runner) RunConfig(ctx context.Context, c *Config) ([]Result, error) {
	var results []Result
	for i := range c.Suites {
		rs, err := r.Run(ctx, &c.Suites[i])
		if err != nil {
			return results, err
		}
		results = append(results, rs...)
	}
	return results, nil
}

// Run runs s, which must already be adjusted and valid, and returns one
// Result per size. Every trial's output is verified; the first failure
// aborts the suite.
func (r *Runner) Run(ctx context.Context, s *Suite) ([]Result, error) {
	alg, err := Lookup(s.Algorithm)
	if err != nil {
		return nil, err
	}
	logger := r.logger.With(zap.String("suite", s.Name), zap.String("algorithm", alg.Name))

	var (
		mu       sync.Mutex
		firstErr error
	)
	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}
	failed := func() error {
		mu.Lock()
		defer mu.Unlock()
		return firstErr
	}
	pool, err := ants.NewPool(s.Workers)
	if err != nil {
		return nil, xerrors.Errorf("bench: %w", err)
	}
	defer pool.Release()

	results := make([]Result, 0, len(s.Sizes))
	for _, n := range s.Sizes {
		start := time.Now()
		samples := make([]time.Duration, s.Trials)
		var wg sync.WaitGroup
		for i := 0; i < s.Trials; i++ {
			if err := ctx.Err(); err != nil {
				fail(err)
				break
			}
			gen, err := r.generator(s, i)
			if err != nil {
				fail(err)
				break
			}
			i, n := i, n
			wg.Add(1)
			err = pool.Submit(func() {
				defer wg.Done()
				defer func() {
					if v := recover(); v != nil {
						fail(xerrors.Errorf("bench: suite %q: n=%d trial %d panicked: %v", s.Name, n, i, v))
					}
				}()
				d, err := r.trial(ctx, alg, s, gen.Ints(n))
				if err != nil {
					fail(xerrors.Errorf("bench: suite %q: n=%d trial %d: %w", s.Name, n, i, err))
					return
				}
				samples[i] = d
			})
			if err != nil {
				wg.Done()
				fail(xerrors.Errorf("bench: %w", err))
				break
			}
		}
		wg.Wait()
		if err := failed(); err != nil {
			return results, err
		}
		res := Result{
			Suite:     s.Name,
			Algorithm: alg.Name,
			N:         n,
			Samples:   samples,
			Summary:   stats.Summarize(samples),
		}
		logger.Info("suite size done",
			zap.Int("n", n),
			zap.Int("trials", s.Trials),
			zap.Duration("median", res.Summary.Median),
			logutil.Elapsed(time.Since(start)))
		results = append(results, res)
	}
	return results, nil
}

func (r *Runner) generator(s *Suite, trial int) (*randgen.Generator, error) {
	if s.Seed == 0 {
		return randgen.New(s.Min, s.Max)
	}
	return randgen.NewSeeded(s.Min, s.Max, s.Seed+uint64(trial))
}

// trial sorts a copy of input and verifies the result.
func (r *Runner) trial(ctx context.Context, alg Algorithm, s *Suite, input []int) (time.Duration, error) {
	work := make([]int, len(input))
	copy(work, input)

	var elapsed time.Duration
	sortFn := func(context.Context) error {
		start := time.Now()
		err := alg.Sort(work, s.params(), nil)
		elapsed = time.Since(start)
		return err
	}
	var err error
	if r.instrument != nil {
		run := sortotel.Run{Algorithm: alg.Name, N: len(work)}
		if alg.Name == "hybrid" {
			run.K = s.Threshold
		}
		err = r.instrument.Do(ctx, run, sortFn)
	} else {
		err = sortFn(ctx)
	}
	if err != nil {
		return 0, err
	}
	if err := Verify(input, work); err != nil {
		return 0, err
	}
	return elapsed, nil
}

// Errors reported by Verify.
var (
	ErrNotSorted      = xerrors.New("output is not sorted")
	ErrNotPermutation = xerrors.New("output is not a permutation of the input")
)

// Verify checks that output is input in ascending order.
func Verify(input, output []int) error {
	if len(input) != len(output) {
		return xerrors.Errorf("%w: length %d, want %d", ErrNotPermutation, len(output), len(input))
	}
	for i := 1; i < len(output); i++ {
		if output[i] < output[i-1] {
			return xerrors.Errorf("%w: output[%d]=%d > output[%d]=%d", ErrNotSorted, i-1, output[i-1], i, output[i])
		}
	}
	counts := make(map[int]int, len(input))
	for _, v := range input {
		counts[v]++
	}
	for _, v := range output {
		if counts[v] == 0 {
			return xerrors.Errorf("%w: unexpected %d", ErrNotPermutation, v)
		}
		counts[v]--
	}
	return nil
}

func (r Result) String() string {
	return fmt.Sprintf("%s/%s n=%d median=%v", r.Suite, r.Algorithm, r.N, r.Summary.Median)
}
