// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats summarizes timing samples collected by the benchmark
// harness.
//
// As a rule of thumb, a function belongs in this package if a benchmark
// report needs it. Results are durations; fractional nanoseconds are
// truncated.
package stats

// References:
//
// Hyndman, Rob J.; Fan, Yanan (November 1996).
// "Sample Quantiles in Statistical Packages".
// American Statistician. 50 (4).
// American Statistical Association: 361–365.
// doi:10.2307/2684934. JSTOR 2684934.

import (
	"math"
	"time"

	"github.com/algolab/clrs/sorting"
)

// A Summary describes a set of timing samples.
type Summary struct {
	N        int
	Min, Max time.Duration
	Mean     time.Duration
	StdDev   time.Duration // sample standard deviation; 0 when N == 1
	Median   time.Duration
	P90      time.Duration
}

// Summarize computes a Summary of samples.
//
// Summarize does not modify the slice.
//
// Summarize panics if samples is empty.
func Summarize(samples []time.Duration) Summary {
	mean, sd := MeanAndStdDev(samples)
	q := Quantiles(samples, 0, 0.5, 0.9, 1)
	return Summary{
		N:      len(samples),
		Min:    q[0],
		Max:    q[3],
		Mean:   mean,
		StdDev: sd,
		Median: q[1],
		P90:    q[2],
	}
}

// Mean returns the arithmetic mean of samples.
//
// Mean does not modify the slice.
//
// Mean panics if samples is empty.
func Mean(samples []time.Duration) time.Duration {
	return time.Duration(mean(samples))
}

// MeanAndStdDev returns the arithmetic mean and
// sample standard deviation of samples; the standard
// deviation is only defined for len(samples) > 1.
//
// MeanAndStdDev does not modify the slice.
//
// MeanAndStdDev panics if samples is empty.
func MeanAndStdDev(samples []time.Duration) (time.Duration, time.Duration) {
	m := mean(samples)
	if len(samples) == 1 {
		return time.Duration(m), 0
	}
	squaredDiffs := 0.0
	for _, v := range samples {
		diff := float64(v) - m
		squaredDiffs += diff * diff
	}
	return time.Duration(m), time.Duration(math.Sqrt(squaredDiffs / float64(len(samples)-1)))
}

// mean sums in float64 so long runs cannot overflow.
func mean(samples []time.Duration) float64 {
	if len(samples) == 0 {
		panic("mean: empty slice")
	}
	sum := 0.0
	for _, v := range samples {
		sum += float64(v)
	}
	return sum / float64(len(samples))
}

// Median returns the median of samples.
//
// Median does not modify the slice.
//
// If samples is an empty slice, it panics.
func Median(samples []time.Duration) time.Duration { return Quantiles(samples, 0.5)[0] }

// Quantiles returns a sequence of quantiles of samples.
//
// The returned slice has the same length as the quantiles slice,
// and the elements are one-to-one with the input quantiles.
// A quantile of 0 corresponds to the minimum value in samples and
// a quantile of 1 corresponds to the maximum value in samples.
// A quantile of 0.5 is the same as the value returned by [Median].
//
// Quantiles does not modify the slice. It sorts a copy unless samples is
// already sorted.
//
// Quantiles panics if samples is an empty slice or any
// quantile is not contained in the interval [0, 1].
func Quantiles(samples []time.Duration, quantiles ...float64) []time.Duration {
	if len(samples) == 0 {
		panic("quantiles: empty slice")
	}
	if !sorting.IsSorted(samples) {
		samples = append([]time.Duration(nil), samples...)
		if err := sorting.HybridSort(samples, sorting.DefaultThreshold, 0, len(samples)); err != nil {
			panic(err)
		}
	}
	res := make([]time.Duration, len(quantiles))
	for i, q := range quantiles {
		if !(0 <= q && q <= 1) {
			panic("quantile must be contained in the interval [0, 1]")
		}
		// Quantiles uses the "inclusive" method, also known as Q7 in
		// Hyndman and Fan, or the "linear" or "R-7" method.
		res[i] = hyndmanFanR7(samples, q)
	}
	return res
}

// hyndmanFanR7 implements the Hyndman and Fan "R-7"
// method of computing interpolated quantile values
// over a sorted slice of samples.
func hyndmanFanR7(samples []time.Duration, q float64) time.Duration {
	h := float64(len(samples)-1)*q + 1
	lo, hi := samples[floor(h-1)], samples[ceil(h-1)]
	// the h-th smallest of len(samples) values is at fn(h)-1.
	return lo + time.Duration((h-math.Floor(h))*float64(hi-lo))
}

// ceil returns the integer value of [math.Ceil].
func ceil(n float64) int { return int(math.Ceil(n)) }

// floor returns the integer value of [math.Floor].
func floor(n float64) int { return int(math.Floor(n)) }
