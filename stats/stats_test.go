// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func ms(vs ...int) []time.Duration {
	out := make([]time.Duration, len(vs))
	for i, v := range vs {
		out[i] = time.Duration(v) * time.Millisecond
	}
	return out
}

func TestMeanAndStdDev(t *testing.T) {
	tests := []struct {
		name         string
		data         []time.Duration
		mean, stddev time.Duration
	}{
		{"single value", ms(20), 20 * time.Millisecond, 0},
		{"equal values", ms(7, 7, 7, 7), 7 * time.Millisecond, 0},
		{"low count", ms(1, 2, 3, 4, 5), 3 * time.Millisecond, 1581138},
		{"spread", ms(10, 20, 30, 40, 50, 60, 70, 80, 90, 100, 110, 120, 130), 70 * time.Millisecond, 38944404},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			preimage := append([]time.Duration(nil), tc.data...)
			mean, stddev := MeanAndStdDev(tc.data)
			if diff := cmp.Diff(preimage, tc.data); diff != "" {
				t.Errorf("input slice cannot be modified (-want +got):\n%s", diff)
			}
			if mean != tc.mean {
				t.Errorf("miscalculated mean: got %v, want %v", mean, tc.mean)
			}
			if stddev != tc.stddev {
				t.Errorf("miscalculated stddev: got %v, want %v", stddev, tc.stddev)
			}
			if m := Mean(tc.data); m != tc.mean {
				t.Errorf("Mean = %v, want %v", m, tc.mean)
			}
		})
	}
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name string
		data []time.Duration
		want time.Duration
	}{
		{"odd length", ms(1, 5, 2, 8, 7), 5 * time.Millisecond},
		{"even length", ms(1, 5, 2, 8, 7, 9), 6 * time.Millisecond},
		{"high count odd length", ms(1, 5, 2, 8, 7, 9, 3, 4, 6, 11, 10, 12, 13), 7 * time.Millisecond},
		{"high count even length", ms(1, 5, 2, 8, 7, 9, 3, 4, 6, 11, 10, 12), 6500 * time.Microsecond},
		{"sorted", ms(1, 2, 3), 2 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			preimage := append([]time.Duration(nil), tc.data...)
			got := Median(tc.data)
			if diff := cmp.Diff(preimage, tc.data); diff != "" {
				t.Errorf("input slice cannot be modified (-want +got):\n%s", diff)
			}
			if got != tc.want {
				t.Errorf("miscalculated median: got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestQuantiles(t *testing.T) {
	got := Quantiles(ms(8, 7, 6, 5, 4, 3, 2, 1), 0.25, 0.5, 0.75)
	want := []time.Duration{2750 * time.Microsecond, 4500 * time.Microsecond, 6250 * time.Microsecond}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("quartiles mismatch (-want +got):\n%s", diff)
	}
}

func TestQuantilesPanics(t *testing.T) {
	for name, f := range map[string]func(){
		"empty":        func() { Quantiles(nil, 0.5) },
		"out of range": func() { Quantiles(ms(1), 1.5) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: no panic", name)
				}
			}()
			f()
		}()
	}
}

func TestSummarize(t *testing.T) {
	got := Summarize(ms(4, 1, 3, 2, 10, 6, 5, 9, 8, 7))
	want := Summary{
		N:      10,
		Min:    time.Millisecond,
		Max:    10 * time.Millisecond,
		Mean:   5500 * time.Microsecond,
		StdDev: 3027650,
		Median: 5500 * time.Microsecond,
		P90:    9099999, // R-7 interpolation truncates to whole nanoseconds
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
