// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bench

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sys/cpu"
)

// WriteReport writes a table of results to w, preceded by a description
// of the machine.
func WriteReport(w io.Writer, results []Result) error {
	if _, err := fmt.Fprintf(w, "goos: %s\ngoarch: %s\ncpu features: %s\n\n",
		runtime.GOOS, runtime.GOARCH, cpuFeatures()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%-16s %-10s %8s %6s %12s %12s %12s %12s %12s\n",
		"SUITE", "ALGORITHM", "N", "TRIALS", "MIN", "MEDIAN", "MEAN", "STDDEV", "P90"); err != nil {
		return err
	}
	for _, r := range results {
		s := r.Summary
		_, err := fmt.Fprintf(w, "%-16s %-10s %8d %6d %12s %12s %12s %12s %12s\n",
			r.Suite, r.Algorithm, r.N, s.N, round(s.Min), round(s.Median), round(s.Mean), round(s.StdDev), round(s.P90))
		if err != nil {
			return err
		}
	}
	return nil
}

func round(d time.Duration) time.Duration {
	switch {
	case d >= time.Second:
		return d.Round(time.Millisecond)
	case d >= time.Millisecond:
		return d.Round(time.Microsecond)
	}
	return d
}

// cpuFeatures lists the vector extensions relevant on this architecture.
func cpuFeatures() string {
	var have []string
	add := func(name string, ok bool) {
		if ok {
			have = append(have, name)
		}
	}
	switch runtime.GOARCH {
	case "amd64", "386":
		add("sse4.1", cpu.X86.HasSSE41)
		add("sse4.2", cpu.X86.HasSSE42)
		add("avx", cpu.X86.HasAVX)
		add("avx2", cpu.X86.HasAVX2)
		add("avx512f", cpu.X86.HasAVX512F)
		add("bmi2", cpu.X86.HasBMI2)
	case "arm64":
		add("asimd", cpu.ARM64.HasASIMD)
		add("sve", cpu.ARM64.HasSVE)
		add("atomics", cpu.ARM64.HasATOMICS)
	}
	if len(have) == 0 {
		return "none"
	}
	return strings.Join(have, " ")
}
