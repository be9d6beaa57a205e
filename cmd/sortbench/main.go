// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Sortbench sorts generated integer sequences and times the sorting
// algorithms against each other.
//
// Usage:
//
//	sortbench sort [flags] [values...]
//	sortbench bench --config suites.toml
//
// The sort subcommand sorts the given values, or n generated ones, with
// one algorithm and prints the input and output. With --trace, every
// split, merge and insertion step of the merge and hybrid sorts is logged
// at debug level to the backend chosen by --log-backend.
//
// The bench subcommand runs the suites described by a TOML file and
// prints a summary table:
//
//	[[suite]]
//	algorithm = "hybrid"
//	sizes = [1000, 100000]
//	trials = 10
//	threshold = 32
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
