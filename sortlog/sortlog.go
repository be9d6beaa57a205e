// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sortlog renders the steps of a traced sort as structured log
// records. Each supported logging library has a constructor returning a
// sorting.Tracer:
//
//	logger, _ := zap.NewDevelopment()
//	sorting.TraceHybridSort(sortlog.NewZap(logger), s, k, 0, len(s))
//
// Every step becomes one debug-level record whose message is the step kind
// ("split", "merge" or "insertion") and whose fields are lo, hi, depth and,
// except for insertion steps, mid.
package sortlog

import "github.com/algolab/clrs/sorting"

// Field names shared by every backend.
const (
	KeyLo    = "lo"
	KeyMid   = "mid"
	KeyHi    = "hi"
	KeyDepth = "depth"
)

// keyvals returns the fields of s as alternating keys and values.
func keyvals(s sorting.Step) []any {
	kv := make([]any, 0, 8)
	kv = append(kv, KeyLo, s.Lo)
	if s.Kind != sorting.StepInsertion {
		kv = append(kv, KeyMid, s.Mid)
	}
	return append(kv, KeyHi, s.Hi, KeyDepth, s.Depth)
}
