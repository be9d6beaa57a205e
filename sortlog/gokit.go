// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sortlog

import (
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"

	"github.com/algolab/clrs/sorting"
)

type gokitTracer struct {
	l log.Logger
}

// NewGoKit returns a Tracer logging to l with level.Debug. Write errors
// from l are dropped.
func NewGoKit(l log.Logger) sorting.Tracer {
	return &gokitTracer{l: level.Debug(l)}
}

func (t *gokitTracer) Step(s sorting.Step) {
	_ = t.l.Log(append([]any{"msg", s.Kind.String()}, keyvals(s)...)...)
}
