// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sortlog

import (
	"github.com/go-logr/logr"

	"github.com/algolab/clrs/sorting"
)

// DebugV is the logr verbosity used for trace steps.
const DebugV = 1

type logrTracer struct {
	l logr.Logger
}

// NewLogr returns a Tracer logging to l.V(DebugV).
func NewLogr(l logr.Logger) sorting.Tracer {
	return &logrTracer{l: l.V(DebugV)}
}

func (t *logrTracer) Step(s sorting.Step) {
	if !t.l.Enabled() {
		return
	}
	t.l.Info(s.Kind.String(), keyvals(s)...)
}
