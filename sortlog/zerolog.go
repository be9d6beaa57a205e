// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sortlog

import (
	"github.com/rs/zerolog"

	"github.com/algolab/clrs/sorting"
)

type zerologTracer struct {
	l zerolog.Logger
}

// NewZerolog returns a Tracer logging to l at zerolog.DebugLevel.
func NewZerolog(l zerolog.Logger) sorting.Tracer {
	return &zerologTracer{l: l}
}

func (t *zerologTracer) Step(s sorting.Step) {
	ev := t.l.Debug()
	if ev == nil {
		return
	}
	ev = ev.Int(KeyLo, s.Lo)
	if s.Kind != sorting.StepInsertion {
		ev = ev.Int(KeyMid, s.Mid)
	}
	ev.Int(KeyHi, s.Hi).Int(KeyDepth, s.Depth).Msg(s.Kind.String())
}
