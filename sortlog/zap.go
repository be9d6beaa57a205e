// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sortlog

import (
	"go.uber.org/zap"

	"github.com/algolab/clrs/sorting"
)

type zapTracer struct {
	l *zap.Logger
}

var _ sorting.Tracer = (*zapTracer)(nil)

// NewZap returns a Tracer logging to l at zap.DebugLevel.
func NewZap(l *zap.Logger) sorting.Tracer {
	return &zapTracer{l: l}
}

func (t *zapTracer) Step(s sorting.Step) {
	ce := t.l.Check(zap.DebugLevel, s.Kind.String())
	if ce == nil {
		return
	}
	fields := make([]zap.Field, 0, 4)
	fields = append(fields, zap.Int(KeyLo, s.Lo))
	if s.Kind != sorting.StepInsertion {
		fields = append(fields, zap.Int(KeyMid, s.Mid))
	}
	fields = append(fields, zap.Int(KeyHi, s.Hi), zap.Int(KeyDepth, s.Depth))
	ce.Write(fields...)
}
