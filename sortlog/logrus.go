// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sortlog

import (
	"github.com/sirupsen/logrus"

	"github.com/algolab/clrs/sorting"
)

type logrusTracer struct {
	l logrus.FieldLogger
}

// NewLogrus returns a Tracer logging to l at logrus.DebugLevel.
// Both *logrus.Logger and *logrus.Entry satisfy logrus.FieldLogger.
func NewLogrus(l logrus.FieldLogger) sorting.Tracer {
	return &logrusTracer{l: l}
}

func (t *logrusTracer) Step(s sorting.Step) {
	kv := keyvals(s)
	fields := make(logrus.Fields, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		fields[kv[i].(string)] = kv[i+1]
	}
	t.l.WithFields(fields).Debug(s.Kind.String())
}
