// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sortotel

import "go.opentelemetry.io/otel/metric"

// Metric names.
const (
	ElementsMetric = "sorting.elements"
	FailuresMetric = "sorting.failures"
	DurationMetric = "sorting.duration"
)

func (in *Instrument) initMetrics(m metric.Meter) error {
	var err error
	in.elements, err = m.Int64Counter(ElementsMetric,
		metric.WithDescription("Elements sorted by successful runs"),
		metric.WithUnit("{element}"))
	if err != nil {
		return err
	}
	in.failures, err = m.Int64Counter(FailuresMetric,
		metric.WithDescription("Runs rejected with an error"),
		metric.WithUnit("{run}"))
	if err != nil {
		return err
	}
	in.duration, err = m.Float64Histogram(DurationMetric,
		metric.WithDescription("Wall time of successful runs"),
		metric.WithUnit("ms"))
	return err
}
