// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sortotel reports sort runs to OpenTelemetry: one span per run,
// optional span events per recursive step, and counters and histograms of
// elements sorted and time taken.
package sortotel

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/algolab/clrs/sorting"
)

// InstrumentationName identifies this package to tracer and meter
// providers.
const InstrumentationName = "github.com/algolab/clrs/sortotel"

// Attribute keys set on spans and measurements.
const (
	AlgorithmKey = attribute.Key("sort.algorithm")
	SizeKey      = attribute.Key("sort.n")
	ThresholdKey = attribute.Key("sort.k")
)

// An Instrument records sort runs.
type Instrument struct {
	tracer   trace.Tracer
	elements metric.Int64Counter
	failures metric.Int64Counter
	duration metric.Float64Histogram
}

// New returns an Instrument creating spans with tp and measurements with mp.
func New(tp trace.TracerProvider, mp metric.MeterProvider) (*Instrument, error) {
	in := &Instrument{tracer: tp.Tracer(InstrumentationName)}
	if err := in.initMetrics(mp.Meter(InstrumentationName)); err != nil {
		return nil, err
	}
	return in, nil
}

// A Run describes one sort call.
type Run struct {
	Algorithm string
	N         int
	K         int // hybrid threshold; 0 when not applicable
}

func (r Run) attributes() []attribute.KeyValue {
	attrs := []attribute.KeyValue{AlgorithmKey.String(r.Algorithm), SizeKey.Int(r.N)}
	if r.K > 0 {
		attrs = append(attrs, ThresholdKey.Int(r.K))
	}
	return attrs
}

// Do calls fn inside a span named "sort/<algorithm>" and records its
// outcome. fn's context carries the span, so fn can pass StepTracer(ctx)
// to a traced sort. Do returns fn's error.
func (in *Instrument) Do(ctx context.Context, r Run, fn func(ctx context.Context) error) error {
	attrs := r.attributes()
	ctx, span := in.tracer.Start(ctx, "sort/"+r.Algorithm, trace.WithAttributes(attrs...))
	defer span.End()

	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)

	set := metric.WithAttributes(AlgorithmKey.String(r.Algorithm))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		in.failures.Add(ctx, 1, set)
		return err
	}
	in.elements.Add(ctx, int64(r.N), set)
	in.duration.Record(ctx, float64(elapsed)/float64(time.Millisecond), set)
	return nil
}

type spanTracer struct {
	span trace.Span
}

// StepTracer returns a sorting.Tracer adding one event per step to the
// span in ctx. Steps are dropped when that span is not recording.
func StepTracer(ctx context.Context) sorting.Tracer {
	return &spanTracer{span: trace.SpanFromContext(ctx)}
}

func (t *spanTracer) Step(s sorting.Step) {
	if !t.span.IsRecording() {
		return
	}
	attrs := []attribute.KeyValue{attribute.Int("lo", s.Lo)}
	if s.Kind != sorting.StepInsertion {
		attrs = append(attrs, attribute.Int("mid", s.Mid))
	}
	attrs = append(attrs, attribute.Int("hi", s.Hi), attribute.Int("depth", s.Depth))
	t.span.AddEvent(s.Kind.String(), trace.WithAttributes(attrs...))
}
