// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sortlog

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/go-kit/kit/log"
	"github.com/go-logr/logr"
	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/algolab/clrs/sorting"
)

// traceSample sorts a fixed input with k=2, producing seven steps:
// split, split, insertion, insertion, merge, insertion, merge.
func traceSample(t *testing.T, tr sorting.Tracer) {
	t.Helper()
	s := []int{5, 3, 4, 1, 2}
	if err := sorting.TraceHybridSort(tr, s, 2, 0, len(s)); err != nil {
		t.Fatal(err)
	}
}

var wantKinds = []string{"split", "split", "insertion", "insertion", "merge", "insertion", "merge"}

func TestZap(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	traceSample(t, NewZap(zap.New(core)))

	var kinds []string
	for _, e := range logs.All() {
		kinds = append(kinds, e.Message)
	}
	if diff := cmp.Diff(wantKinds, kinds); diff != "" {
		t.Errorf("messages mismatch (-want +got):\n%s", diff)
	}
	entries := logs.All()
	if diff := cmp.Diff(map[string]any{"lo": int64(0), "mid": int64(3), "hi": int64(5), "depth": int64(0)}, entries[0].ContextMap()); diff != "" {
		t.Errorf("split fields mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]any{"lo": int64(0), "hi": int64(2), "depth": int64(2)}, entries[2].ContextMap()); diff != "" {
		t.Errorf("insertion fields mismatch (-want +got):\n%s", diff)
	}

	quiet, quietLogs := observer.New(zapcore.InfoLevel)
	traceSample(t, NewZap(zap.New(quiet)))
	if n := quietLogs.Len(); n != 0 {
		t.Errorf("info-level logger recorded %d debug steps", n)
	}
}

func TestLogrus(t *testing.T) {
	logger, hook := logrustest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	traceSample(t, NewLogrus(logger))

	entries := hook.AllEntries()
	if len(entries) != len(wantKinds) {
		t.Fatalf("got %d entries, want %d", len(entries), len(wantKinds))
	}
	for i, e := range entries {
		if e.Message != wantKinds[i] || e.Level != logrus.DebugLevel {
			t.Errorf("entry %d: got %s %q, want debug %q", i, e.Level, e.Message, wantKinds[i])
		}
	}
	if diff := cmp.Diff(logrus.Fields{"lo": 0, "mid": 3, "hi": 5, "depth": 0}, entries[6].Data); diff != "" {
		t.Errorf("final merge fields mismatch (-want +got):\n%s", diff)
	}
}

func TestZerolog(t *testing.T) {
	var buf bytes.Buffer
	traceSample(t, NewZerolog(zerolog.New(&buf)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(wantKinds) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(wantKinds), buf.String())
	}
	var got map[string]any
	if err := json.Unmarshal([]byte(lines[5]), &got); err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"level": "debug", "message": "insertion", "lo": 3.0, "hi": 5.0, "depth": 1.0}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	buf.Reset()
	traceSample(t, NewZerolog(zerolog.New(&buf).Level(zerolog.InfoLevel)))
	if buf.Len() != 0 {
		t.Errorf("info-level logger wrote %q", buf.String())
	}
}

// captureSink is a logr.LogSink that records Info calls up to a verbosity.
type captureSink struct {
	verbosity int
	got       []string
	kvs       [][]any
}

func (s *captureSink) Init(logr.RuntimeInfo) {}
func (s *captureSink) Enabled(level int) bool { return level <= s.verbosity }
func (s *captureSink) Error(error, string, ...any) {}
func (s *captureSink) WithValues(...any) logr.LogSink { return s }
func (s *captureSink) WithName(string) logr.LogSink { return s }
func (s *captureSink) Info(level int, msg string, kv ...any) {
	s.got = append(s.got, msg)
	s.kvs = append(s.kvs, kv)
}

func TestLogr(t *testing.T) {
	sink := &captureSink{verbosity: DebugV}
	traceSample(t, NewLogr(logr.New(sink)))
	if diff := cmp.Diff(wantKinds, sink.got); diff != "" {
		t.Errorf("messages mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]any{"lo", 0, "mid", 2, "hi", 3, "depth", 1}, sink.kvs[4]); diff != "" {
		t.Errorf("merge keyvals mismatch (-want +got):\n%s", diff)
	}

	quiet := &captureSink{verbosity: 0}
	traceSample(t, NewLogr(logr.New(quiet)))
	if len(quiet.got) != 0 {
		t.Errorf("V(0) sink recorded %d steps", len(quiet.got))
	}
}

func TestGoKit(t *testing.T) {
	var buf bytes.Buffer
	traceSample(t, NewGoKit(log.NewLogfmtLogger(&buf)))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []string{
		"level=debug msg=split lo=0 mid=3 hi=5 depth=0",
		"level=debug msg=split lo=0 mid=2 hi=3 depth=1",
		"level=debug msg=insertion lo=0 hi=2 depth=2",
		"level=debug msg=insertion lo=2 hi=3 depth=2",
		"level=debug msg=merge lo=0 mid=2 hi=3 depth=1",
		"level=debug msg=insertion lo=3 hi=5 depth=1",
		"level=debug msg=merge lo=0 mid=3 hi=5 depth=0",
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
