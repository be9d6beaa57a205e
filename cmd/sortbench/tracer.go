// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	kitlog "github.com/go-kit/kit/log"
	"github.com/go-logr/logr/funcr"
	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"golang.org/x/xerrors"

	"github.com/algolab/clrs/sorting"
	"github.com/algolab/clrs/sortlog"
	"github.com/algolab/clrs/sortotel"
)

// A backend builds a step tracer for a sort running under ctx.
type backend func(ctx context.Context, zl *zap.Logger, w io.Writer) sorting.Tracer

var backends = map[string]backend{
	// The zap tracer shares the command logger, so its steps appear only
	// at --log-level=debug.
	"zap": func(_ context.Context, zl *zap.Logger, _ io.Writer) sorting.Tracer {
		return sortlog.NewZap(zl)
	},
	// otel adds the steps as events on the run's span.
	"otel": func(ctx context.Context, _ *zap.Logger, _ io.Writer) sorting.Tracer {
		return sortotel.StepTracer(ctx)
	},
	"logrus": func(_ context.Context, _ *zap.Logger, w io.Writer) sorting.Tracer {
		l := logrus.New()
		l.SetOutput(w)
		l.SetLevel(logrus.DebugLevel)
		l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
		return sortlog.NewLogrus(l)
	},
	"zerolog": func(_ context.Context, _ *zap.Logger, w io.Writer) sorting.Tracer {
		return sortlog.NewZerolog(zerolog.New(w).Level(zerolog.DebugLevel))
	},
	"logr": func(_ context.Context, _ *zap.Logger, w io.Writer) sorting.Tracer {
		l := funcr.New(func(prefix, args string) {
			fmt.Fprintln(w, args)
		}, funcr.Options{Verbosity: sortlog.DebugV})
		return sortlog.NewLogr(l)
	},
	"gokit": func(_ context.Context, _ *zap.Logger, w io.Writer) sorting.Tracer {
		return sortlog.NewGoKit(kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(w)))
	},
}

func backendList() string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sorting.InsertionSort(names)
	return strings.Join(names, ", ")
}

// lookupBackend returns the backend named name. Backends other than zap
// and otel write to the writer they are given.
func lookupBackend(name string) (backend, error) {
	mk, ok := backends[name]
	if !ok {
		return nil, xerrors.Errorf("unknown log backend %q (have %s)", name, backendList())
	}
	return mk, nil
}
