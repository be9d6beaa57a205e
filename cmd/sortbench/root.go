// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/algolab/clrs/logutil"
	"github.com/algolab/clrs/sortotel"
)

type rootOptions struct {
	log     logutil.Config
	backend string

	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "sortbench",
		Short:         "Sort integer sequences and benchmark sorting algorithms",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := opts.log.Build()
			if err != nil {
				return err
			}
			opts.logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}
	f := cmd.PersistentFlags()
	f.StringVar(&opts.log.Level, "log-level", "info", "log level: debug, info, warn or error")
	f.StringVar(&opts.log.Format, "log-format", "console", "log format: console or json")
	f.StringVar(&opts.log.Filename, "log-file", "", "write logs to this file, rotated by size")
	f.IntVar(&opts.log.MaxSize, "log-max-size", 64, "rotate the log file after this many megabytes")
	f.IntVar(&opts.log.MaxDays, "log-max-days", 0, "remove rotated log files older than this many days")
	f.IntVar(&opts.log.MaxBackups, "log-max-backups", 0, "keep at most this many rotated log files")
	f.StringVar(&opts.backend, "log-backend", "zap", "trace step logger: "+backendList())

	cmd.AddCommand(newSortCmd(opts), newBenchCmd(opts))
	return cmd
}

// instrument reports through the globally registered OpenTelemetry
// providers, which are no-ops unless a program installs real ones.
func instrument() (*sortotel.Instrument, error) {
	return sortotel.New(otel.GetTracerProvider(), otel.GetMeterProvider())
}
