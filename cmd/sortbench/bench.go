// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/algolab/clrs/bench"
)

func newBenchCmd(root *rootOptions) *cobra.Command {
	var config string
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run the benchmark suites in a TOML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := bench.LoadConfig(config)
			if err != nil {
				return err
			}
			in, err := instrument()
			if err != nil {
				return err
			}
			root.logger.Info("running suites", zap.String("config", config), zap.Int("suites", len(c.Suites)))
			r := bench.NewRunner(bench.WithLogger(root.logger), bench.WithInstrument(in))
			results, err := r.RunConfig(cmd.Context(), c)
			if err != nil {
				return err
			}
			return bench.WriteReport(cmd.OutOrStdout(), results)
		},
	}
	cmd.Flags().StringVarP(&config, "config", "c", "", "suite file")
	cmd.MarkFlagRequired("config")
	return cmd
}
