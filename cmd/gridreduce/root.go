// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridreduce/busbranch"
	"github.com/katalvlaran/gridreduce/cim"
	"github.com/katalvlaran/gridreduce/config"
	"github.com/katalvlaran/gridreduce/matrix"
	"github.com/katalvlaran/gridreduce/report"
	"github.com/katalvlaran/gridreduce/topology"
)

// Version is the current gridreduce version.
var Version = "0.1.0"

type flags struct {
	configPath string
	format     string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:           "gridreduce <records.json>",
		Short:         "Reduce a node-breaker model to buses and print its admittance matrix",
		Args:          cobra.ExactArgs(1),
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], f)
		},
	}
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "YAML configuration file")
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "output format: text or json")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn or error")

	return cmd
}

func run(cmd *cobra.Command, path string, f flags) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	if f.format != "" {
		cfg.Output.Format = f.format
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	runID := uuid.NewString()
	log, err := newLogger(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	log = log.With(zap.String("run_id", runID))

	log.Info("[Main] loading records", zap.String("path", path))
	raw, err := cim.Load(path, cim.WithLogger(log.Named("cim")))
	if err != nil {
		return err
	}
	top, err := topology.Reduce(raw, topology.WithLogger(log.Named("topology")))
	if err != nil {
		return err
	}
	bb, err := busbranch.Build(top, busbranch.WithLogger(log.Named("busbranch")))
	if err != nil {
		return err
	}
	if err = matrix.ValidateSymmetric(bb.Admittance(), cfg.Symmetry.Tolerance); err != nil {
		return fmt.Errorf("admittance check: %w", err)
	}

	rep := report.New(bb)
	rep.RunID = runID
	if err = report.Write(cmd.OutOrStdout(), rep, cfg.Output.Format, cfg.Output.Precision); err != nil {
		return err
	}
	log.Info("[Main] done", zap.Int("buses", bb.Len()))

	return nil
}
