// SPDX-License-Identifier: MIT
// rankctl: root command and shared state.

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries the state resolved by the root command before any subcommand
// runs.
type app struct {
	cfgPath   string
	logLevel  string
	logFormat string

	cfg    Config
	logger *zap.Logger
}

// newRootCmd assembles a fresh command tree.
func newRootCmd() *cobra.Command {
	a := &app{cfg: DefaultConfig(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "rankctl",
		Short:         "Count, rank, list and sample combinatorial universes",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "path to a YAML config file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: console or json")

	root.AddCommand(
		a.countCmd(),
		a.rankCmd(),
		a.unrankCmd(),
		a.listCmd(),
		a.sampleCmd(),
		a.chunkCmd(),
	)

	return root
}

// setup loads the config file, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	if a.cfgPath != "" {
		cfg, err := LoadConfig(a.cfgPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	if a.logLevel != "" {
		a.cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		a.cfg.Log.Format = a.logFormat
	}

	logger, err := NewLogger(a.cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.logger = logger.With(zap.String("cmd", cmd.Name()))
	a.logger.Debug("configuration loaded",
		zap.String("config", a.cfgPath),
		zap.String("level", a.cfg.Log.Level),
		zap.Int("workers", a.cfg.Workers),
		zap.Int("limit", a.cfg.Limit))

	return nil
}
