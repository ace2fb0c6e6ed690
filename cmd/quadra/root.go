// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/quadra/config"
	"github.com/katalvlaran/quadra/logger"
)

var log = logger.MustGetLogger("quadra")

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "quadra",
		Short:        "numerical integration toolkit",
		SilenceUsage: true,
	}
	root.PersistentFlags().String("config", "", "YAML configuration file")
	root.PersistentFlags().String("log-level", "", "debug, info, notice, warning, error or critical")
	root.PersistentFlags().String("log-file", "", "also log to this file, rotated daily")

	root.AddCommand(newIntegrateCommand())
	root.AddCommand(newAntiDerivativeCommand())

	return root
}

// loadConfig reads --config (if any), lets --log-level and --log-file
// override it, and initialises logging.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flags().Changed("log-file") {
		cfg.LogFile, _ = cmd.Flags().GetString("log-file")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.LogFile != "" {
		if err := logger.InitLog(cfg.LogFile, cfg.LogLevel); err != nil {
			return nil, err
		}
	} else if err := logger.InitConsoleLog(cfg.LogLevel); err != nil {
		return nil, err
	}
	log.Debugf("configuration: %+v", *cfg)

	return cfg, nil
}
