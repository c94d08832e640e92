package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/statelayer/internal/config"
	"github.com/alexisbeaulieu97/statelayer/internal/logger"
	"github.com/alexisbeaulieu97/statelayer/internal/tui"
)

type rootFlags struct {
	configPath string
	theme      string
	input      string
	logFile    string
	logLevel   string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	return buildRootCmd(&rootFlags{})
}

func buildRootCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "statelayer",
		Short:         "Pointer-tracking state layer demo for the terminal",
		Long:          `Render a full-screen highlight that follows the mouse and grows with spring physics beneath a static hero block.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			return runDemo(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML configuration file")
	cmd.Flags().StringVar(&flags.theme, "theme", "dark", "Theme mode (light or dark)")
	cmd.Flags().StringVar(&flags.input, "input", config.InputHover, "Input mode (hover or touch)")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write diagnostic logs to this file")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newVersionCmd())

	return cmd
}

// resolveConfig loads the config file and applies explicitly set flags on top.
func resolveConfig(cmd *cobra.Command, flags *rootFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("theme") {
		cfg.Theme = flags.theme
	}
	if changed("input") {
		cfg.Input = flags.input
	}
	if changed("log-file") {
		cfg.Log.File = flags.logFile
	}
	if changed("log-level") {
		cfg.Log.Level = flags.logLevel
	}
	if flags.verbose {
		cfg.Log.Level = "debug"
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runDemo(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	log, closer, err := logger.OpenFile(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closer.Close()

	log = log.Component("cli")
	if err := checkMount(os.Stdin, os.Stdout); err != nil {
		log.Error(err, "mount failed")
		return err
	}

	m, err := tui.NewModel(*cfg, log)
	if err != nil {
		log.Error(err, "invalid configuration")
		return err
	}

	log.Info("starting", map[string]any{"theme": cfg.Theme, "input": cfg.Input})
	if err := tui.Run(ctx, m); err != nil {
		log.Error(err, "state layer exited with error")
		return err
	}
	log.Info("stopped")
	return nil
}
