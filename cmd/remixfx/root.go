package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	bold   = color.New(color.Bold)
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
)

type rootOptions struct {
	logLevel string
	noColor  bool
	logger   *logrus.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{logger: logrus.New()}

	cmd := &cobra.Command{
		Use:          "remixfx",
		Short:        "Offline audio effects for WAV files",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := logrus.ParseLevel(opts.logLevel)
			if err != nil {
				return fmt.Errorf("--log-level: %w", err)
			}

			opts.logger.SetOutput(cmd.ErrOrStderr())
			opts.logger.SetLevel(level)
			opts.logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

			if opts.noColor {
				color.NoColor = true
			}

			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable coloured output")

	cmd.AddCommand(
		newRenderCmd(opts),
		newPresetsCmd(),
		newInfoCmd(),
	)

	return cmd
}
