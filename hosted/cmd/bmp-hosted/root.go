package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ejohnstown/blackmagic/hosted"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "bmp-hosted",
	Short: "Hosted debug-probe platform",
	Long: `Runs the probe platform core on a Linux host whose GPIO is wired to
the target: reset control, timebase and serial number.

Examples:
  bmp-hosted serial                          # Print the probe serial number
  bmp-hosted srst pulse --hold 100           # Hold the target in reset for 100ms
  bmp-hosted srst watch --config probe.json  # Report reset line changes`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"JSON wiring config (defaults: reset on GPIO4, active low)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// openPlatform loads the config and brings the hosted platform up
func openPlatform(ctx context.Context) (*hosted.Platform, *zap.SugaredLogger, error) {
	logger, err := hosted.NewLogger(verbose)
	if err != nil {
		return nil, nil, err
	}
	hosted.RouteCoreDebug(logger, verbose)

	cfg := hosted.DefaultConfig()
	if configPath != "" {
		cfg, err = hosted.LoadConfigFile(configPath)
		if err != nil {
			return nil, nil, err
		}
	}

	p, err := hosted.Open(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return p, logger, nil
}

// withPlatform runs fn with an open platform and closes it afterwards
func withPlatform(cmd *cobra.Command, fn func(p *hosted.Platform, logger *zap.SugaredLogger) error) error {
	p, logger, err := openPlatform(cmd.Context())
	if err != nil {
		return err
	}
	defer logger.Sync()

	runErr := fn(p, logger)
	if closeErr := p.Close(); closeErr != nil && runErr == nil {
		return closeErr
	}
	return runErr
}
