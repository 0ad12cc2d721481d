package main

import (
	"fmt"

	"github.com/ejohnstown/blackmagic/core"
	"github.com/ejohnstown/blackmagic/hosted"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var timeWaitMs uint32

var serialCmd = &cobra.Command{
	Use:   "serial",
	Short: "Print the probe serial number",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPlatform(cmd, func(p *hosted.Platform, logger *zap.SugaredLogger) error {
			fmt.Fprintln(cmd.OutOrStdout(), core.SerialNumber())
			return nil
		})
	},
}

var voltageCmd = &cobra.Command{
	Use:   "voltage",
	Short: "Print the target supply voltage",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPlatform(cmd, func(p *hosted.Platform, logger *zap.SugaredLogger) error {
			fmt.Fprintln(cmd.OutOrStdout(), core.TargetVoltage())
			return nil
		})
	},
}

var timeCmd = &cobra.Command{
	Use:   "time",
	Short: "Print the millisecond clock after running the tick source",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPlatform(cmd, func(p *hosted.Platform, logger *zap.SugaredLogger) error {
			core.Delay(timeWaitMs)
			fmt.Fprintf(cmd.OutOrStdout(), "%d ms\n", core.TimeMs())
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(serialCmd)
	rootCmd.AddCommand(voltageCmd)
	rootCmd.AddCommand(timeCmd)

	timeCmd.Flags().Uint32Var(&timeWaitMs, "wait", 100, "milliseconds to tick before reading")
}
