package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/bep/debounce"
	"github.com/ejohnstown/blackmagic/core"
	"github.com/ejohnstown/blackmagic/hosted"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	srstAssertHoldMs uint32
	srstPulseHoldMs  uint32
	srstQuietMs      uint32
	srstForMs        uint32
	srstTrace        bool
)

var srstCmd = &cobra.Command{
	Use:   "srst",
	Short: "Control the target reset line",
}

var srstGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print whether reset is asserted",
	RunE: srstRun(func(cmd *cobra.Command) error {
		fmt.Fprintln(cmd.OutOrStdout(), stateName(core.SrstGetVal()))
		return nil
	}),
}

var srstAssertCmd = &cobra.Command{
	Use:   "assert",
	Short: "Assert reset (released again when the command exits)",
	RunE: srstRun(func(cmd *cobra.Command) error {
		core.SrstSetVal(true)
		fmt.Fprintln(cmd.OutOrStdout(), stateName(core.SrstGetVal()))
		if srstAssertHoldMs > 0 {
			core.Delay(srstAssertHoldMs)
		}
		return nil
	}),
}

var srstReleaseCmd = &cobra.Command{
	Use:   "release",
	Short: "Release reset",
	RunE: srstRun(func(cmd *cobra.Command) error {
		core.SrstSetVal(false)
		fmt.Fprintln(cmd.OutOrStdout(), stateName(core.SrstGetVal()))
		return nil
	}),
}

var srstPulseCmd = &cobra.Command{
	Use:   "pulse",
	Short: "Assert reset, hold, then release",
	RunE: srstRun(func(cmd *cobra.Command) error {
		core.MustReset().Pulse(srstPulseHoldMs)
		fmt.Fprintf(cmd.OutOrStdout(), "pulsed %d ms\n", srstPulseHoldMs)
		return nil
	}),
}

var srstWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Report reset line changes until interrupted",
	RunE: srstRun(func(cmd *cobra.Command) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return watchReset(ctx, cmd.OutOrStdout(), srstQuietMs, srstForMs)
	}),
}

func init() {
	rootCmd.AddCommand(srstCmd)
	srstCmd.AddCommand(srstGetCmd, srstAssertCmd, srstReleaseCmd, srstPulseCmd, srstWatchCmd)

	srstCmd.PersistentFlags().BoolVar(&srstTrace, "trace", false, "dump the reset event ring afterwards")
	srstAssertCmd.Flags().Uint32Var(&srstAssertHoldMs, "hold", 0, "milliseconds to hold before exiting")
	srstPulseCmd.Flags().Uint32Var(&srstPulseHoldMs, "hold", 100, "milliseconds to hold reset")
	srstWatchCmd.Flags().Uint32Var(&srstQuietMs, "quiet", 50, "report a change once the line is stable this long (ms)")
	srstWatchCmd.Flags().Uint32Var(&srstForMs, "for", 0, "stop after this many milliseconds (0 = until interrupted)")
}

// srstRun opens the platform around fn and dumps events when --trace is set
func srstRun(fn func(cmd *cobra.Command) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return withPlatform(cmd, func(p *hosted.Platform, logger *zap.SugaredLogger) error {
			err := fn(cmd)
			if srstTrace {
				core.SetDebugWriter(func(s string) {
					fmt.Fprintln(cmd.OutOrStdout(), s)
				})
				core.DumpEvents()
			}
			return err
		})
	}
}

// resetReporter prints reset line states, skipping repeats, and stops
// writing once closed
type resetReporter struct {
	mu       sync.Mutex
	out      io.Writer
	reported bool
	closed   bool
}

func (r *resetReporter) report(at uint32, state bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed || state == r.reported {
		return
	}
	r.reported = state
	fmt.Fprintf(r.out, "%d ms srst %s\n", at, stateName(state))
}

// close reports the pending state if it was never printed and blocks any
// later debounced report
func (r *resetReporter) close(at uint32, state bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.closed && state != r.reported {
		r.reported = state
		fmt.Fprintf(r.out, "%d ms srst %s\n", at, stateName(state))
	}
	r.closed = true
}

// watchReset polls the reset line and reports debounced changes.
// A change still settling when the watch ends is reported before return.
func watchReset(ctx context.Context, out io.Writer, quietMs, forMs uint32) error {
	debounced := debounce.New(time.Duration(quietMs) * time.Millisecond)

	last := core.SrstGetVal()
	lastAt := core.TimeMs()
	fmt.Fprintf(out, "%d ms srst %s\n", lastAt, stateName(last))
	rep := &resetReporter{out: out, reported: last}
	defer func() {
		debounced(func() {})
		rep.close(lastAt, last)
	}()

	limit := core.NewTimeout(forMs)
	for forMs == 0 || !limit.IsExpired() {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if state := core.SrstGetVal(); state != last {
			at := core.TimeMs()
			last, lastAt = state, at
			debounced(func() {
				rep.report(at, state)
			})
		}

		poll := core.NewTimeout(core.TickIncrementMs)
		for !poll.IsExpired() {
			time.Sleep(time.Millisecond)
		}
	}
	return nil
}

func stateName(asserted bool) string {
	if asserted {
		return "asserted"
	}
	return "released"
}
