package hosted

import (
	"context"

	"github.com/benbjohnson/clock"
	"github.com/ejohnstown/blackmagic/core"
	"go.uber.org/zap"
)

// TickSource drives core.Tick from a software ticker, standing in for the
// timer interrupt of the firmware backends
type TickSource struct {
	clk    clock.Clock
	logger *zap.SugaredLogger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewTickSource creates a tick source on clk (clock.New() for wall time)
func NewTickSource(clk clock.Clock, logger *zap.SugaredLogger) *TickSource {
	return &TickSource{clk: clk, logger: logger}
}

// Start begins ticking every core.TickPeriod until ctx ends or Stop is called
func (s *TickSource) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	ticker := s.clk.Ticker(core.TickPeriod)
	go s.run(ctx, ticker)
	s.logger.Debugw("tick source started", "period", core.TickPeriod)
}

func (s *TickSource) run(ctx context.Context, ticker *clock.Ticker) {
	defer close(s.done)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			core.Tick()
		}
	}
}

// Stop halts ticking and waits for the ticker goroutine to exit
func (s *TickSource) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.cancel = nil
	s.logger.Debugw("tick source stopped", "time_ms", core.TimeMs())
}
