package hosted

import (
	"context"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/ejohnstown/blackmagic/core"
	"go.uber.org/zap"
	"go.viam.com/test"
)

// waitForTime polls until the core clock reads want
func waitForTime(t *testing.T, want uint32) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for core.TimeMs() != want {
		if time.Now().After(deadline) {
			t.Fatalf("clock stuck at %d, want %d", core.TimeMs(), want)
		}
		time.Sleep(time.Millisecond)
	}
}

// stepTicks advances the mock clock one tick period at a time
func stepTicks(t *testing.T, mock *clock.Mock, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		want := core.TimeMs() + core.TickIncrementMs
		mock.Add(core.TickPeriod)
		waitForTime(t, want)
	}
}

func TestTickSourceAdvancesClock(t *testing.T) {
	core.SetTime(0)
	mock := clock.NewMock()
	src := NewTickSource(mock, zap.NewNop().Sugar())

	src.Start(context.Background())
	defer src.Stop()

	stepTicks(t, mock, 5)
	test.That(t, core.TimeMs(), test.ShouldEqual, uint32(50))
}

func TestTickSourceDrivesTimeout(t *testing.T) {
	core.SetTime(0)
	mock := clock.NewMock()
	src := NewTickSource(mock, zap.NewNop().Sugar())
	src.Start(context.Background())
	defer src.Stop()

	timeout := core.NewTimeout(30)
	stepTicks(t, mock, 2)
	test.That(t, timeout.IsExpired(), test.ShouldBeFalse)
	stepTicks(t, mock, 1)
	test.That(t, timeout.IsExpired(), test.ShouldBeTrue)
}

func TestTickSourceStop(t *testing.T) {
	core.SetTime(0)
	mock := clock.NewMock()
	src := NewTickSource(mock, zap.NewNop().Sugar())
	src.Start(context.Background())

	stepTicks(t, mock, 1)
	src.Stop()
	src.Stop() // second stop is a no-op

	mock.Add(10 * core.TickPeriod)
	test.That(t, core.TimeMs(), test.ShouldEqual, uint32(core.TickIncrementMs))
}

func TestTickSourceContextCancel(t *testing.T) {
	core.SetTime(0)
	mock := clock.NewMock()
	src := NewTickSource(mock, zap.NewNop().Sugar())

	ctx, cancel := context.WithCancel(context.Background())
	src.Start(ctx)
	stepTicks(t, mock, 1)
	cancel()
	src.Stop()

	mock.Add(5 * core.TickPeriod)
	test.That(t, core.TimeMs(), test.ShouldEqual, uint32(core.TickIncrementMs))
}
