package loop_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/danmaku/input"
	"github.com/plus3/danmaku/loop"
	"github.com/plus3/danmaku/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t     time.Time
	slept []time.Duration
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) sleep(_ context.Context, d time.Duration) {
	c.slept = append(c.slept, d)
	c.t = c.t.Add(d)
}

// scriptedStepper records phase order and spends a scripted amount of clock
// time in each Update.
type scriptedStepper struct {
	clock  *fakeClock
	work   []time.Duration
	calls  []string
	dts    []float64
	onTick func(n int)
}

func (s *scriptedStepper) HandleInput(input.State) { s.calls = append(s.calls, "input") }

func (s *scriptedStepper) Update(dt float64) {
	s.calls = append(s.calls, "update")
	s.dts = append(s.dts, dt)
	if n := len(s.dts); n <= len(s.work) && s.clock != nil {
		s.clock.t = s.clock.t.Add(s.work[n-1])
	}
	if s.onTick != nil {
		s.onTick(len(s.dts))
	}
}

func (s *scriptedStepper) Logic() { s.calls = append(s.calls, "logic") }

func (s *scriptedStepper) Render(render.Target) { s.calls = append(s.calls, "render") }

func TestOncePhaseOrder(t *testing.T) {
	s := &scriptedStepper{}
	l := loop.New(s, render.Discard)

	l.Once(0.5, input.None)
	l.Once(0.5, input.None)

	assert.Equal(t, []string{
		"input", "update", "logic", "render",
		"input", "update", "logic", "render",
	}, s.calls)
	assert.Equal(t, []float64{0.5, 0.5}, s.dts)

	stats := l.Stats()
	assert.Equal(t, int64(2), stats.Ticks)
	require.Len(t, stats.Phases, 4)
	for i, name := range []string{"input", "update", "logic", "render"} {
		assert.Equal(t, name, stats.Phases[i].Name)
		assert.Equal(t, int64(2), stats.Phases[i].ExecutionCount)
		assert.LessOrEqual(t, stats.Phases[i].MinDuration, stats.Phases[i].MaxDuration)
	}
}

func TestTickWithoutDraw(t *testing.T) {
	s := &scriptedStepper{}
	l := loop.New(s, render.Discard)

	l.Tick(0.1, input.None)
	assert.Equal(t, []string{"input", "update", "logic"}, s.calls)

	stats := l.Stats()
	assert.Equal(t, int64(0), stats.Phases[loop.PhaseRender].ExecutionCount)
	assert.Equal(t, time.Duration(0), stats.Phases[loop.PhaseRender].MinDuration)
}

func TestRunCarriesLag(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := &scriptedStepper{
		clock: clock,
		work:  []time.Duration{30 * time.Millisecond, 150 * time.Millisecond, 20 * time.Millisecond},
		onTick: func(n int) {
			if n == 3 {
				cancel()
			}
		},
	}
	l := loop.New(s, render.Discard, loop.WithClock(clock.now, clock.sleep))

	l.Run(ctx, 10, input.None)

	// 100ms budget: sleep 70ms, overrun by 50ms, then 20ms+50ms lag leaves 30ms.
	assert.Equal(t, []time.Duration{70 * time.Millisecond, 30 * time.Millisecond}, clock.slept)
	stats := l.Stats()
	assert.Equal(t, int64(3), stats.Ticks)
	assert.Equal(t, int64(1), stats.Overruns)
	assert.Equal(t, time.Duration(0), stats.Lag)
	assert.Equal(t, []float64{0.1, 0.1, 0.1}, s.dts, "step is fixed regardless of overrun")
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	s := &scriptedStepper{}
	l := loop.New(s, render.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	l.Run(ctx, 60, input.None)

	assert.Empty(t, s.calls)
}

func TestRunRealClock(t *testing.T) {
	s := &scriptedStepper{}
	l := loop.New(s, render.Discard)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		l.Run(ctx, 200, input.None)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after context cancellation")
	}
	assert.Positive(t, l.Stats().Ticks)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "logic", loop.PhaseLogic.String())
	assert.Equal(t, "unknown", loop.Phase(9).String())
}
