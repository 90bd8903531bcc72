// Package loop drives a world one fixed tick at a time and keeps per-phase
// timing statistics.
package loop

import (
	"context"
	"time"

	"github.com/plus3/danmaku/input"
	"github.com/plus3/danmaku/render"
)

// Stepper is driven through the four tick phases, always in this order.
type Stepper interface {
	HandleInput(state input.State)
	Update(dt float64)
	Logic()
	Render(target render.Target)
}

// Phase identifies one part of a tick.
type Phase int

const (
	PhaseInput Phase = iota
	PhaseUpdate
	PhaseLogic
	PhaseRender
	phaseCount
)

var phaseNames = [phaseCount]string{"input", "update", "logic", "render"}

func (p Phase) String() string {
	if p < 0 || p >= phaseCount {
		return "unknown"
	}
	return phaseNames[p]
}

// LoopStats provides statistics about loop execution.
type LoopStats struct {
	Ticks    int64
	Overruns int64
	Lag      time.Duration
	Phases   []PhaseStats
}

// PhaseStats provides execution statistics for a single phase.
type PhaseStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type phaseStatsInternal struct {
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

func (s *phaseStatsInternal) record(d time.Duration) {
	s.executionCount++
	s.lastDuration = d
	s.totalDuration += d
	if d < s.minDuration {
		s.minDuration = d
	}
	if d > s.maxDuration {
		s.maxDuration = d
	}
}

// Loop steps a Stepper and renders it onto a target.
type Loop struct {
	stepper Stepper
	target  render.Target
	phases  [phaseCount]phaseStatsInternal

	ticks    int64
	overruns int64
	lag      time.Duration

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration)
}

// Option configures a Loop.
type Option func(*Loop)

// WithClock replaces the wall clock and sleep used by Run.
func WithClock(now func() time.Time, sleep func(ctx context.Context, d time.Duration)) Option {
	return func(l *Loop) {
		l.now = now
		l.sleep = sleep
	}
}

// New creates a loop for stepper that renders onto target.
func New(stepper Stepper, target render.Target, opts ...Option) *Loop {
	l := &Loop{
		stepper: stepper,
		target:  target,
		now:     time.Now,
		sleep:   sleepContext,
	}
	for i := range l.phases {
		l.phases[i].minDuration = time.Duration(1<<63 - 1)
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Loop) timed(p Phase, fn func()) {
	start := l.now()
	fn()
	l.phases[p].record(l.now().Sub(start))
}

// Tick runs the input, update and logic phases.
func (l *Loop) Tick(dt float64, state input.State) {
	l.timed(PhaseInput, func() { l.stepper.HandleInput(state) })
	l.timed(PhaseUpdate, func() { l.stepper.Update(dt) })
	l.timed(PhaseLogic, l.stepper.Logic)
	l.ticks++
}

// Draw runs the render phase onto target.
func (l *Loop) Draw(target render.Target) {
	l.timed(PhaseRender, func() { l.stepper.Render(target) })
}

// Once runs a whole tick and renders onto the loop's target.
func (l *Loop) Once(dt float64, state input.State) {
	l.Tick(dt, state)
	l.Draw(l.target)
}

// Run executes ticks at fps until ctx is cancelled. Each tick is stepped by a
// fixed 1/fps seconds. After a tick the loop sleeps for what remains of the
// frame budget; a tick that overruns carries the excess as lag, which shortens
// the next wait.
func (l *Loop) Run(ctx context.Context, fps int, source input.State) {
	if fps <= 0 {
		panic("loop: fps must be positive")
	}
	budget := time.Second / time.Duration(fps)
	dt := budget.Seconds()

	for ctx.Err() == nil {
		start := l.now()
		l.Once(dt, source)

		elapsed := l.now().Sub(start) + l.lag
		if elapsed < budget {
			l.lag = 0
			l.sleep(ctx, budget-elapsed)
		} else {
			l.lag = elapsed - budget
			l.overruns++
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

// Stats returns statistics about loop execution.
func (l *Loop) Stats() *LoopStats {
	stats := &LoopStats{
		Ticks:    l.ticks,
		Overruns: l.overruns,
		Lag:      l.lag,
		Phases:   make([]PhaseStats, phaseCount),
	}

	for i := range l.phases {
		internal := &l.phases[i]
		avgDuration := time.Duration(0)
		minDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
			minDuration = internal.minDuration
		}

		stats.Phases[i] = PhaseStats{
			Name:           Phase(i).String(),
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
	}
	return stats
}
