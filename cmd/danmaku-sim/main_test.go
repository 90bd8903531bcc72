package main

import (
	"bytes"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/plus3/danmaku/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulate(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	report, err := simulate("", 5*time.Second, 0, true, logger)
	require.NoError(t, err)

	assert.Equal(t, int64(300), report.Ticks)
	assert.Equal(t, "default", report.Stage)
	assert.Positive(t, report.World.Spawned)
	assert.Positive(t, report.PeakBullets)
	assert.Equal(t, report.World.Bullets.Capacity, report.World.Bullets.InUse+report.World.Bullets.Free)
	require.Len(t, report.Loop.Phases, 4)
	assert.Equal(t, int64(300), report.Loop.Phases[0].ExecutionCount)

	report.RunID = "test-run"
	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))
	out := buf.String()
	assert.Contains(t, out, "**Run ID:** test-run")
	assert.Contains(t, out, "| bullets |")
	assert.Contains(t, out, "| enemies |")
	assert.Contains(t, out, "| render |")
}

func TestSimulateBadConfig(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := simulate("/nonexistent/config.toml", time.Second, 0, false, logger)
	assert.Error(t, err)
}

func TestPilot(t *testing.T) {
	p := &pilot{period: 2}
	var left []bool
	for range 6 {
		assert.True(t, p.Pressed(input.Fire))
		assert.NotEqual(t, p.Pressed(input.Left), p.Pressed(input.Right))
		left = append(left, p.Pressed(input.Left))
		p.advance()
	}
	assert.Equal(t, []bool{true, true, false, false, true, true}, left)
	assert.False(t, p.Pressed(input.Up))
}
