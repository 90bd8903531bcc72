package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/plus3/danmaku/config"
	"github.com/plus3/danmaku/input"
	"github.com/plus3/danmaku/loop"
	"github.com/plus3/danmaku/render"
	"github.com/plus3/danmaku/world"
	"github.com/segmentio/ksuid"
)

func main() {
	duration := flag.Duration("duration", 30*time.Second, "Simulated time to run for.")
	fps := flag.Int("fps", 0, "Tick rate. Overrides the config when positive.")
	configPath := flag.String("config", "", "Path to a TOML config file. Defaults are used when empty.")
	usePilot := flag.Bool("pilot", true, "Strafe and fire instead of standing still.")
	verbose := flag.Bool("v", false, "Enable debug logging.")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	runID := ksuid.New().String()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})).With("run_id", runID)
	slog.SetDefault(logger)

	report, err := simulate(*configPath, *duration, *fps, *usePilot, logger)
	if err != nil {
		logger.Error("simulation failed", "err", err)
		os.Exit(1)
	}
	report.RunID = runID

	fmt.Println("\n\n--- Simulation Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Error("failed to generate report", "err", err)
		os.Exit(1)
	}
	fmt.Println("--- End of Report ---")
}

func simulate(configPath string, duration time.Duration, fps int, usePilot bool, logger *slog.Logger) (*Report, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if fps > 0 {
		cfg.Loop.FPS = fps
	}

	m := world.New(cfg, world.NewPools(cfg.Pool, logger), world.WithLogger(logger))
	defer m.Close()

	if err := m.LoadStage(cfg.Stage); err != nil {
		return nil, err
	}

	recorder := &render.Recorder{}
	l := loop.New(m, recorder)

	p := &pilot{period: cfg.Loop.FPS}
	var state input.State = input.None
	if usePilot {
		state = p
	}

	report := &Report{
		Stage:     cfg.Stage.Name,
		Simulated: duration,
		FPS:       cfg.Loop.FPS,
		Pilot:     usePilot,
	}

	dt := 1.0 / float64(cfg.Loop.FPS)
	ticks := int64(duration.Seconds() * float64(cfg.Loop.FPS))

	logger.Info("simulating", "stage", cfg.Stage.Name, "ticks", ticks, "fps", cfg.Loop.FPS)
	start := time.Now()
	for range ticks {
		recorder.Reset()
		l.Once(dt, state)
		p.advance()

		stats := m.Stats()
		if live := stats.EnemyBullets + stats.PlayerBullets; live > report.PeakBullets {
			report.PeakBullets = live
		}
	}
	report.WallTime = time.Since(start)

	report.Ticks = ticks
	report.DrawCalls = len(recorder.Commands)
	report.World = m.Stats()
	report.Loop = l.Stats()
	logger.Info("simulation finished", "wall_time", report.WallTime, "score", report.World.Score)
	return report, nil
}
