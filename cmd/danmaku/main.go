package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/danmaku/config"
	inputebiten "github.com/plus3/danmaku/input/ebiten"
	"github.com/plus3/danmaku/loop"
	"github.com/plus3/danmaku/render"
	renderebiten "github.com/plus3/danmaku/render/ebiten"
	"github.com/plus3/danmaku/world"
)

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file. Defaults are used when empty.")
	debug := flag.Bool("debug", false, "Show the ImGui debug overlay.")
	verbose := flag.Bool("v", false, "Enable debug logging.")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := run(*configPath, *debug, logger); err != nil {
		logger.Error("danmaku exited", "err", err)
		os.Exit(1)
	}
}

func run(configPath string, debug bool, logger *slog.Logger) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	m := world.New(cfg, world.NewPools(cfg.Pool, logger), world.WithLogger(logger))
	defer m.Close()

	if err := m.LoadStage(cfg.Stage); err != nil {
		return err
	}

	game := &Game{
		cfg:   cfg,
		world: m,
		loop:  loop.New(m, render.Discard),
		keys:  inputebiten.NewKeyboard(),
		face:  renderebiten.LoadFace(cfg.Font.Path, cfg.Font.Size, logger),
		dt:    1.0 / float64(cfg.Loop.FPS),
	}

	if debug {
		game.debug = newDebugOverlay(cfg)
	} else {
		ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
		ebiten.SetWindowTitle(cfg.Window.Title)
	}
	ebiten.SetTPS(cfg.Loop.FPS)

	logger.Info("starting", "width", cfg.Window.Width, "height", cfg.Window.Height, "fps", cfg.Loop.FPS, "debug", debug)
	err = ebiten.RunGame(game)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	if err != nil {
		return fmt.Errorf("run game: %w", err)
	}

	stats := m.Stats()
	logger.Info("window closed",
		"ticks", game.loop.Stats().Ticks,
		"score", stats.Score,
		"bullets_spawned", stats.Spawned,
		"bullet_pool_high_water", stats.Bullets.HighWater,
		"bullet_pool_exhaustions", stats.Bullets.Exhaustions)
	return nil
}
