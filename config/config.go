// Package config loads game settings from TOML, layered over built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/plus3/danmaku/stage"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// WindowConfig sizes the viewport and names the window.
type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

// PlayerConfig tunes the player ship and its shots.
type PlayerConfig struct {
	Radius       float64 `toml:"radius"`
	Speed        float64 `toml:"speed"` // pixels per second
	Health       int     `toml:"health"`
	FireCooldown float64 `toml:"fire_cooldown"`
	BulletSpeed  float64 `toml:"bullet_speed"`
}

// BulletConfig is shared by player and enemy bullets.
type BulletConfig struct {
	Radius float64 `toml:"radius"`
}

// PoolConfig holds initial pool capacities.
type PoolConfig struct {
	Bullets int `toml:"bullets"`
	Enemies int `toml:"enemies"`
}

// FontConfig locates the HUD font.
type FontConfig struct {
	Path string  `toml:"path"`
	Size float64 `toml:"size"`
}

// LoopConfig sets the fixed tick rate.
type LoopConfig struct {
	FPS int `toml:"fps"`
}

// Config is the complete game configuration.
type Config struct {
	Window WindowConfig     `toml:"window"`
	Player PlayerConfig     `toml:"player"`
	Bullet BulletConfig     `toml:"bullet"`
	Pool   PoolConfig       `toml:"pool"`
	Font   FontConfig       `toml:"font"`
	Loop   LoopConfig       `toml:"loop"`
	Stage  stage.Definition `toml:"stage"`
}

// Default returns the built-in configuration.
func Default() *Config {
	const w, h = 800, 600
	return &Config{
		Window: WindowConfig{Width: w, Height: h, Title: "danmaku"},
		Player: PlayerConfig{
			Radius:       10,
			Speed:        300,
			Health:       5,
			FireCooldown: 0.15,
			BulletSpeed:  480,
		},
		Bullet: BulletConfig{Radius: 4},
		Pool:   PoolConfig{Bullets: 2000, Enemies: 64},
		Font:   FontConfig{Path: "assets/font.ttf", Size: 18},
		Loop:   LoopConfig{FPS: 60},
		Stage:  stage.Default(w, h),
	}
}

// Load reads the TOML file at path over the defaults. An empty path returns
// the defaults. A file that lists no stage enemies gets the default stage laid
// out for its window size.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg.Stage.Enemies = nil
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if len(cfg.Stage.Enemies) == 0 {
		cfg.Stage = stage.Default(float64(cfg.Window.Width), float64(cfg.Window.Height))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges. Stage contents are checked by stage.Build.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Player.Radius <= 0:
		return fmt.Errorf("%w: player radius must be positive", ErrInvalid)
	case float64(c.Window.Width) < 2*c.Player.Radius || float64(c.Window.Height) < 2*c.Player.Radius:
		return fmt.Errorf("%w: player does not fit in window", ErrInvalid)
	case c.Player.Speed < 0:
		return fmt.Errorf("%w: player speed must not be negative", ErrInvalid)
	case c.Player.Health <= 0:
		return fmt.Errorf("%w: player health must be positive", ErrInvalid)
	case c.Bullet.Radius <= 0:
		return fmt.Errorf("%w: bullet radius must be positive", ErrInvalid)
	case c.Pool.Bullets < 0 || c.Pool.Enemies < 0:
		return fmt.Errorf("%w: pool sizes must not be negative", ErrInvalid)
	case c.Loop.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive", ErrInvalid)
	}
	return nil
}
