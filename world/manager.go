// Package world owns every live entity and drives them through one tick at a
// time: input, update, logic (collision) and render.
package world

import (
	"fmt"
	"image/color"
	"iter"
	"log/slog"
	"slices"

	"github.com/plus3/danmaku/behavior"
	"github.com/plus3/danmaku/config"
	"github.com/plus3/danmaku/entity"
	"github.com/plus3/danmaku/geom"
	"github.com/plus3/danmaku/input"
	"github.com/plus3/danmaku/pool"
	"github.com/plus3/danmaku/render"
)

var scoreColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

var scorePosition = geom.Vec2{X: 10, Y: 10}

// Stats is a snapshot of the manager's entity counts.
type Stats struct {
	Bullets       pool.Stats
	Enemies       pool.Stats
	PlayerBullets int
	EnemyBullets  int
	LiveEnemies   int
	Spawned       int
	Score         int
	Health        int
}

// Manager is the single authority over live entities. It is not safe for
// concurrent use; one goroutine drives every tick.
type Manager struct {
	bounds       geom.Rect
	playerSpeed  float64
	fireCooldown float64
	shotSpeed    float64
	bulletRadius float64
	logger       *slog.Logger

	pools  Pools
	player entity.Player

	// Active lists are handles into pools, in draw order.
	playerBullets []pool.Handle
	enemyBullets  []pool.Handle
	enemies       []pool.Handle

	spawned int
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the manager's logger. Defaults to slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// New creates a manager with the player centered horizontally near the bottom
// of the viewport. Call Close to return every live entity to pools.
func New(cfg *config.Config, pools Pools, opts ...Option) *Manager {
	w, h := float64(cfg.Window.Width), float64(cfg.Window.Height)
	m := &Manager{
		bounds:       geom.Rect{W: w, H: h},
		playerSpeed:  cfg.Player.Speed,
		fireCooldown: cfg.Player.FireCooldown,
		shotSpeed:    cfg.Player.BulletSpeed,
		bulletRadius: cfg.Bullet.Radius,
		logger:       slog.Default(),
		pools:        pools,
		player: entity.NewPlayer(
			geom.Vec2{X: w / 2, Y: h * 0.8},
			cfg.Player.Radius,
			cfg.Player.Health,
		),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Player returns the live player.
func (m *Manager) Player() *entity.Player {
	return &m.player
}

// Bounds returns the viewport rectangle.
func (m *Manager) Bounds() geom.Rect {
	return m.bounds
}

// SpawnEnemy leases an enemy slot, copies e into it and makes it live.
func (m *Manager) SpawnEnemy(e entity.Enemy) pool.Handle {
	h, slot := m.pools.Enemies.Get()
	*slot = e
	m.enemies = append(m.enemies, h)
	return h
}

// EnemyShoot leases a bullet moving with velocity from origin onto the
// enemy-bullet list.
func (m *Manager) EnemyShoot(origin, velocity geom.Vec2) {
	m.enemyBullets = append(m.enemyBullets, m.spawnBullet(entity.SideEnemy, origin, velocity))
}

func (m *Manager) playerShoot() {
	origin := m.player.Shape.Center
	velocity := geom.Vec2{X: 0, Y: -m.shotSpeed}
	m.playerBullets = append(m.playerBullets, m.spawnBullet(entity.SidePlayer, origin, velocity))
}

func (m *Manager) spawnBullet(side entity.Side, origin, velocity geom.Vec2) pool.Handle {
	h, b := m.pools.Bullets.Get()
	b.Actor = entity.Actor{Shape: geom.Circle{Center: origin, Radius: m.bulletRadius}}
	b.Side = side
	b.Move = behavior.NewMoveStraight(velocity)
	m.spawned++
	return h
}

// HandleInput reads the held actions into the player's direction and fire
// latch. It must run before Update.
func (m *Manager) HandleInput(state input.State) {
	var dir geom.Vec2
	if state.Pressed(input.Up) {
		dir.Y--
	}
	if state.Pressed(input.Down) {
		dir.Y++
	}
	if state.Pressed(input.Left) {
		dir.X--
	}
	if state.Pressed(input.Right) {
		dir.X++
	}
	m.player.Direction = dir.Normalize()
	m.player.Firing = state.Pressed(input.Fire)
}

// Update advances the player, then player bullets, enemy bullets, the fire
// latch and enemies in list order. Bullets fired during Update are processed
// from the next tick.
func (m *Manager) Update(dt float64) {
	m.player.Shape.Move(m.player.Direction.Scale(m.playerSpeed * dt))

	m.updateBullets(m.playerBullets, dt)
	m.updateBullets(m.enemyBullets, dt)

	m.player.Cooldown -= dt
	if m.player.Firing && m.player.Cooldown <= 0 {
		m.playerShoot()
		m.player.Cooldown = m.fireCooldown
	}

	for _, h := range m.enemies {
		e := m.pools.Enemies.At(h)
		for _, b := range e.Behaviors {
			b.Behave(&e.Actor, dt, m)
		}
	}
}

func (m *Manager) updateBullets(handles []pool.Handle, dt float64) {
	for _, h := range handles {
		b := m.pools.Bullets.At(h)
		if b.Move != nil {
			b.Move.Behave(&b.Actor, dt, m)
		}
	}
}

// Logic clamps the player to the viewport and resolves bullet collisions and
// wall exits.
func (m *Manager) Logic() {
	m.player.Shape = m.bounds.Clamp(m.player.Shape)

	m.enemyBullets = m.sweep(m.enemyBullets, func(b *entity.Bullet) bool {
		if geom.Collides(b.Shape, m.player.Shape) {
			m.player.Damage()
			return true
		}
		return false
	})

	m.playerBullets = m.sweep(m.playerBullets, func(b *entity.Bullet) bool {
		for _, h := range m.enemies {
			e := m.pools.Enemies.At(h)
			if geom.Collides(b.Shape, e.Shape) {
				e.Hits++
				m.player.Score++
				return true
			}
		}
		return false
	})
}

// sweep walks handles back to front, recycling every bullet that hit reports
// true for or that has left the viewport. Walking backwards means removal
// never shifts an unvisited entry.
func (m *Manager) sweep(handles []pool.Handle, hit func(*entity.Bullet) bool) []pool.Handle {
	for i := len(handles) - 1; i >= 0; i-- {
		b := m.pools.Bullets.At(handles[i])
		if hit(b) || m.bounds.Outside(b.Shape) {
			m.recycle(handles[i])
			handles = slices.Delete(handles, i, i+1)
		}
	}
	return handles
}

func (m *Manager) recycle(h pool.Handle) {
	if err := m.pools.Bullets.Put(h); err != nil {
		m.logger.Error("recycle bullet", "handle", uint64(h), "err", err)
	}
}

// Render draws the player, the score, bullets and then enemies. Later
// commands draw on top.
func (m *Manager) Render(target render.Target) {
	target.DrawCircle(m.player.Shape, entity.PlayerColor)
	target.DrawText(m.ScoreText(), scorePosition, scoreColor)

	for _, h := range m.playerBullets {
		target.DrawCircle(m.pools.Bullets.At(h).Shape, entity.PlayerBulletColor)
	}
	for _, h := range m.enemyBullets {
		target.DrawCircle(m.pools.Bullets.At(h).Shape, entity.EnemyBulletColor)
	}
	for _, h := range m.enemies {
		target.DrawCircle(m.pools.Enemies.At(h).Shape, entity.EnemyColor)
	}
}

// ScoreText is the HUD line drawn each frame.
func (m *Manager) ScoreText() string {
	return fmt.Sprintf("Score: %d  HP: %d", m.player.Score, m.player.Health)
}

// EnemyBullets iterates live enemy bullets in list order.
func (m *Manager) EnemyBullets() iter.Seq[*entity.Bullet] {
	return m.bullets(m.enemyBullets)
}

// PlayerBullets iterates live player bullets in list order.
func (m *Manager) PlayerBullets() iter.Seq[*entity.Bullet] {
	return m.bullets(m.playerBullets)
}

func (m *Manager) bullets(handles []pool.Handle) iter.Seq[*entity.Bullet] {
	return func(yield func(*entity.Bullet) bool) {
		for _, h := range handles {
			if !yield(m.pools.Bullets.At(h)) {
				return
			}
		}
	}
}

// Enemies iterates live enemies with their handles.
func (m *Manager) Enemies() iter.Seq2[pool.Handle, *entity.Enemy] {
	return func(yield func(pool.Handle, *entity.Enemy) bool) {
		for _, h := range m.enemies {
			if !yield(h, m.pools.Enemies.At(h)) {
				return
			}
		}
	}
}

// Count returns the number of live entities of a kind.
func (m *Manager) Count(kind entity.Kind) int {
	switch kind {
	case entity.KindPlayer:
		return 1
	case entity.KindBullet:
		return len(m.playerBullets) + len(m.enemyBullets)
	case entity.KindEnemy:
		return len(m.enemies)
	default:
		return 0
	}
}

// Stats returns current counts and both pools' occupancy.
func (m *Manager) Stats() Stats {
	return Stats{
		Bullets:       m.pools.Bullets.Stats(),
		Enemies:       m.pools.Enemies.Stats(),
		PlayerBullets: len(m.playerBullets),
		EnemyBullets:  len(m.enemyBullets),
		LiveEnemies:   len(m.enemies),
		Spawned:       m.spawned,
		Score:         m.player.Score,
		Health:        m.player.Health,
	}
}

// Close returns every live bullet and enemy to pools. The manager is empty
// afterwards but still usable.
func (m *Manager) Close() {
	for _, h := range m.playerBullets {
		m.recycle(h)
	}
	for _, h := range m.enemyBullets {
		m.recycle(h)
	}
	for _, h := range m.enemies {
		if err := m.pools.Enemies.Put(h); err != nil {
			m.logger.Error("recycle enemy", "handle", uint64(h), "err", err)
		}
	}
	m.playerBullets = m.playerBullets[:0]
	m.enemyBullets = m.enemyBullets[:0]
	m.enemies = m.enemies[:0]
}
