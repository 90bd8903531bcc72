// Package entity defines the closed set of entity variants (Player, Bullet and
// Enemy), the transform they share and the contracts behaviors are written
// against.
package entity

import (
	"image/color"

	"github.com/plus3/danmaku/geom"
)

// Colors used for each variant.
var (
	PlayerColor       = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	PlayerBulletColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	EnemyColor        = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	EnemyBulletColor  = color.RGBA{R: 255, G: 0, B: 255, A: 255}
)

// Kind tags an entity with its variant.
type Kind int

const (
	KindPlayer Kind = iota
	KindBullet
	KindEnemy
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindBullet:
		return "bullet"
	case KindEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Actor is the transform every variant carries: its shape, its facing and the
// points it shoots from.
type Actor struct {
	Shape    geom.Circle
	Rotation float64 // radians, unbounded

	// ShootingPositions are offsets relative to Shape.Center.
	ShootingPositions []geom.Vec2
}

// Forward returns the unit vector the actor is facing.
func (a *Actor) Forward() geom.Vec2 {
	return geom.FromAngle(a.Rotation)
}

// ShootingPoint returns the world position of the i-th shooting position.
func (a *Actor) ShootingPoint(i int) geom.Vec2 {
	return a.Shape.Center.Add(a.ShootingPositions[i])
}

// Spawner receives the bullets behaviors fire.
type Spawner interface {
	EnemyShoot(origin, velocity geom.Vec2)
}

// Behavior is one interchangeable policy (movement, shooting or rotation)
// invoked once per tick on the actor it is attached to.
type Behavior interface {
	Behave(a *Actor, dt float64, s Spawner)
}

// Side records which active list a bullet belongs to.
type Side int

const (
	SidePlayer Side = iota
	SideEnemy
)

// Player is the single user-controlled circle.
type Player struct {
	Actor
	Direction geom.Vec2 // unit length or zero
	Firing    bool
	Cooldown  float64
	Score     int
	Health    int
}

// NewPlayer creates a player centered at pos.
func NewPlayer(pos geom.Vec2, radius float64, health int) Player {
	return Player{
		Actor:  Actor{Shape: geom.Circle{Center: pos, Radius: radius}},
		Health: health,
	}
}

// Damage removes one health point, never going below zero.
func (p *Player) Damage() {
	if p.Health > 0 {
		p.Health--
	}
}

func (p *Player) Alive() bool { return p.Health > 0 }

// Bullet is a pooled projectile driven by a single move behavior.
type Bullet struct {
	Actor
	Side Side
	Move Behavior
}

// Enemy is a stage-placed actor driven by an ordered list of behaviors.
type Enemy struct {
	Actor
	Behaviors []Behavior
	Hits      int
}

// Color returns the fill color for a bullet of the given side.
func (s Side) Color() color.Color {
	if s == SidePlayer {
		return PlayerBulletColor
	}
	return EnemyBulletColor
}
