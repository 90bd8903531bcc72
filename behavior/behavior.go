// Package behavior implements the strategies attached to bullets and enemies.
//
// Each behavior advances its own timers by the tick delta and mutates the
// actor it is invoked on. Stateful behaviors must not be shared between
// actors; construct one per entity.
package behavior

import (
	"github.com/plus3/danmaku/entity"
	"github.com/plus3/danmaku/geom"
)

var (
	_ entity.Behavior = MoveStraight{}
	_ entity.Behavior = (*ShootStraight)(nil)
	_ entity.Behavior = RotateConstantly{}
	_ entity.Behavior = (*CircularShoot)(nil)
)

// MoveStraight displaces the actor by Speed*dt along Direction every tick.
type MoveStraight struct {
	Direction geom.Vec2
	Speed     float64
}

// NewMoveStraight builds a MoveStraight from a velocity vector.
func NewMoveStraight(velocity geom.Vec2) MoveStraight {
	return MoveStraight{
		Direction: velocity.Normalize(),
		Speed:     velocity.Len(),
	}
}

func (m MoveStraight) Behave(a *entity.Actor, dt float64, _ entity.Spawner) {
	a.Shape.Move(m.Direction.Scale(m.Speed * dt))
}

// ShootStraight fires one bullet along the actor's forward vector every
// FiringRate seconds.
type ShootStraight struct {
	FiringRate  float64
	BulletSpeed float64

	timer float64
}

func (s *ShootStraight) Behave(a *entity.Actor, dt float64, sp entity.Spawner) {
	s.timer += dt
	if s.timer < s.FiringRate {
		return
	}
	s.timer = 0
	sp.EnemyShoot(a.Shape.Center, a.Forward().Scale(s.BulletSpeed))
}

// RotateConstantly turns the actor by Speed radians per second.
type RotateConstantly struct {
	Speed float64
}

func (r RotateConstantly) Behave(a *entity.Actor, dt float64, _ entity.Spawner) {
	a.Rotation += r.Speed * dt
}

// CircularShoot rotates the actor's shooting positions by Angle radians every
// RotateEvery seconds, and every FireEvery seconds fires one bullet from the
// center toward each shooting position.
type CircularShoot struct {
	RotateEvery float64
	Angle       float64
	FireEvery   float64
	BulletSpeed float64

	rotateTimer float64
	fireTimer   float64
}

func (c *CircularShoot) Behave(a *entity.Actor, dt float64, sp entity.Spawner) {
	c.rotateTimer += dt
	c.fireTimer += dt

	if c.rotateTimer >= c.RotateEvery {
		c.rotateTimer = 0
		// Offsets are relative to the center, so rotating about the origin
		// rotates the shooting points about the actor.
		for i, offset := range a.ShootingPositions {
			a.ShootingPositions[i] = offset.Rotate(c.Angle)
		}
	}

	if c.fireTimer >= c.FireEvery {
		c.fireTimer = 0
		origin := a.Shape.Center
		for i := range a.ShootingPositions {
			aim := a.ShootingPoint(i).Sub(origin).Normalize()
			sp.EnemyShoot(origin, aim.Scale(c.BulletSpeed))
		}
	}
}
