package entity_test

import (
	"math"
	"testing"

	"github.com/plus3/danmaku/entity"
	"github.com/plus3/danmaku/geom"
	"github.com/stretchr/testify/assert"
)

func TestActorForward(t *testing.T) {
	a := entity.Actor{Rotation: math.Pi / 2}
	f := a.Forward()
	assert.InDelta(t, 0.0, f.X, 1e-12)
	assert.InDelta(t, 1.0, f.Y, 1e-12)
}

func TestActorShootingPoint(t *testing.T) {
	a := entity.Actor{
		Shape:             geom.Circle{Center: geom.Vec2{X: 100, Y: 50}, Radius: 15},
		ShootingPositions: []geom.Vec2{{X: 0, Y: 15}},
	}
	assert.Equal(t, geom.Vec2{X: 100, Y: 65}, a.ShootingPoint(0))
}

func TestPlayerDamage(t *testing.T) {
	p := entity.NewPlayer(geom.Vec2{X: 1, Y: 1}, 10, 2)
	assert.True(t, p.Alive())

	p.Damage()
	p.Damage()
	p.Damage()
	assert.Equal(t, 0, p.Health)
	assert.False(t, p.Alive())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "player", entity.KindPlayer.String())
	assert.Equal(t, "bullet", entity.KindBullet.String())
	assert.Equal(t, "enemy", entity.KindEnemy.String())
	assert.Equal(t, "unknown", entity.Kind(42).String())
}
