package stage_test

import (
	"math"
	"testing"

	"github.com/plus3/danmaku/behavior"
	"github.com/plus3/danmaku/geom"
	"github.com/plus3/danmaku/stage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDefault(t *testing.T) {
	enemies, err := stage.Build(stage.Default(800, 600))
	require.NoError(t, err)
	require.Len(t, enemies, 2)

	turret := enemies[0]
	assert.Equal(t, geom.Vec2{X: 200, Y: 150}, turret.Shape.Center)
	require.Len(t, turret.Behaviors, 2)
	assert.IsType(t, behavior.RotateConstantly{}, turret.Behaviors[0])
	assert.IsType(t, &behavior.ShootStraight{}, turret.Behaviors[1])

	spinner := enemies[1]
	assert.Len(t, spinner.ShootingPositions, 4)
	require.Len(t, spinner.Behaviors, 1)
	circular, ok := spinner.Behaviors[0].(*behavior.CircularShoot)
	require.True(t, ok)
	assert.InDelta(t, math.Pi/18, circular.Angle, 1e-12)
}

func TestBuildIndependentInstances(t *testing.T) {
	def := stage.Definition{Enemies: []stage.EnemySpec{
		{X: 1, Y: 1, Radius: 5, Behaviors: []stage.BehaviorSpec{{Kind: stage.KindShootStraight, FiringRate: 1}}},
		{X: 2, Y: 2, Radius: 5, Behaviors: []stage.BehaviorSpec{{Kind: stage.KindShootStraight, FiringRate: 1}}},
	}}

	enemies, err := stage.Build(def)
	require.NoError(t, err)
	assert.NotSame(t, enemies[0].Behaviors[0], enemies[1].Behaviors[0])
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		spec stage.EnemySpec
		want error
	}{
		{
			name: "zero radius",
			spec: stage.EnemySpec{Radius: 0},
			want: stage.ErrInvalidEnemy,
		},
		{
			name: "unknown kind",
			spec: stage.EnemySpec{Radius: 5, Behaviors: []stage.BehaviorSpec{{Kind: "teleport"}}},
			want: stage.ErrUnknownBehavior,
		},
		{
			name: "zero firing rate",
			spec: stage.EnemySpec{Radius: 5, Behaviors: []stage.BehaviorSpec{{Kind: stage.KindShootStraight}}},
			want: stage.ErrInvalidEnemy,
		},
		{
			name: "zero circular timers",
			spec: stage.EnemySpec{Radius: 5, Behaviors: []stage.BehaviorSpec{{Kind: stage.KindCircularShoot, FireEvery: 1}}},
			want: stage.ErrInvalidEnemy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := stage.Build(stage.Definition{Enemies: []stage.EnemySpec{tt.spec}})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBuildMoveStraight(t *testing.T) {
	def := stage.Definition{Enemies: []stage.EnemySpec{{
		X: 0, Y: 0, Radius: 5,
		Behaviors: []stage.BehaviorSpec{{Kind: stage.KindMoveStraight, Speed: 10, DirectionDeg: 90}},
	}}}

	enemies, err := stage.Build(def)
	require.NoError(t, err)

	move := enemies[0].Behaviors[0].(behavior.MoveStraight)
	assert.InDelta(t, 0.0, move.Direction.X, 1e-12)
	assert.InDelta(t, 1.0, move.Direction.Y, 1e-12)
	assert.Equal(t, 10.0, move.Speed)
}
