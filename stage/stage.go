// Package stage turns a declarative stage definition into the enemies that
// populate the world at stage initialization.
package stage

import (
	"errors"
	"fmt"
	"math"

	"github.com/plus3/danmaku/behavior"
	"github.com/plus3/danmaku/entity"
	"github.com/plus3/danmaku/geom"
)

// Behavior kinds understood by Build.
const (
	KindMoveStraight     = "move_straight"
	KindShootStraight    = "shoot_straight"
	KindRotateConstantly = "rotate_constantly"
	KindCircularShoot    = "circular_shoot"
)

var (
	ErrUnknownBehavior = errors.New("stage: unknown behavior kind")
	ErrInvalidEnemy    = errors.New("stage: invalid enemy")
)

// BehaviorSpec describes one behavior. Only the fields relevant to Kind are read.
// Angles are in degrees.
type BehaviorSpec struct {
	Kind         string  `toml:"kind"`
	Speed        float64 `toml:"speed,omitempty"`
	DirectionDeg float64 `toml:"direction_deg,omitempty"`
	FiringRate   float64 `toml:"firing_rate,omitempty"`
	BulletSpeed  float64 `toml:"bullet_speed,omitempty"`
	RotateEvery  float64 `toml:"rotate_every,omitempty"`
	AngleDeg     float64 `toml:"angle_deg,omitempty"`
	FireEvery    float64 `toml:"fire_every,omitempty"`
}

// EnemySpec places one enemy.
type EnemySpec struct {
	X                 float64        `toml:"x"`
	Y                 float64        `toml:"y"`
	Radius            float64        `toml:"radius"`
	RotationDeg       float64        `toml:"rotation_deg,omitempty"`
	ShootingPositions [][2]float64   `toml:"shooting_positions,omitempty"`
	Behaviors         []BehaviorSpec `toml:"behaviors"`
}

// Definition is a whole stage.
type Definition struct {
	Name    string      `toml:"name"`
	Enemies []EnemySpec `toml:"enemies"`
}

// Default is the built-in stage for a viewport of the given size: a rotating
// turret on the left and a four-way spinner on the right.
func Default(width, height float64) Definition {
	return Definition{
		Name: "default",
		Enemies: []EnemySpec{
			{
				X:      width * 0.25,
				Y:      height * 0.25,
				Radius: 15,
				Behaviors: []BehaviorSpec{
					{Kind: KindRotateConstantly, Speed: 90},
					{Kind: KindShootStraight, FiringRate: 0.25, BulletSpeed: 180},
				},
			},
			{
				X:      width * 0.75,
				Y:      height * 0.25,
				Radius: 15,
				ShootingPositions: [][2]float64{
					{0, 15}, {15, 0}, {0, -15}, {-15, 0},
				},
				Behaviors: []BehaviorSpec{
					{Kind: KindCircularShoot, RotateEvery: 0.1, AngleDeg: 10, FireEvery: 0.3, BulletSpeed: 150},
				},
			},
		},
	}
}

// Build validates def and constructs its enemies in order. Each enemy gets its
// own behavior instances.
func Build(def Definition) ([]entity.Enemy, error) {
	enemies := make([]entity.Enemy, 0, len(def.Enemies))
	for i, spec := range def.Enemies {
		enemy, err := buildEnemy(spec)
		if err != nil {
			return nil, fmt.Errorf("enemy %d: %w", i, err)
		}
		enemies = append(enemies, enemy)
	}
	return enemies, nil
}

func buildEnemy(spec EnemySpec) (entity.Enemy, error) {
	if spec.Radius <= 0 {
		return entity.Enemy{}, fmt.Errorf("%w: radius %v must be positive", ErrInvalidEnemy, spec.Radius)
	}

	positions := make([]geom.Vec2, len(spec.ShootingPositions))
	for i, p := range spec.ShootingPositions {
		positions[i] = geom.Vec2{X: p[0], Y: p[1]}
	}

	behaviors := make([]entity.Behavior, 0, len(spec.Behaviors))
	for j, b := range spec.Behaviors {
		built, err := buildBehavior(b)
		if err != nil {
			return entity.Enemy{}, fmt.Errorf("behavior %d: %w", j, err)
		}
		behaviors = append(behaviors, built)
	}

	return entity.Enemy{
		Actor: entity.Actor{
			Shape:             geom.Circle{Center: geom.Vec2{X: spec.X, Y: spec.Y}, Radius: spec.Radius},
			Rotation:          radians(spec.RotationDeg),
			ShootingPositions: positions,
		},
		Behaviors: behaviors,
	}, nil
}

func buildBehavior(b BehaviorSpec) (entity.Behavior, error) {
	switch b.Kind {
	case KindMoveStraight:
		return behavior.MoveStraight{
			Direction: geom.FromAngle(radians(b.DirectionDeg)),
			Speed:     b.Speed,
		}, nil
	case KindShootStraight:
		if b.FiringRate <= 0 {
			return nil, fmt.Errorf("%w: firing_rate must be positive", ErrInvalidEnemy)
		}
		return &behavior.ShootStraight{FiringRate: b.FiringRate, BulletSpeed: b.BulletSpeed}, nil
	case KindRotateConstantly:
		return behavior.RotateConstantly{Speed: radians(b.Speed)}, nil
	case KindCircularShoot:
		if b.RotateEvery <= 0 || b.FireEvery <= 0 {
			return nil, fmt.Errorf("%w: rotate_every and fire_every must be positive", ErrInvalidEnemy)
		}
		return &behavior.CircularShoot{
			RotateEvery: b.RotateEvery,
			Angle:       radians(b.AngleDeg),
			FireEvery:   b.FireEvery,
			BulletSpeed: b.BulletSpeed,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBehavior, b.Kind)
	}
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
