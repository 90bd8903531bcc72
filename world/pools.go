package world

import (
	"log/slog"

	"github.com/plus3/danmaku/config"
	"github.com/plus3/danmaku/entity"
	"github.com/plus3/danmaku/pool"
)

// Pools holds the arenas the manager leases bullets and enemies from.
type Pools struct {
	Bullets *pool.Pool[entity.Bullet]
	Enemies *pool.Pool[entity.Enemy]
}

// NewPools preallocates both arenas from cfg.
func NewPools(cfg config.PoolConfig, logger *slog.Logger) Pools {
	return Pools{
		Bullets: pool.New[entity.Bullet]("bullets", cfg.Bullets, pool.WithLogger(logger)),
		Enemies: pool.New[entity.Enemy]("enemies", cfg.Enemies, pool.WithLogger(logger)),
	}
}
