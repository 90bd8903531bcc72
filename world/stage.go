package world

import (
	"fmt"

	"github.com/plus3/danmaku/stage"
)

// LoadStage builds def and spawns its enemies.
func (m *Manager) LoadStage(def stage.Definition) error {
	enemies, err := stage.Build(def)
	if err != nil {
		return fmt.Errorf("load stage %q: %w", def.Name, err)
	}
	for _, e := range enemies {
		m.SpawnEnemy(e)
	}
	m.logger.Info("stage loaded", "stage", def.Name, "enemies", len(enemies))
	return nil
}
