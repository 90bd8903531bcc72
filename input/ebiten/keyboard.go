// Package ebiten polls the keyboard through Ebiten and reports logical actions.
package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/danmaku/input"
)

// Keymap binds each logical action to any of several keys.
type Keymap map[input.Action][]ebiten.Key

// DefaultKeymap binds WASD and the arrow keys to movement and Space or J to fire.
func DefaultKeymap() Keymap {
	return Keymap{
		input.Up:    {ebiten.KeyW, ebiten.KeyArrowUp},
		input.Down:  {ebiten.KeyS, ebiten.KeyArrowDown},
		input.Left:  {ebiten.KeyA, ebiten.KeyArrowLeft},
		input.Right: {ebiten.KeyD, ebiten.KeyArrowRight},
		input.Fire:  {ebiten.KeySpace, ebiten.KeyJ},
	}
}

// Keyboard is an input.State backed by live key polling.
type Keyboard struct {
	Keys Keymap
}

func NewKeyboard() *Keyboard {
	return &Keyboard{Keys: DefaultKeymap()}
}

func (k *Keyboard) Pressed(a input.Action) bool {
	for _, key := range k.Keys[a] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}
