package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/plus3/danmaku/config"
	"github.com/plus3/danmaku/input"
	"github.com/plus3/danmaku/loop"
	renderebiten "github.com/plus3/danmaku/render/ebiten"
	"github.com/plus3/danmaku/world"
)

// Game adapts the world loop to ebiten.Game. Ebiten paces Update at the
// configured TPS; Draw runs the render phase onto the screen.
type Game struct {
	cfg   *config.Config
	world *world.Manager
	loop  *loop.Loop
	keys  input.State
	face  text.Face
	dt    float64
	debug *debugOverlay
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.loop.Tick(g.dt, g.keys)

	if g.debug != nil {
		g.debug.update(g.world, g.loop)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.loop.Draw(&renderebiten.Screen{Image: screen, Face: g.face})

	if g.debug != nil {
		g.debug.draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.debug != nil {
		g.debug.layout(outsideWidth, outsideHeight)
	}
	return g.cfg.Window.Width, g.cfg.Window.Height
}
