package main

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/danmaku/config"
	"github.com/plus3/danmaku/debugui"
	"github.com/plus3/danmaku/loop"
	"github.com/plus3/danmaku/world"
)

type debugOverlay struct {
	backend *ebitenbackend.EbitenBackend
	overlay *debugui.Overlay
	dt      float32
}

func newDebugOverlay(cfg *config.Config) *debugOverlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
	imgui.CurrentIO().SetIniFilename("")

	return &debugOverlay{
		backend: backend,
		overlay: debugui.NewOverlay(120),
		dt:      1.0 / float32(cfg.Loop.FPS),
	}
}

func (d *debugOverlay) update(m *world.Manager, l *loop.Loop) {
	d.backend.BeginFrame()
	d.overlay.Render(debugui.Collect(m, l), d.dt)
	d.backend.EndFrame()
}

func (d *debugOverlay) draw(screen *ebiten.Image) {
	d.backend.Draw(screen)
}

func (d *debugOverlay) layout(w, h int) {
	d.backend.Layout(w, h)
}
