// Package ebiten provides a render.Target that draws onto an Ebiten image.
package ebiten

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/danmaku/geom"
	"github.com/plus3/danmaku/render"
)

var _ render.Target = (*Screen)(nil)

// LoadFace reads a TrueType/OpenType font from path. On failure it logs a
// warning and returns nil; a Screen with a nil face falls back to the debug
// font.
func LoadFace(path string, size float64, logger *slog.Logger) text.Face {
	face, err := loadFace(path, size)
	if err != nil {
		logger.Warn("font unavailable, using debug font", "path", path, "err", err)
		return nil
	}
	logger.Info("font loaded", "path", path, "size", size)
	return face
}

func loadFace(path string, size float64) (text.Face, error) {
	if path == "" {
		return nil, errors.New("no font path configured")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	return &text.GoTextFace{Source: src, Size: size}, nil
}

// Screen draws commands onto Image.
type Screen struct {
	Image *ebiten.Image
	Face  text.Face
}

func (s *Screen) DrawCircle(c geom.Circle, col color.Color) {
	vector.DrawFilledCircle(s.Image,
		float32(c.Center.X), float32(c.Center.Y), float32(c.Radius),
		col, true)
}

func (s *Screen) DrawText(str string, at geom.Vec2, col color.Color) {
	if s.Face == nil {
		ebitenutil.DebugPrintAt(s.Image, str, int(at.X), int(at.Y))
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(at.X, at.Y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(s.Image, str, s.Face, op)
}
