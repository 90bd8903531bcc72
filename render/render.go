// Package render defines the draw-command surface entities render onto.
package render

//go:generate go tool mockgen -destination=./mocks/render_mock.go -package=mocks . Target

import (
	"image/color"

	"github.com/plus3/danmaku/geom"
)

// Target accepts draw commands. Callers never query it.
type Target interface {
	DrawCircle(c geom.Circle, col color.Color)
	DrawText(s string, at geom.Vec2, col color.Color)
}

// CommandKind distinguishes recorded commands.
type CommandKind int

const (
	CommandCircle CommandKind = iota
	CommandText
)

// Command is one recorded draw call.
type Command struct {
	Kind   CommandKind
	Circle geom.Circle
	Text   string
	At     geom.Vec2
	Color  color.Color
}

// Recorder is a Target that keeps every command it receives, in order.
type Recorder struct {
	Commands []Command
}

func (r *Recorder) DrawCircle(c geom.Circle, col color.Color) {
	r.Commands = append(r.Commands, Command{Kind: CommandCircle, Circle: c, Color: col})
}

func (r *Recorder) DrawText(s string, at geom.Vec2, col color.Color) {
	r.Commands = append(r.Commands, Command{Kind: CommandText, Text: s, At: at, Color: col})
}

// Reset drops recorded commands, keeping the backing array.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}

// Discard is a Target that drops everything.
var Discard Target = discard{}

type discard struct{}

func (discard) DrawCircle(geom.Circle, color.Color)      {}
func (discard) DrawText(string, geom.Vec2, color.Color) {}
