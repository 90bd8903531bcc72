package render_test

import (
	"image/color"
	"testing"

	"github.com/plus3/danmaku/geom"
	"github.com/plus3/danmaku/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	var r render.Recorder
	c := geom.Circle{Center: geom.Vec2{X: 1, Y: 2}, Radius: 3}

	r.DrawCircle(c, color.White)
	r.DrawText("Score: 0", geom.Vec2{X: 4, Y: 5}, color.Black)

	require.Len(t, r.Commands, 2)
	assert.Equal(t, render.CommandCircle, r.Commands[0].Kind)
	assert.Equal(t, c, r.Commands[0].Circle)
	assert.Equal(t, render.CommandText, r.Commands[1].Kind)
	assert.Equal(t, "Score: 0", r.Commands[1].Text)

	r.Reset()
	assert.Empty(t, r.Commands)
}
