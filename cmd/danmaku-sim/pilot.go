package main

import "github.com/plus3/danmaku/input"

// pilot strafes left and right across the bottom of the screen with fire
// held, switching direction every period ticks.
type pilot struct {
	period int
	tick   int
}

func (p *pilot) Pressed(a input.Action) bool {
	switch a {
	case input.Fire:
		return true
	case input.Left:
		return (p.tick/p.period)%2 == 0
	case input.Right:
		return (p.tick/p.period)%2 == 1
	default:
		return false
	}
}

func (p *pilot) advance() { p.tick++ }
