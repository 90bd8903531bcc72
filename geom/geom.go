// Package geom holds the 2D primitives shared by every entity: vectors,
// circles and the circle-circle overlap test.
package geom

import "math"

// Vec2 is a point or displacement in world coordinates. The Y axis grows
// downward, matching the viewport.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// LenSq returns the squared length of v.
func (v Vec2) LenSq() float64 { return v.X*v.X + v.Y*v.Y }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Sqrt(v.LenSq()) }

// Normalize returns v scaled to unit length. The zero vector stays zero.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Rotate rotates v about the origin by angle radians using the standard
// rotation matrix: x' = x cos - y sin, y' = x sin + y cos.
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// RotateAbout rotates v about pivot by angle radians.
func (v Vec2) RotateAbout(pivot Vec2, angle float64) Vec2 {
	return v.Sub(pivot).Rotate(angle).Add(pivot)
}

// FromAngle returns the unit vector pointing at angle radians.
func FromAngle(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{cos, sin}
}

// Circle is the collision and render shape of every entity. Center is the
// circle's origin, not its bounding box corner.
type Circle struct {
	Center Vec2
	Radius float64
}

// Move displaces the circle by d.
func (c *Circle) Move(d Vec2) {
	c.Center = c.Center.Add(d)
}

// Collides reports whether two circles overlap. Touching counts.
func Collides(a, b Circle) bool {
	r := a.Radius + b.Radius
	return a.Center.Sub(b.Center).LenSq() <= r*r
}

// Rect is an axis-aligned rectangle anchored at the origin, used for the
// viewport bounds.
type Rect struct {
	W, H float64
}

// Clamp returns c repositioned so the whole circle lies inside r.
func (r Rect) Clamp(c Circle) Circle {
	c.Center.X = clamp(c.Center.X, c.Radius, r.W-c.Radius)
	c.Center.Y = clamp(c.Center.Y, c.Radius, r.H-c.Radius)
	return c
}

// Outside reports whether c lies entirely outside r.
func (r Rect) Outside(c Circle) bool {
	return c.Center.X+c.Radius < 0 ||
		c.Center.Y+c.Radius < 0 ||
		c.Center.X-c.Radius > r.W ||
		c.Center.Y-c.Radius > r.H
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
