package physics

import (
	"image/color"
	"math"
)

// Vec2 is a 2D vector in scaled world units.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LenSq avoids the square root where only comparisons are needed.
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Perp returns the counter-clockwise perpendicular of v.
func (v Vec2) Perp() Vec2 {
	return Vec2{-v.Y, v.X}
}

// Body is a point mass with a visual radius and color. Mass is fixed
// at creation; position and velocity are mutated by the integrator.
type Body struct {
	Pos    Vec2
	Vel    Vec2
	Mass   float64
	Radius float64
	Color  color.RGBA
}
