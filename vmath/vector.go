package vmath

import "math"

// Vector2 is a mutable 2D point or displacement in field units
type Vector2 struct {
	X float64
	Y float64
}

// NewVector2 returns a vector with the given components
func NewVector2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Reset zeroes both components
func (v *Vector2) Reset() {
	v.X = 0
	v.Y = 0
}

// Distance returns the Euclidean distance between v and o
func (v Vector2) Distance(o Vector2) float64 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Add returns v + o
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by f
func (v Vector2) Scale(f float64) Vector2 {
	return Vector2{X: v.X * f, Y: v.Y * f}
}

// Polar returns the vector of the given length pointing along angle (radians)
func Polar(angle, length float64) Vector2 {
	return Vector2{X: length * math.Cos(angle), Y: length * math.Sin(angle)}
}

// Heading returns the angle of the direction from -> to
// ok is false for a zero-length direction, in which case angle is 0 and must not be used
func Heading(from, to Vector2) (angle float64, ok bool) {
	dx := to.X - from.X
	dy := to.Y - from.Y
	if dx == 0 && dy == 0 {
		return 0, false
	}
	return math.Atan2(dy, dx), true
}

// Angle returns the direction of v as atan2(y, x)
func (v Vector2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Bounds is the playable field [0,Width]x[0,Height]
type Bounds struct {
	Width  float64
	Height float64
}

// Contains reports whether p lies inside the closed field rectangle
func (b Bounds) Contains(p Vector2) bool {
	return p.X >= 0 && p.X <= b.Width && p.Y >= 0 && p.Y <= b.Height
}

// Center returns the middle of the field
func (b Bounds) Center() Vector2 {
	return Vector2{X: b.Width / 2, Y: b.Height / 2}
}
