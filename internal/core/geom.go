// Package core provides fundamental types and utilities shared by the game
// and the terminal platform. It has no external dependencies (especially no
// Bubble Tea) to keep the simulation pure and testable.
package core

import "math"

// Rect is an integer, top-left anchored rectangle in screen cells.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Vec2 is a point or direction in world units.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v * k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{v.X * k, v.Y * k}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Len()
}

// FromAngle returns the unit vector pointing along angle (radians).
func FromAngle(angle float64) Vec2 {
	return Vec2{math.Cos(angle), math.Sin(angle)}
}

// Box is an axis-aligned rectangle described by its centre and full size.
type Box struct {
	Center Vec2
	W, H   float64
}

// NewBox creates a box centred on (cx, cy).
func NewBox(cx, cy, w, h float64) Box {
	return Box{Center: Vec2{cx, cy}, W: w, H: h}
}

// Min returns the top-left corner.
func (b Box) Min() Vec2 {
	return Vec2{b.Center.X - b.W/2, b.Center.Y - b.H/2}
}

// Max returns the bottom-right corner.
func (b Box) Max() Vec2 {
	return Vec2{b.Center.X + b.W/2, b.Center.Y + b.H/2}
}

// ContainsStrict reports whether p lies strictly inside the box.
// Points on the edge are outside.
func (b Box) ContainsStrict(p Vec2) bool {
	lo, hi := b.Min(), b.Max()
	return p.X > lo.X && p.X < hi.X && p.Y > lo.Y && p.Y < hi.Y
}

// Footprint describes an oriented rectangle relative to its reference point:
// Front and Back extend along the heading, HalfWidth to either side.
type Footprint struct {
	Front     float64
	Back      float64
	HalfWidth float64
}

// Corners returns the four corners of f placed at pos and rotated by heading,
// in order front-left, front-right, back-right, back-left.
func (f Footprint) Corners(pos Vec2, heading float64) [4]Vec2 {
	c, s := math.Cos(heading), math.Sin(heading)
	at := func(along, side float64) Vec2 {
		return Vec2{
			X: pos.X + c*along - s*side,
			Y: pos.Y + s*along + c*side,
		}
	}
	return [4]Vec2{
		at(f.Front, -f.HalfWidth),
		at(f.Front, f.HalfWidth),
		at(-f.Back, f.HalfWidth),
		at(-f.Back, -f.HalfWidth),
	}
}

// Clamp restricts an integer to [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 to [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Lerp interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Sign returns -1, 0 or +1 following the sign of x.
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
