// Package core provides fundamental types and utilities shared by the
// simulation and every host surface. It has no external dependencies
// (especially no Bubble Tea or ebiten) so game logic stays pure and testable.
package core

import "math"

// Rect is an integer axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center cell of this rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// RectF is an axis-aligned box in world units.
type RectF struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Overlaps reports whether two boxes overlap on both axes.
// Touching edges do not count as an overlap.
func (r RectF) Overlaps(other RectF) bool {
	return r.X < other.Right() &&
		r.Right() > other.X &&
		r.Y < other.Bottom() &&
		r.Bottom() > other.Y
}

// Circle is a disc in world units, centred on (X, Y).
type Circle struct {
	X, Y float64
	R    float64
}

// HitsRect reports whether the circle touches the interior of r.
// The centre is clamped onto the box and the squared distance to that
// closest point is compared against the squared radius.
func (c Circle) HitsRect(r RectF) bool {
	closestX := ClampF(c.X, r.X, r.Right())
	closestY := ClampF(c.Y, r.Y, r.Bottom())
	dx := c.X - closestX
	dy := c.Y - closestY
	return dx*dx+dy*dy < c.R*c.R
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
