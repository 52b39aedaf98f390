// Package core provides fundamental types and utilities for the Blobblab
// platform: input actions, the screen buffer and runtime configuration.
// It has no external dependencies (especially no Bubble Tea) so game
// logic stays pure and testable.
package core

// Rect is an axis-aligned screen area used for layout and boxes.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// CenterIn returns a w×h rectangle centered inside the outer one.
// Sizes larger than the outer area are anchored at its top-left corner.
func CenterIn(outer Rect, w, h int) Rect {
	x := outer.X + max(0, (outer.W-w)/2)
	y := outer.Y + max(0, (outer.H-h)/2)
	return NewRect(x, y, w, h)
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
