// Package core holds the platform primitives shared by games and the terminal
// runtime: the screen buffer, input frames and per-step results. It imports
// no UI packages so game logic stays testable without a terminal.
package core

import "math"

// Rect is an integer cell rectangle.
type Rect struct {
	X, Y int // top-left corner
	W, H int
}

func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectFromBox converts a box given by its center and half extent in world
// units to the cells it covers. Edges are rounded to the nearest cell, and a
// box never shrinks below one cell.
func RectFromBox(cx, cy, hx, hy float64) Rect {
	x0 := int(math.Round(cx - hx))
	y0 := int(math.Round(cy - hy))
	x1 := int(math.Round(cx + hx))
	y1 := int(math.Round(cy + hy))
	return Rect{X: x0, Y: y0, W: max(x1-x0, 1), H: max(y1-y0, 1)}
}

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// Intersects reports whether r and o share at least one cell.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Contains reports whether cell (x, y) is inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center cell, rounding toward the top-left.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	return min(max(val, lo), hi)
}

// ClampF restricts val to [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	return math.Min(math.Max(val, lo), hi)
}

func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0 or 1.
func Sign(x float64) float64 {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
