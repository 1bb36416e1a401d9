// Package collision implements axis-aligned bounding box contact detection and
// positional restitution for small sets of rectangular bodies.
//
// The engine keeps no spatial index: every Update tests every pair of bodies.
// Body counts in the games this serves are in the tens, so the quadratic pass
// is cheaper than maintaining a broad-phase structure.
package collision

import "math"

// Vec2 is a 2D vector in world units (terminal cells for the arcade games).
type Vec2 struct {
	X, Y float64
}

// Zero is the zero vector.
var Zero = Vec2{}

// One has both components set to 1.
var One = Vec2{1, 1}

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Splat returns a vector with both components set to v.
func Splat(v float64) Vec2 {
	return Vec2{X: v, Y: v}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Mul multiplies component-wise.
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{v.X * o.X, v.Y * o.Y}
}

// Scale multiplies both components by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Abs returns the component-wise absolute value.
func (v Vec2) Abs() Vec2 {
	return Vec2{math.Abs(v.X), math.Abs(v.Y)}
}

// Neg returns -v.
func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// LengthSquared returns the squared Euclidean length.
func (v Vec2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Overlaps reports whether box A (center cA, half extent hA) and box B overlap.
// Intervals are closed: boxes whose edges touch count as overlapping.
func Overlaps(cA, hA, cB, hB Vec2) bool {
	return math.Abs(cA.X-cB.X) <= hA.X+hB.X &&
		math.Abs(cA.Y-cB.Y) <= hA.Y+hB.Y
}

// Penetration returns the signed overlap depth of A into B on each axis.
// The vector points from B toward A. Both components are always filled in,
// even when only one axis actually overlaps, so callers must check Overlaps
// first to know whether the pair touches at all.
func Penetration(cA, hA, cB, hB Vec2) Vec2 {
	d := cA.Sub(cB)
	depth := hA.Add(hB).Sub(d.Abs())
	return Vec2{
		X: side(d.X) * depth.X,
		Y: side(d.Y) * depth.Y,
	}
}

// side is -1 for negative values and 1 otherwise, so coincident centers push A
// in the positive direction.
func side(d float64) float64 {
	if d < 0 {
		return -1
	}
	return 1
}
