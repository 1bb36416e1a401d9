package collision

import "math"

// Contact records two bodies that touched during the last Update.
//
// When both bodies share fixedness, I < J in store order. When exactly one is
// fixed, I is the unfixed one.
type Contact struct {
	I, J int

	// Displacement is the signed per-axis penetration of I into J. It stays
	// zero unless both bodies are solid and I is not fixed.
	Displacement Vec2

	// Applied is the correction (single axis) restitution actually used for
	// this contact, before the velocity split. Zero when the pair was skipped,
	// already separated, or tied on both axes.
	Applied Vec2
}

// Restitution returns the minimum-translation correction for the contact's
// current displacement: the shallower axis only, or zero on an exact tie.
func (c Contact) Restitution() Vec2 {
	return minAxis(c.Displacement)
}

// Touches reports whether body index k is a member of the contact.
func (c Contact) Touches(k int) bool {
	return c.I == k || c.J == k
}

// Other returns the member of the contact that is not k, and false if k is
// not a member.
func (c Contact) Other(k int) (int, bool) {
	switch k {
	case c.I:
		return c.J, true
	case c.J:
		return c.I, true
	}
	return 0, false
}

// minAxis keeps the component with the smaller magnitude and drops the other.
func minAxis(d Vec2) Vec2 {
	ax, ay := math.Abs(d.X), math.Abs(d.Y)
	switch {
	case ax < ay:
		return Vec2{X: d.X}
	case ay < ax:
		return Vec2{Y: d.Y}
	default:
		return Zero
	}
}

// speedRatio is the share of a correction body i takes on each axis when
// neither body is fixed: |v_i| / (|v_i| + |v_j|), 0.5 when both are still, and
// 1 whenever the share would be exactly 0 so a resting body never pins a
// moving one in place.
func speedRatio(vi, vj Vec2) Vec2 {
	return Vec2{
		X: axisRatio(math.Abs(vi.X), math.Abs(vj.X)),
		Y: axisRatio(math.Abs(vi.Y), math.Abs(vj.Y)),
	}
}

func axisRatio(si, sj float64) float64 {
	sum := si + sj
	if sum == 0 {
		return 0.5
	}
	r := si / sum
	if r == 0 {
		return 1
	}
	return r
}
