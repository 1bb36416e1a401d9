package collision

import "math"

// SidesTouched reports which axis separates bodies i and j: (1,0) when the
// x penetration is the smaller in magnitude, (0,1) for y, and (0,0) when the
// magnitudes are equal.
//
// The answer is derived from the bodies' current boxes and does not require
// them to overlap. Bodies moved since Update, or pushed apart by restitution,
// still name the axis with the smaller penetration magnitude. Use
// Contact.Applied for the correction restitution actually chose.
func (e *Engine[ID]) SidesTouched(i, j int) Vec2 {
	e.mustIndex(i)
	e.mustIndex(j)

	d := Penetration(e.centers[i], e.halfExtents[i], e.centers[j], e.halfExtents[j])
	ax, ay := math.Abs(d.X), math.Abs(d.Y)
	switch {
	case ax < ay:
		return Vec2{X: 1}
	case ay < ax:
		return Vec2{Y: 1}
	default:
		return Zero
	}
}

// Events returns a copy of the contacts found by the last Update, deepest
// first, with post-restitution displacements.
func (e *Engine[ID]) Events() []Contact {
	out := make([]Contact, len(e.contacts))
	copy(out, e.contacts)
	return out
}

// IDs returns the external ids of both members of c.
func (e *Engine[ID]) IDs(c Contact) (ID, ID) {
	e.mustIndex(c.I)
	e.mustIndex(c.J)
	return e.metadata[c.I].ID, e.metadata[c.J].ID
}

// Body returns a copy of body i.
func (e *Engine[ID]) Body(i int) Body[ID] {
	e.mustIndex(i)
	return e.body(i)
}

// Center returns body i's center.
func (e *Engine[ID]) Center(i int) Vec2 {
	e.mustIndex(i)
	return e.centers[i]
}

// Find returns the index of the first body whose id equals id.
func (e *Engine[ID]) Find(id ID) (int, bool) {
	for i, m := range e.metadata {
		if m.ID == id {
			return i, true
		}
	}
	return -1, false
}

// Lookup returns a copy of the first body whose id equals id.
func (e *Engine[ID]) Lookup(id ID) (Body[ID], bool) {
	i, ok := e.Find(id)
	if !ok {
		return Body[ID]{}, false
	}
	return e.body(i), true
}

// Each calls fn for every body in index order until fn returns false.
// It may not be called from inside Modify.
func (e *Engine[ID]) Each(fn func(i int, b Body[ID]) bool) {
	e.ensureIdle("Each")
	for i := range e.centers {
		if !fn(i, e.body(i)) {
			return
		}
	}
}

// Modify calls fn with a mutable copy of every body in index order and writes
// each copy back once fn returns. Iteration stops after the first callback that
// returns false; that body's changes are still kept.
//
// fn must not call any other method that mutates the engine, nor start another
// Modify. Doing so panics.
func (e *Engine[ID]) Modify(fn func(i int, b *Body[ID]) bool) {
	e.ensureIdle("Modify")
	e.visiting = true
	defer func() { e.visiting = false }()

	for i := range e.centers {
		b := e.body(i)
		more := fn(i, &b)
		e.centers[i] = b.Center
		e.halfExtents[i] = b.HalfExtent.Abs()
		e.velocities[i] = b.Velocity
		e.metadata[i] = b.Meta
		if !more {
			return
		}
	}
}

func (e *Engine[ID]) body(i int) Body[ID] {
	return Body[ID]{
		Center:     e.centers[i],
		HalfExtent: e.halfExtents[i],
		Velocity:   e.velocities[i],
		Meta:       e.metadata[i],
	}
}
