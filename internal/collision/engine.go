package collision

import (
	"cmp"
	"fmt"
	"slices"
)

// Meta classifies a body.
type Meta[ID comparable] struct {
	// Solid bodies take part in restitution. Non-solid bodies still report
	// contacts but never push or get pushed.
	Solid bool
	// Fixed bodies are never moved by restitution, though they still push
	// unfixed solid bodies out of themselves.
	Fixed bool
	// ID is the caller's identity for the body. The engine only stores it.
	ID ID
}

// Body is a copy of one body's state.
type Body[ID comparable] struct {
	Center     Vec2
	HalfExtent Vec2
	Velocity   Vec2
	Meta[ID]
}

// Min returns the top-left corner of the body's box.
func (b Body[ID]) Min() Vec2 {
	return b.Center.Sub(b.HalfExtent)
}

// Size returns the full width and height of the body's box.
func (b Body[ID]) Size() Vec2 {
	return b.HalfExtent.Scale(2)
}

// Stats summarizes the last Update.
type Stats struct {
	Bodies    int // bodies in the store
	Contacts  int // overlapping pairs found
	Corrected int // contacts that moved at least one body
}

// Engine owns a set of bodies and resolves overlaps between them.
//
// Bodies live in parallel slices addressed by index. Indices are not stable:
// RemoveBody shifts every later body down by one. Callers that need to find a
// body again on a later step should go through its ID (Find) or a Handle.
//
// An Engine is not safe for concurrent use.
type Engine[ID comparable] struct {
	centers     []Vec2
	halfExtents []Vec2
	velocities  []Vec2
	metadata    []Meta[ID]
	stamps      []uint64 // generation per slot, see Handle

	nextStamp uint64
	contacts  []Contact
	stats     Stats
	visiting  bool
}

// New creates an empty engine.
func New[ID comparable]() *Engine[ID] {
	return &Engine[ID]{}
}

// Len returns the number of bodies.
func (e *Engine[ID]) Len() int {
	return len(e.centers)
}

// Update detects this step's contacts, orders them deepest first and pushes
// overlapping solid bodies apart. Centers are corrected in place.
//
// Contacts from the previous call are discarded.
func (e *Engine[ID]) Update() {
	e.ensureIdle("Update")

	e.contacts = e.contacts[:0]
	e.detect()
	e.order()
	corrected := e.restitute()

	e.stats = Stats{
		Bodies:    len(e.centers),
		Contacts:  len(e.contacts),
		Corrected: corrected,
	}
}

// detect fills e.contacts with every overlapping pair in store order.
func (e *Engine[ID]) detect() {
	n := len(e.centers)
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			if !Overlaps(e.centers[a], e.halfExtents[a], e.centers[b], e.halfExtents[b]) {
				continue
			}

			i, j := a, b
			if e.metadata[i].Fixed && !e.metadata[j].Fixed {
				i, j = j, i
			}

			var disp Vec2
			if e.resolvable(i, j) {
				disp = Penetration(e.centers[i], e.halfExtents[i], e.centers[j], e.halfExtents[j])
			}
			e.contacts = append(e.contacts, Contact{I: i, J: j, Displacement: disp})
		}
	}
}

// order sorts contacts by descending squared penetration. The sort is stable:
// equal depths keep detection order, which is lexicographic over the pair's
// store indices.
func (e *Engine[ID]) order() {
	slices.SortStableFunc(e.contacts, func(a, b Contact) int {
		return cmp.Compare(b.Displacement.LengthSquared(), a.Displacement.LengthSquared())
	})
}

// restitute walks the ordered contacts once and separates solid pairs along
// their shallower axis. Returns how many contacts produced a correction.
func (e *Engine[ID]) restitute() int {
	corrected := 0
	for k := range e.contacts {
		c := &e.contacts[k]
		i, j := c.I, c.J
		if !e.resolvable(i, j) {
			continue
		}

		// An earlier correction this pass may already have separated the pair.
		if !Overlaps(e.centers[i], e.halfExtents[i], e.centers[j], e.halfExtents[j]) {
			continue
		}
		c.Displacement = Penetration(e.centers[i], e.halfExtents[i], e.centers[j], e.halfExtents[j])

		corr := c.Restitution()
		if corr == Zero {
			continue
		}
		c.Applied = corr

		ratio := One
		if !e.metadata[j].Fixed {
			ratio = speedRatio(e.velocities[i], e.velocities[j])
		}
		e.centers[i] = e.centers[i].Add(corr.Mul(ratio))
		e.centers[j] = e.centers[j].Sub(corr.Mul(One.Sub(ratio)))
		corrected++
	}
	return corrected
}

// resolvable reports whether the pair (i first) takes part in restitution.
func (e *Engine[ID]) resolvable(i, j int) bool {
	return e.metadata[i].Solid && e.metadata[j].Solid && !e.metadata[i].Fixed
}

// Stats returns counters from the last Update.
func (e *Engine[ID]) Stats() Stats {
	return e.stats
}

// AddBody appends a body and returns its index and a handle to it.
func (e *Engine[ID]) AddBody(center, halfExtent, vel Vec2, solid, fixed bool, id ID) (int, Handle) {
	e.ensureIdle("AddBody")

	e.centers = append(e.centers, center)
	e.halfExtents = append(e.halfExtents, halfExtent.Abs())
	e.velocities = append(e.velocities, vel)
	e.metadata = append(e.metadata, Meta[ID]{Solid: solid, Fixed: fixed, ID: id})
	e.stamps = append(e.stamps, e.stamp())

	i := len(e.centers) - 1
	return i, Handle{index: i, stamp: e.stamps[i]}
}

// AddBodyXYWH appends a body given its top-left corner and full size.
func (e *Engine[ID]) AddBodyXYWH(pos, size, vel Vec2, solid, fixed bool, id ID) (int, Handle) {
	half := size.Scale(0.5)
	return e.AddBody(pos.Add(half), half, vel, solid, fixed, id)
}

// RemoveBody deletes body i. Every body after it moves down one index, and
// handles to those bodies become stale.
func (e *Engine[ID]) RemoveBody(i int) {
	e.ensureIdle("RemoveBody")
	e.mustIndex(i)

	e.centers = slices.Delete(e.centers, i, i+1)
	e.halfExtents = slices.Delete(e.halfExtents, i, i+1)
	e.velocities = slices.Delete(e.velocities, i, i+1)
	e.metadata = slices.Delete(e.metadata, i, i+1)
	e.stamps = slices.Delete(e.stamps, i, i+1)

	for k := i; k < len(e.stamps); k++ {
		e.stamps[k] = e.stamp()
	}
}

// Clear removes every body and the last step's contacts.
func (e *Engine[ID]) Clear() {
	e.ensureIdle("Clear")

	e.centers = e.centers[:0]
	e.halfExtents = e.halfExtents[:0]
	e.velocities = e.velocities[:0]
	e.metadata = e.metadata[:0]
	e.stamps = e.stamps[:0]
	e.contacts = e.contacts[:0]
	e.stats = Stats{}
}

// SetCenter moves body i so its center is c.
func (e *Engine[ID]) SetCenter(i int, c Vec2) {
	e.ensureIdle("SetCenter")
	e.mustIndex(i)
	e.centers[i] = c
}

// SetPosition moves body i so its top-left corner is pos.
func (e *Engine[ID]) SetPosition(i int, pos Vec2) {
	e.ensureIdle("SetPosition")
	e.mustIndex(i)
	e.centers[i] = pos.Add(e.halfExtents[i])
}

// SetHalfExtent resizes body i around its center.
func (e *Engine[ID]) SetHalfExtent(i int, h Vec2) {
	e.ensureIdle("SetHalfExtent")
	e.mustIndex(i)
	e.halfExtents[i] = h.Abs()
}

// SetSize resizes body i to the given full width and height around its center.
func (e *Engine[ID]) SetSize(i int, size Vec2) {
	e.SetHalfExtent(i, size.Scale(0.5))
}

// SetVelocity records body i's velocity for this step. The engine never
// integrates it; velocity only weights how corrections are split.
func (e *Engine[ID]) SetVelocity(i int, v Vec2) {
	e.ensureIdle("SetVelocity")
	e.mustIndex(i)
	e.velocities[i] = v
}

// SetClassification changes whether body i is solid and fixed.
func (e *Engine[ID]) SetClassification(i int, solid, fixed bool) {
	e.ensureIdle("SetClassification")
	e.mustIndex(i)
	e.metadata[i].Solid = solid
	e.metadata[i].Fixed = fixed
}

// SetID replaces body i's external id.
func (e *Engine[ID]) SetID(i int, id ID) {
	e.ensureIdle("SetID")
	e.mustIndex(i)
	e.metadata[i].ID = id
}

// stamp hands out a fresh generation value.
func (e *Engine[ID]) stamp() uint64 {
	e.nextStamp++
	return e.nextStamp
}

func (e *Engine[ID]) mustIndex(i int) {
	if i < 0 || i >= len(e.centers) {
		panic(fmt.Sprintf("collision: body index %d out of range [0,%d)", i, len(e.centers)))
	}
}

func (e *Engine[ID]) ensureIdle(op string) {
	if e.visiting {
		panic(fmt.Sprintf("collision: %s called during Modify", op))
	}
}
