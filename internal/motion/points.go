// Package motion integrates point kinematics one fixed step at a time.
package motion

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/paddles/internal/collision"
)

// Points holds positions, velocities and accelerations in parallel slices.
// Each Update adds acceleration to velocity, then velocity to position.
type Points struct {
	positions     []collision.Vec2
	velocities    []collision.Vec2
	accelerations []collision.Vec2
}

// NewPoints creates an empty integrator.
func NewPoints() *Points {
	return &Points{}
}

// Add appends a point and returns its index.
func (p *Points) Add(pos, vel, acc collision.Vec2) int {
	p.positions = append(p.positions, pos)
	p.velocities = append(p.velocities, vel)
	p.accelerations = append(p.accelerations, acc)
	return len(p.positions) - 1
}

// Update advances every point by one step.
func (p *Points) Update() {
	for i := range p.positions {
		p.velocities[i] = p.velocities[i].Add(p.accelerations[i])
		p.positions[i] = p.positions[i].Add(p.velocities[i])
	}
}

// Len returns the number of points.
func (p *Points) Len() int {
	return len(p.positions)
}

// Remove deletes point i, shifting later points down.
func (p *Points) Remove(i int) {
	p.check(i)
	p.positions = slices.Delete(p.positions, i, i+1)
	p.velocities = slices.Delete(p.velocities, i, i+1)
	p.accelerations = slices.Delete(p.accelerations, i, i+1)
}

// Clear removes every point.
func (p *Points) Clear() {
	p.positions = p.positions[:0]
	p.velocities = p.velocities[:0]
	p.accelerations = p.accelerations[:0]
}

func (p *Points) Position(i int) collision.Vec2 {
	p.check(i)
	return p.positions[i]
}

func (p *Points) Velocity(i int) collision.Vec2 {
	p.check(i)
	return p.velocities[i]
}

func (p *Points) Acceleration(i int) collision.Vec2 {
	p.check(i)
	return p.accelerations[i]
}

func (p *Points) SetPosition(i int, pos collision.Vec2) {
	p.check(i)
	p.positions[i] = pos
}

func (p *Points) SetVelocity(i int, vel collision.Vec2) {
	p.check(i)
	p.velocities[i] = vel
}

func (p *Points) SetAcceleration(i int, acc collision.Vec2) {
	p.check(i)
	p.accelerations[i] = acc
}

func (p *Points) check(i int) {
	if i < 0 || i >= len(p.positions) {
		panic(fmt.Sprintf("motion: point index %d out of range [0,%d)", i, len(p.positions)))
	}
}
