// Package agent holds the kinematic state of a single arena agent and its per-tick integration.
package agent

import (
	"fmt"
	"math"

	"github.com/lao-tseu-is-alive/go-agent-arena/pkg/arena"
	"github.com/lao-tseu-is-alive/go-agent-arena/pkg/geometry"
)

const (
	DefaultVMax     = 1.0
	DefaultVelocity = 1.0
	DefaultDt       = 0.05
)

// TickContext carries the simulation-wide values one Update needs.
type TickContext struct {
	Dt     float64
	Bounds arena.Bounds
	Mode   arena.Mode
}

// Agent is one circular entity. Pos is the upper-left corner of its bounding
// circle, so the center is Pos + Radius on both axes.
type Agent struct {
	ID          int64
	Pos         geometry.Vector2D
	Radius      float64
	Orientation float64 // radians in [0, 2Pi), counter-clockwise with +y up
	Velocity    float64 // signed speed along Orientation, |Velocity| <= VMax after Update
	VMax        float64

	// Dv and Dtheta are rates applied on every Update; they are never reset here.
	Dv     float64
	Dtheta float64

	// Vx and Vy are derived on every Update.
	Vx float64
	Vy float64

	// Selected freezes the agent while a collaborator drags it.
	Selected bool
}

// New creates an agent cruising at DefaultVelocity with the default speed cap.
func New(id int64, radius float64, pos geometry.Vector2D, orientation float64) *Agent {
	return &Agent{
		ID:          id,
		Pos:         pos,
		Radius:      radius,
		Orientation: geometry.NormalizeAngle(orientation),
		Velocity:    DefaultVelocity,
		VMax:        DefaultVMax,
	}
}

func (a *Agent) String() string {
	return fmt.Sprintf("agent#%d pos=%s o=%.3f v=%.3f", a.ID, a.Pos, a.Orientation, a.Velocity)
}

// Center returns the center of the bounding circle.
func (a *Agent) Center() geometry.Vector2D {
	return a.Pos.Offset(a.Radius)
}

// Update integrates one tick. Selected agents are left untouched.
func (a *Agent) Update(tc TickContext) {
	if a.Selected {
		return
	}
	a.Orientation = geometry.NormalizeAngle(a.Orientation + tc.Dt*a.Dtheta)
	a.Velocity = ClampVelocity(a.Velocity+tc.Dt*a.Dv, a.VMax)

	a.Vx = a.Velocity * math.Cos(a.Orientation)
	a.Vy = a.Velocity * math.Sin(a.Orientation)
	a.Pos.X += a.Vx
	a.Pos.Y -= a.Vy

	a.Pos, a.Orientation = arena.Apply(a.Pos, a.Radius, tc.Bounds, tc.Mode, a.Orientation)
}

// ClampVelocity hard-sets v to vmax when its magnitude exceeds the cap.
// The sign is not carried over, so an overspeed in reverse becomes +vmax.
func ClampVelocity(v, vmax float64) float64 {
	if math.Abs(v) > vmax {
		return vmax
	}
	return v
}

// Nudge rotates the agent by delta and renormalizes the orientation.
func (a *Agent) Nudge(delta float64) {
	a.Orientation = geometry.NormalizeAngle(a.Orientation + delta)
}

// MoveTo places the center of the agent at c.
func (a *Agent) MoveTo(c geometry.Vector2D) {
	a.Pos = c.Offset(-a.Radius)
}

// Select sets the drag flag.
func (a *Agent) Select(selected bool) {
	a.Selected = selected
}

// Contains reports whether p falls inside the agent's bounding square,
// left and top edges inclusive.
func (a *Agent) Contains(p geometry.Vector2D) bool {
	size := 2 * a.Radius
	return p.X >= a.Pos.X && p.X < a.Pos.X+size && p.Y >= a.Pos.Y && p.Y < a.Pos.Y+size
}

// Overspeed reports whether the agent is above its cap, which only happens for
// the tick following a collision.
func (a *Agent) Overspeed() bool {
	return math.Abs(a.Velocity) > a.VMax
}
