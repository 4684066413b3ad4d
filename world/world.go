package world

import "github.com/jakecoffman/cp"

// Collision categories for shape filters. Every shape added to the space
// belongs to exactly one category.
const (
	LayerGround uint = 1 << iota
	LayerLadder
	LayerEnemy
)

// RayHit is the result of a successful raycast.
type RayHit struct {
	Point  cp.Vector
	Normal cp.Vector
}

// Queries is the world-geometry query surface the controller senses through.
// All positions and sizes are in world units.
type Queries interface {
	// BoxOverlap reports whether any ground geometry overlaps the axis-aligned
	// box centered at center.
	BoxOverlap(center, size cp.Vector) bool
	// LadderOverlap returns the ladder whose grab region contains the probe
	// circle, if any. At most one ladder is returned.
	LadderOverlap(center cp.Vector, radius float64) (*Ladder, bool)
	// Raycast casts against ground geometry and returns the nearest hit.
	Raycast(origin, dir cp.Vector, maxDist float64) (RayHit, bool)
	// BoxCastTargets sweeps a box forward and returns up to max targets on the
	// given layer, ordered nearest first.
	BoxCastTargets(origin, size, dir cp.Vector, dist float64, layer uint, max int) []Target
}

// Body is the physics body the controller drives. SetKinematic switches the
// body between fully simulated and externally driven modes; states that take
// over positioning (ladder, ledge) must restore the previous mode on exit.
type Body interface {
	Position() cp.Vector
	SetPosition(p cp.Vector)
	Velocity() cp.Vector
	SetVelocity(v cp.Vector)
	ApplyImpulse(impulse cp.Vector)
	Kinematic() bool
	SetKinematic(kinematic bool)
	// ResizeCollider scales the collider height by scale (1 = full height).
	ResizeCollider(scale float64)
}

// Target is anything an attack sweep can hit.
type Target interface {
	Position() cp.Vector
	ApplyDamage(amount float64)
	ApplyKnockback(impulse cp.Vector)
}

// Ladder exposes the four climb waypoints plus the top anchor the controller
// snaps to when exiting above the upper bound.
type Ladder struct {
	UpStart   cp.Vector
	UpEnd     cp.Vector
	DownStart cp.Vector
	DownEnd   cp.Vector
	Top       cp.Vector
}

// UpperBound returns the smallest (highest, y-down) climbable y.
func (l *Ladder) UpperBound() float64 {
	if l.UpEnd.Y < l.DownEnd.Y {
		return l.UpEnd.Y
	}
	return l.DownEnd.Y
}

// LowerBound returns the largest (lowest, y-down) climbable y.
func (l *Ladder) LowerBound() float64 {
	if l.DownStart.Y > l.UpStart.Y {
		return l.DownStart.Y
	}
	return l.UpStart.Y
}
