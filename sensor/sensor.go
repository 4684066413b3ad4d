// Package sensor polls world-geometry queries each physics step and publishes
// the boolean/positional facts state guards read: grounded, wall, ledge,
// ladder reachability.
package sensor

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/grotto/world"
)

// Config holds the probe offsets, all expressed for positive (rightward)
// facing; x offsets are mirrored by the current facing.
type Config struct {
	GroundBoxOffset cp.Vector
	GroundBoxSize   cp.Vector

	LadderUpOffset   cp.Vector
	LadderDownOffset cp.Vector
	LadderRadius     float64

	LedgeRayOffset cp.Vector
	LedgeRayLength float64

	WallTopOffset    cp.Vector
	WallBottomOffset cp.Vector
	WallRayLength    float64
}

// Sensor recomputes its facts on every Refresh. States read the fact fields
// but never write them.
type Sensor struct {
	cfg      Config
	world    world.Queries
	position func() cp.Vector
	facing   func() float64 // +1 or -1

	Grounded      bool
	WallDetected  bool
	LedgeDetected bool
	LedgePoint    cp.Vector
	LadderUp      *world.Ladder
	LadderDown    *world.Ladder
}

func New(cfg Config, w world.Queries, position func() cp.Vector, facing func() float64) *Sensor {
	return &Sensor{cfg: cfg, world: w, position: position, facing: facing}
}

func (s *Sensor) CanLadderUp() bool   { return s.LadderUp != nil }
func (s *Sensor) CanLadderDown() bool { return s.LadderDown != nil }

// Refresh recomputes every fact from the current body position and facing.
// Must run before the active state's physics hook each step.
func (s *Sensor) Refresh() {
	pos := s.position()
	facing := s.facing()

	s.Grounded = s.world.BoxOverlap(pos.Add(s.cfg.GroundBoxOffset), s.cfg.GroundBoxSize)

	s.LadderUp, _ = s.world.LadderOverlap(pos.Add(s.cfg.LadderUpOffset), s.cfg.LadderRadius)
	s.LadderDown, _ = s.world.LadderOverlap(pos.Add(s.cfg.LadderDownOffset), s.cfg.LadderRadius)

	s.refreshLedge(pos, facing)
	s.refreshWall(pos, facing)
}

// A ledge registers only when the downward ray hits and an upward ray from
// the same origin does not; a flat wall hits both and is rejected.
func (s *Sensor) refreshLedge(pos cp.Vector, facing float64) {
	origin := pos.Add(mirror(s.cfg.LedgeRayOffset, facing))
	down, hitDown := s.world.Raycast(origin, cp.Vector{X: 0, Y: 1}, s.cfg.LedgeRayLength)
	_, hitUp := s.world.Raycast(origin, cp.Vector{X: 0, Y: -1}, s.cfg.LedgeRayLength)

	s.LedgeDetected = hitDown && !hitUp
	if s.LedgeDetected {
		s.LedgePoint = down.Point
	} else {
		s.LedgePoint = cp.Vector{}
	}
}

// A wall needs both forward rays to hit; a single hit is a step or platform
// edge, not a wall.
func (s *Sensor) refreshWall(pos cp.Vector, facing float64) {
	forward := cp.Vector{X: facing, Y: 0}
	_, hitTop := s.world.Raycast(pos.Add(mirror(s.cfg.WallTopOffset, facing)), forward, s.cfg.WallRayLength)
	_, hitBottom := s.world.Raycast(pos.Add(mirror(s.cfg.WallBottomOffset, facing)), forward, s.cfg.WallRayLength)
	s.WallDetected = hitTop && hitBottom
}

func mirror(v cp.Vector, facing float64) cp.Vector {
	return cp.Vector{X: v.X * facing, Y: v.Y}
}
