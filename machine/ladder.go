package machine

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/grotto/world"
)

// Approach tells the ladder state which end the hero grabbed from.
type Approach int

const (
	ApproachUp Approach = iota
	ApproachDown
)

// ladderWorkflow drives the hero kinematically along a ladder. OnEnter
// expects a *world.Ladder and an Approach in params; anything else is a
// caller bug.
type ladderWorkflow struct {
	base
	ladder       *world.Ladder
	wasKinematic bool
}

func (s *ladderWorkflow) ID() StateID { return StateLadderClimb }

func (s *ladderWorkflow) CanExecute() bool {
	switch s.m.State() {
	case StateIdle, StateMove, StateJump, StateFall, StateSecondJump:
		return true
	}
	return false
}

func (s *ladderWorkflow) OnEnter(params ...any) {
	s.enter()
	if len(params) < 2 {
		panic("machine: ladder climb requires a ladder and an approach")
	}
	ladder, ok := params[0].(*world.Ladder)
	if !ok || ladder == nil {
		panic("machine: ladder climb requires a ladder")
	}
	approach, ok := params[1].(Approach)
	if !ok || (approach != ApproachUp && approach != ApproachDown) {
		panic("machine: ladder approach must be up or down")
	}
	s.ladder = ladder

	s.wasKinematic = s.m.body.Kinematic()
	s.m.body.SetKinematic(true)
	s.m.body.SetPosition(s.snapPoint(approach))

	s.m.SetMovable(false)
	s.m.SetDirectionChangeable(false)
	s.m.move.X = 0
	s.m.move.Y = 0
	s.m.anim.Play("ladder_climb")
}

// snapPoint keeps the current height and aligns x only when the hero is
// already past the approach waypoint; otherwise it snaps fully.
func (s *ladderWorkflow) snapPoint(approach Approach) cp.Vector {
	pos := s.m.body.Position()
	target := s.ladder.UpStart
	if approach == ApproachDown {
		target = s.ladder.DownStart
	}
	past := pos.Y < target.Y
	if approach == ApproachDown {
		past = pos.Y > target.Y
	}
	if past {
		return cp.Vector{X: target.X, Y: pos.Y}
	}
	return target
}

func (s *ladderWorkflow) OnExit() {
	s.m.body.SetKinematic(s.wasKinematic)
	s.m.anim.SetSpeed(1)
	s.m.SetMovable(true)
	s.m.SetDirectionChangeable(true)
	s.m.move.X = 0
	s.m.move.Y = 0
	s.ladder = nil
}

func (s *ladderWorkflow) OnFixedUpdate() {
	s.step()
	axis := s.m.input.AxisY()
	s.m.move.Y = -axis * s.m.cfg.ClimbSpeed
	// The climb clip only advances while actually climbing.
	s.m.anim.SetSpeed(math.Abs(axis))
}

func (s *ladderWorkflow) OnUpdate() StateID {
	if !s.ready() {
		return StateNone
	}
	pos := s.m.body.Position()
	if pos.Y < s.ladder.UpperBound() {
		// Climbed out the top: snap onto the anchor before standing up.
		s.m.body.SetPosition(s.ladder.Top)
		return StateIdle
	}
	if pos.Y > s.ladder.LowerBound() || s.m.sensor.Grounded {
		return StateIdle
	}
	return StateLadderClimb
}
