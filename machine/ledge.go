package machine

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Ledge hang phases.
const (
	ledgeCatching = iota
	ledgeHanging
)

// ledgeHangWorkflow freezes the hero on a sensed ledge. It never requests an
// exit itself: leaving is an explicit LedgeClimb (or Jump) request.
type ledgeHangWorkflow struct {
	base
	point        cp.Vector
	wasKinematic bool
}

func (s *ledgeHangWorkflow) ID() StateID { return StateLedgeHang }

func (s *ledgeHangWorkflow) CanExecute() bool {
	if !s.m.sensor.LedgeDetected {
		return false
	}
	switch s.m.State() {
	case StateJump, StateSecondJump, StateFall:
		return true
	}
	return false
}

func (s *ledgeHangWorkflow) OnEnter(params ...any) {
	s.enter()
	s.point = s.m.sensor.LedgePoint

	s.wasKinematic = s.m.body.Kinematic()
	s.m.body.SetKinematic(true)
	s.m.body.SetPosition(s.point.Add(mirror(s.m.cfg.LedgeHangOffset, s.m.facing())))

	s.m.SetMovable(false)
	s.m.SetDirectionChangeable(false)
	s.m.move.X = 0
	s.m.move.Y = 0
	s.m.anim.Play("ledge_catch")
}

func (s *ledgeHangWorkflow) OnExit() {
	s.m.body.SetKinematic(s.wasKinematic)
	s.m.SetMovable(true)
	s.m.SetDirectionChangeable(true)
}

func (s *ledgeHangWorkflow) OnUpdate() StateID {
	if !s.ready() {
		return StateNone
	}
	if s.phase == ledgeCatching && s.m.anim.NormalizedTime() >= 1 {
		s.m.anim.Play("ledge_hang")
		s.phase = ledgeHanging
	}
	return StateLedgeHang
}

// Ledge climb phases.
const (
	climbVertical = iota
	climbHorizontal
	climbDone
)

// ledgeClimbWorkflow pulls the hero up over the held ledge: a vertical rise
// then a horizontal slide onto the platform, the two tween durations split
// from the clip length by distance ratio.
type ledgeClimbWorkflow struct {
	base
	hang *ledgeHangWorkflow

	start  cp.Vector
	target cp.Vector
	tweenY *gween.Tween
	tweenX *gween.Tween
}

func (s *ledgeClimbWorkflow) ID() StateID { return StateLedgeClimb }

func (s *ledgeClimbWorkflow) CanExecute() bool {
	return s.m.State() == StateLedgeHang
}

func (s *ledgeClimbWorkflow) OnEnter(params ...any) {
	s.enter()
	s.m.body.SetKinematic(true)
	s.m.SetMovable(false)
	s.m.SetDirectionChangeable(false)
	s.m.move.X = 0
	s.m.move.Y = 0
	s.m.anim.Play("ledge_climb")

	s.start = s.m.body.Position()
	s.target = s.hang.point.Add(mirror(s.m.cfg.LedgeStandOffset, s.m.facing()))

	vd := math.Abs(s.target.Y - s.start.Y)
	hd := math.Abs(s.target.X - s.start.X)
	total := s.m.anim.ClipLength()
	if vd+hd == 0 || total <= 0 {
		s.phase = climbDone
		return
	}
	durV := total * vd / (vd + hd)
	durH := total - durV
	s.tweenY = gween.New(float32(s.start.Y), float32(s.target.Y), float32(durV), ease.Linear)
	s.tweenX = gween.New(float32(s.start.X), float32(s.target.X), float32(durH), ease.Linear)
}

func (s *ledgeClimbWorkflow) OnExit() {
	s.m.body.SetKinematic(s.hang.wasKinematic)
	s.m.SetMovable(true)
	s.m.SetDirectionChangeable(true)
	s.tweenY = nil
	s.tweenX = nil
}

func (s *ledgeClimbWorkflow) OnFixedUpdate() {
	s.step()
	dt := float32(s.m.cfg.FixedDelta)
	switch s.phase {
	case climbVertical:
		y, done := s.tweenY.Update(dt)
		s.m.body.SetPosition(cp.Vector{X: s.start.X, Y: float64(y)})
		if done {
			s.phase = climbHorizontal
		}
	case climbHorizontal:
		x, done := s.tweenX.Update(dt)
		s.m.body.SetPosition(cp.Vector{X: float64(x), Y: s.target.Y})
		if done {
			s.phase = climbDone
		}
	}
}

func (s *ledgeClimbWorkflow) OnUpdate() StateID {
	if !s.ready() {
		return StateNone
	}
	if s.phase == climbDone {
		return StateIdle
	}
	return StateLedgeClimb
}
