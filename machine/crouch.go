package machine

// Crouch phases.
const (
	crouchEntering = iota
	crouchSettled
)

// crouchWorkflow ducks the hero: the collider shrinks for the duration and is
// restored on exit. Leaving crouch back to idle is input-driven through the
// arbitration protocol; the state itself only bails out when the floor
// disappears.
type crouchWorkflow struct{ base }

func (s *crouchWorkflow) ID() StateID { return StateCrouch }

func (s *crouchWorkflow) CanExecute() bool {
	if !s.m.sensor.Grounded {
		return false
	}
	switch s.m.State() {
	case StateIdle, StateMove:
		return true
	}
	return false
}

func (s *crouchWorkflow) OnEnter(params ...any) {
	s.enter()
	s.m.SetMovable(false)
	s.m.move.X = 0
	s.m.move.Y = 0
	s.m.body.ResizeCollider(s.m.cfg.CrouchColliderScale)
	s.m.anim.Play("crouch")
}

func (s *crouchWorkflow) OnExit() {
	s.m.body.ResizeCollider(1)
	s.m.SetMovable(true)
}

func (s *crouchWorkflow) OnUpdate() StateID {
	if !s.ready() {
		return StateNone
	}
	switch s.phase {
	case crouchEntering:
		if s.m.anim.NormalizedTime() >= 1 {
			s.m.anim.Play("crouch_idle")
			s.phase = crouchSettled
		}
	case crouchSettled:
		if !s.m.sensor.Grounded {
			return StateFall
		}
	}
	return StateCrouch
}
