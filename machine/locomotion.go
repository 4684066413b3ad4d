package machine

// idleWorkflow is the grounded rest state. Entering it clears both jump
// flags, which is what re-arms jumping after any airborne excursion.
type idleWorkflow struct{ base }

func (s *idleWorkflow) ID() StateID      { return StateIdle }
func (s *idleWorkflow) CanExecute() bool { return true }

func (s *idleWorkflow) OnEnter(params ...any) {
	s.enter()
	s.m.hasJumped = false
	s.m.hasSecondJumped = false
	s.m.SetMovable(true)
	s.m.SetDirectionChangeable(true)
	s.m.move.Y = 0
	s.m.anim.Play("idle")
}

func (s *idleWorkflow) OnFixedUpdate() {
	s.step()
	s.m.move.Y = 0
}

func (s *idleWorkflow) OnUpdate() StateID {
	if !s.ready() {
		return StateNone
	}
	if !s.m.sensor.Grounded {
		return StateFall
	}
	if s.m.input.Axis() != 0 {
		return StateMove
	}
	return StateIdle
}

type moveWorkflow struct{ base }

func (s *moveWorkflow) ID() StateID      { return StateMove }
func (s *moveWorkflow) CanExecute() bool { return true }

func (s *moveWorkflow) OnEnter(params ...any) {
	s.enter()
	s.m.SetMovable(true)
	s.m.SetDirectionChangeable(true)
	s.m.move.Y = 0
	s.m.anim.Play("move")
}

func (s *moveWorkflow) OnFixedUpdate() {
	s.step()
	s.m.move.Y = 0
}

func (s *moveWorkflow) OnUpdate() StateID {
	if !s.ready() {
		return StateNone
	}
	if !s.m.sensor.Grounded {
		return StateFall
	}
	if s.m.input.Axis() == 0 {
		return StateIdle
	}
	return StateMove
}
