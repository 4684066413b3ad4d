package machine

// jumpWorkflow launches off the ground or off a ladder, ledge, or wall.
type jumpWorkflow struct{ base }

func (s *jumpWorkflow) ID() StateID { return StateJump }

func (s *jumpWorkflow) CanExecute() bool {
	if s.m.hasJumped {
		return false
	}
	switch s.m.State() {
	case StateIdle, StateMove:
		return s.m.sensor.Grounded
	case StateLadderClimb, StateLedgeHang, StateWallSlide:
		return true
	}
	return false
}

func (s *jumpWorkflow) OnEnter(params ...any) {
	s.enter()
	s.m.hasJumped = true
	s.m.SetMovable(true)
	s.m.SetDirectionChangeable(true)
	s.m.move.Y = -s.m.cfg.JumpForce
	s.m.anim.Play("jump")
}

func (s *jumpWorkflow) OnFixedUpdate() {
	s.step()
	s.m.applyGravity()
}

func (s *jumpWorkflow) OnUpdate() StateID {
	if !s.ready() {
		return StateNone
	}
	if s.m.sensor.LedgeDetected {
		return StateLedgeHang
	}
	if s.m.move.Y >= 0 {
		if s.m.sensor.Grounded {
			return StateIdle
		}
		return StateFall
	}
	return StateJump
}

type secondJumpWorkflow struct{ base }

func (s *secondJumpWorkflow) ID() StateID { return StateSecondJump }

func (s *secondJumpWorkflow) CanExecute() bool {
	if s.m.hasSecondJumped {
		return false
	}
	if s.m.sensor.Grounded {
		return false
	}
	switch s.m.State() {
	case StateJump, StateFall:
		return true
	}
	return false
}

func (s *secondJumpWorkflow) OnEnter(params ...any) {
	s.enter()
	s.m.hasSecondJumped = true
	s.m.move.Y = -s.m.cfg.SecondJumpForce
	s.m.anim.Play("second_jump")
}

func (s *secondJumpWorkflow) OnFixedUpdate() {
	s.step()
	s.m.applyGravity()
}

func (s *secondJumpWorkflow) OnUpdate() StateID {
	if !s.ready() {
		return StateNone
	}
	if s.m.sensor.LedgeDetected {
		return StateLedgeHang
	}
	if s.m.move.Y >= 0 {
		if s.m.sensor.Grounded {
			return StateIdle
		}
		return StateFall
	}
	return StateSecondJump
}

// fallWorkflow tracks the vertical drop since entry; on touchdown a short
// drop returns to idle, anything past the landing threshold plays out the
// land recovery first.
type fallWorkflow struct {
	base
	startY float64
}

func (s *fallWorkflow) ID() StateID      { return StateFall }
func (s *fallWorkflow) CanExecute() bool { return true }

func (s *fallWorkflow) OnEnter(params ...any) {
	s.enter()
	s.startY = s.m.body.Position().Y
	s.m.SetMovable(true)
	s.m.SetDirectionChangeable(true)
	if s.m.move.Y < 0 {
		s.m.move.Y = 0
	}
	s.m.anim.Play("fall")
}

func (s *fallWorkflow) OnFixedUpdate() {
	s.step()
	s.m.applyGravity()
}

func (s *fallWorkflow) OnUpdate() StateID {
	if !s.ready() {
		return StateNone
	}
	if s.m.sensor.Grounded {
		if s.m.body.Position().Y-s.startY < s.m.cfg.LandingThreshold {
			return StateIdle
		}
		return StateLand
	}
	if s.m.sensor.LedgeDetected {
		return StateLedgeHang
	}
	if s.m.sensor.WallDetected {
		return StateWallSlide
	}
	return StateFall
}

// landWorkflow plays the landing recovery; movement stays locked until the
// clip finishes.
type landWorkflow struct{ base }

func (s *landWorkflow) ID() StateID      { return StateLand }
func (s *landWorkflow) CanExecute() bool { return true }

func (s *landWorkflow) OnEnter(params ...any) {
	s.enter()
	s.m.SetMovable(false)
	s.m.move.X = 0
	s.m.move.Y = 0
	s.m.anim.Play("land")
}

func (s *landWorkflow) OnExit() {
	s.m.SetMovable(true)
}

func (s *landWorkflow) OnUpdate() StateID {
	if !s.ready() {
		return StateNone
	}
	if s.m.anim.NormalizedTime() >= 1 {
		return StateIdle
	}
	return StateLand
}
