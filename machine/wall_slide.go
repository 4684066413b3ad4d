package machine

// wallSlideWorkflow slows the descent while a wall is sensed ahead. Jumping
// off the wall is an external Jump request; losing the wall drops back
// through Idle arbitration.
type wallSlideWorkflow struct{ base }

func (s *wallSlideWorkflow) ID() StateID { return StateWallSlide }

func (s *wallSlideWorkflow) CanExecute() bool {
	return s.m.sensor.WallDetected && s.m.State() == StateFall
}

func (s *wallSlideWorkflow) OnEnter(params ...any) {
	s.enter()
	s.m.SetMovable(false)
	s.m.move.X = 0
	s.m.move.Y = s.m.cfg.WallSlideSpeed
	s.m.anim.Play("wall_slide")
}

func (s *wallSlideWorkflow) OnExit() {
	s.m.SetMovable(true)
}

func (s *wallSlideWorkflow) OnFixedUpdate() {
	s.step()
	s.m.move.Y = s.m.cfg.WallSlideSpeed
}

func (s *wallSlideWorkflow) OnUpdate() StateID {
	if !s.ready() {
		return StateNone
	}
	if !s.m.sensor.WallDetected || s.m.sensor.Grounded {
		return StateIdle
	}
	return StateWallSlide
}
