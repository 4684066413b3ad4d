package machine

import "github.com/jakecoffman/cp"

// hurtWorkflow plays the flinch. An optional cp.Vector param is the knockback
// impulse; the hero is invincible for the duration of the clip.
type hurtWorkflow struct{ base }

func (s *hurtWorkflow) ID() StateID { return StateHurt }

func (s *hurtWorkflow) CanExecute() bool {
	switch s.m.State() {
	case StateIdle, StateMove, StateJump, StateSecondJump, StateFall,
		StateLand, StateCrouch, StateLadderClimb, StateLedgeHang, StateWallSlide:
		return true
	}
	return false
}

func (s *hurtWorkflow) OnEnter(params ...any) {
	s.enter()
	s.m.SetMovable(false)
	s.m.SetDirectionChangeable(false)
	s.m.hp.Invincible = true
	if len(params) > 0 {
		if kb, ok := params[0].(cp.Vector); ok {
			s.m.Knockback(kb)
		}
	}
	s.m.anim.Play("hurt")
}

func (s *hurtWorkflow) OnExit() {
	s.m.hp.Invincible = false
	s.m.SetMovable(true)
	s.m.SetDirectionChangeable(true)
}

func (s *hurtWorkflow) OnFixedUpdate() {
	s.step()
	if !s.m.sensor.Grounded {
		s.m.applyGravity()
	} else if s.m.move.Y > 0 {
		s.m.move.Y = 0
	}
	// bleed off the knockback
	s.m.move.X *= 0.9
}

func (s *hurtWorkflow) OnUpdate() StateID {
	if !s.ready() {
		return StateNone
	}
	if s.m.anim.NormalizedTime() >= 1 {
		return StateIdle
	}
	return StateHurt
}

// dieWorkflow is terminal: once entered the machine rejects every further
// transition, and the death observers fire when the clip runs out.
type dieWorkflow struct {
	base
	notified bool
}

func (s *dieWorkflow) ID() StateID      { return StateDie }
func (s *dieWorkflow) CanExecute() bool { return true }

func (s *dieWorkflow) Reset() {
	s.phase = 0
	s.notified = false
}

func (s *dieWorkflow) OnEnter(params ...any) {
	s.enter()
	s.notified = false
	s.m.SetMovable(false)
	s.m.SetDirectionChangeable(false)
	s.m.hp.Invincible = true
	s.m.move.X = 0
	s.m.move.Y = 0
	s.m.anim.Play("die")
}

func (s *dieWorkflow) OnUpdate() StateID {
	if !s.ready() {
		return StateNone
	}
	if !s.notified && s.m.anim.NormalizedTime() >= 1 {
		s.notified = true
		s.m.emitDeath()
	}
	return StateDie
}
