package machine

import (
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/grotto/world"
)

// attackWorkflow runs the combo resolver. Targets are swept once on enter;
// damage lands later, when the animation collaborator fires the clip-authored
// hit event through Machine.NotifyAttackHit.
type attackWorkflow struct {
	base
	combo    int
	lastExit float64
	hasHit   bool
	settings AttackSettings
	targets  []world.Target
}

func (s *attackWorkflow) ID() StateID { return StateAttack }

// CanExecute gates chaining: the first swing is always open, every further
// swing requires the previous one to have connected. An idle gap past the
// reset window clears the combo before the check.
func (s *attackWorkflow) CanExecute() bool {
	if s.combo > 0 && s.m.clock()-s.lastExit > s.m.cfg.ComboResetTime {
		s.combo = 0
		s.hasHit = false
	}
	if s.combo >= s.m.cfg.ComboMax {
		return false
	}
	if s.combo > 0 && !s.hasHit {
		return false
	}
	switch s.m.State() {
	case StateIdle, StateMove, StateJump, StateSecondJump, StateFall:
		return true
	}
	return false
}

func (s *attackWorkflow) OnEnter(params ...any) {
	s.enter()
	s.settings = s.m.cfg.Attacks[s.combo%len(s.m.cfg.Attacks)]

	facing := s.m.facing()
	origin := s.m.body.Position().Add(mirror(s.settings.Offset, facing))
	s.targets = s.m.queries.BoxCastTargets(
		origin,
		s.settings.Size,
		cp.Vector{X: facing, Y: 0},
		s.settings.Distance,
		s.settings.TargetLayer,
		s.settings.TargetMax,
	)
	s.hasHit = false

	s.m.SetMovable(false)
	s.m.SetDirectionChangeable(false)
	s.m.move.X = 0

	s.m.anim.Play(fmt.Sprintf("attack_%d", s.combo))
	s.combo++
}

func (s *attackWorkflow) Reset() {
	s.phase = 0
	s.combo = 0
	s.hasHit = false
	s.lastExit = 0
	s.targets = nil
}

func (s *attackWorkflow) OnExit() {
	s.lastExit = s.m.clock()
	s.m.SetMovable(true)
	s.m.SetDirectionChangeable(true)
}

func (s *attackWorkflow) OnUpdate() StateID {
	if !s.ready() {
		return StateNone
	}
	if s.m.anim.NormalizedTime() >= 1 {
		return StateIdle
	}
	return StateAttack
}

// resolveHit applies the swing to every swept target: a uniform damage roll
// scaled by the combo step, a flat horizontal knockback by facing, and a
// damage popup. An empty target list is a whiffed swing, not an error.
func (s *attackWorkflow) resolveHit() {
	facing := s.m.facing()
	for _, t := range s.targets {
		lo, hi := s.m.cfg.AttackForceMin, s.m.cfg.AttackForceMax
		damage := (lo + s.m.rng.Float64()*(hi-lo)) * s.settings.DamageScale
		t.ApplyDamage(damage)
		t.ApplyKnockback(cp.Vector{X: facing * s.m.cfg.KnockbackForce, Y: 0})
		if s.m.popups != nil {
			s.m.popups.Create(t.Position(), damage, int(s.settings.TargetLayer))
		}
		s.m.emitAttackHit(t, damage)
	}
	s.hasHit = len(s.targets) > 0
}
