// Package machine implements the character controller: a finite state machine
// over the hero's behavioral states, with transition arbitration, environment
// sensing, and the attack combo resolver.
package machine

// StateID identifies one behavioral state. StateNone is the "no transition"
// sentinel returned by OnUpdate before a state is ready to decide.
type StateID int

const (
	StateNone StateID = iota
	StateIdle
	StateMove
	StateJump
	StateSecondJump
	StateFall
	StateLand
	StateCrouch
	StateLadderClimb
	StateLedgeHang
	StateLedgeClimb
	StateWallSlide
	StateAttack
	StateHurt
	StateDie
)

func (s StateID) String() string {
	switch s {
	case StateNone:
		return "none"
	case StateIdle:
		return "idle"
	case StateMove:
		return "move"
	case StateJump:
		return "jump"
	case StateSecondJump:
		return "second_jump"
	case StateFall:
		return "fall"
	case StateLand:
		return "land"
	case StateCrouch:
		return "crouch"
	case StateLadderClimb:
		return "ladder_climb"
	case StateLedgeHang:
		return "ledge_hang"
	case StateLedgeClimb:
		return "ledge_climb"
	case StateWallSlide:
		return "wall_slide"
	case StateAttack:
		return "attack"
	case StateHurt:
		return "hurt"
	case StateDie:
		return "die"
	}
	return "unknown"
}

// Workflow is the contract every state implements. States are constructed once
// at machine initialization and reused across activations.
//
// CanExecute is evaluated at the moment a transition into the state is
// requested, not continuously. OnUpdate returns the state it wants to move to,
// its own ID to stay, or StateNone before its first OnFixedUpdate has run:
// a state must never request an exit off sensor facts computed before its own
// physics step.
type Workflow interface {
	ID() StateID
	CanExecute() bool
	OnEnter(params ...any)
	OnExit()
	OnUpdate() StateID
	OnFixedUpdate()
	Reset()
}

// base carries the per-state internals shared by every workflow: the phase
// counter sequencing multi-stage behavior and the fixed-update latch backing
// the OnUpdate no-op rule.
type base struct {
	m       *Machine
	phase   int
	stepped bool
}

// enter must be called at the top of every OnEnter.
func (b *base) enter() {
	b.phase = 0
	b.stepped = false
}

// step must be called by every OnFixedUpdate override.
func (b *base) step() { b.stepped = true }

// ready reports whether at least one fixed update ran since entry.
func (b *base) ready() bool { return b.stepped }

func (b *base) OnExit() {}
func (b *base) OnFixedUpdate() { b.stepped = true }
func (b *base) Reset() { b.phase = 0 }
