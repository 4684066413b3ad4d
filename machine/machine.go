package machine

import (
	"math/rand"
	"time"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/grotto/health"
	"github.com/milk9111/grotto/sensor"
	"github.com/milk9111/grotto/world"
)

// Direction is the hero's facing along the x axis.
type Direction int

const (
	Negative Direction = -1
	Positive Direction = 1
)

// Animator is the animation playback collaborator. Clips are addressed by
// name; the machine never inspects frames beyond normalized time and length.
type Animator interface {
	Play(clip string)
	SetSpeed(scale float64)
	SetParameter(name string, value float64)
	NormalizedTime() float64
	ClipLength() float64
}

// Input supplies the polled movement axes.
type Input interface {
	Axis() float64  // horizontal, [-1, 1]
	AxisY() float64 // vertical, [-1, 1], positive up
}

// DamageNumbers spawns floating damage popups.
type DamageNumbers interface {
	Create(pos cp.Vector, amount float64, layer int)
}

// Machine owns the hero's state registry and arbitrates every transition.
// States mutate the shared primitives (direction, movability, move vector)
// only while active.
type Machine struct {
	cfg     Config
	body    world.Body
	queries world.Queries
	sensor  *sensor.Sensor
	anim    Animator
	input   Input
	popups  DamageNumbers
	hp      *health.Health

	direction           Direction
	directionChangeable bool
	movable             bool
	move                cp.Vector
	hasJumped           bool
	hasSecondJumped     bool

	states   map[StateID]Workflow
	current  Workflow
	previous Workflow

	// transitioned is the per-frame guard: at most one transition per frame,
	// cleared by EndFrame. terminal is latched when Die is entered.
	transitioned bool
	terminal     bool

	onFacingChanged []func(Direction)
	onDeath         []func()
	onAttackHit     []func(target world.Target, damage float64)

	clock func() float64
	rng   *rand.Rand
}

func New(cfg Config, sensorCfg sensor.Config, queries world.Queries, body world.Body, anim Animator, input Input, popups DamageNumbers) *Machine {
	m := &Machine{
		cfg:                 cfg,
		body:                body,
		queries:             queries,
		anim:                anim,
		input:               input,
		popups:              popups,
		hp:                  health.New(cfg.HPMax),
		direction:           Positive,
		directionChangeable: true,
		movable:             true,
		rng:                 rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	start := time.Now()
	m.clock = func() float64 { return time.Since(start).Seconds() }

	m.sensor = sensor.New(sensorCfg, queries, body.Position, func() float64 {
		return float64(m.direction)
	})

	ledge := &ledgeHangWorkflow{base: base{m: m}}
	m.states = map[StateID]Workflow{
		StateIdle:        &idleWorkflow{base: base{m: m}},
		StateMove:        &moveWorkflow{base: base{m: m}},
		StateJump:        &jumpWorkflow{base: base{m: m}},
		StateSecondJump:  &secondJumpWorkflow{base: base{m: m}},
		StateFall:        &fallWorkflow{base: base{m: m}},
		StateLand:        &landWorkflow{base: base{m: m}},
		StateCrouch:      &crouchWorkflow{base: base{m: m}},
		StateLadderClimb: &ladderWorkflow{base: base{m: m}},
		StateLedgeHang:   ledge,
		StateLedgeClimb:  &ledgeClimbWorkflow{base: base{m: m}, hang: ledge},
		StateWallSlide:   &wallSlideWorkflow{base: base{m: m}},
		StateAttack:      &attackWorkflow{base: base{m: m}},
		StateHurt:        &hurtWorkflow{base: base{m: m}},
		StateDie:         &dieWorkflow{base: base{m: m}},
	}

	m.current = m.states[StateIdle]
	m.current.OnEnter()
	return m
}

func (m *Machine) Health() *health.Health { return m.hp }
func (m *Machine) Sensor() *sensor.Sensor { return m.sensor }
func (m *Machine) Body() world.Body       { return m.body }
func (m *Machine) Direction() Direction   { return m.direction }
func (m *Machine) Move() cp.Vector        { return m.move }
func (m *Machine) Terminal() bool         { return m.terminal }

// State returns the active state's identity.
func (m *Machine) State() StateID { return m.current.ID() }

// PreviousState returns where the machine came from, StateNone before the
// first transition.
func (m *Machine) PreviousState() StateID {
	if m.previous == nil {
		return StateNone
	}
	return m.previous.ID()
}

func (m *Machine) OnFacingChanged(fn func(Direction)) {
	m.onFacingChanged = append(m.onFacingChanged, fn)
}

func (m *Machine) OnDeath(fn func()) { m.onDeath = append(m.onDeath, fn) }

func (m *Machine) OnAttackHit(fn func(target world.Target, damage float64)) {
	m.onAttackHit = append(m.onAttackHit, fn)
}

// SetDirection changes facing. Requests are ignored while direction changes
// are locked or when the facing is unchanged. A zero direction is a caller
// bug and panics.
func (m *Machine) SetDirection(d Direction) {
	if d == 0 {
		panic("machine: zero-magnitude direction")
	}
	if !m.directionChangeable || d == m.direction {
		return
	}
	m.direction = d
	for _, fn := range m.onFacingChanged {
		fn(d)
	}
}

func (m *Machine) SetMovable(movable bool) { m.movable = movable }

func (m *Machine) SetDirectionChangeable(changeable bool) { m.directionChangeable = changeable }

// Knockback overwrites the move vector with an externally applied impulse.
func (m *Machine) Knockback(impulse cp.Vector) { m.move = impulse }

// RequestTransition attempts to activate target. It fails silently when a
// transition already happened this frame, when target is the active state,
// when the target's guard rejects, or after death. The old state's OnExit
// completes fully before the new state's OnEnter begins.
func (m *Machine) RequestTransition(target StateID, params ...any) bool {
	if m.transitioned || m.terminal {
		return false
	}
	if target == m.current.ID() {
		return false
	}
	next, ok := m.states[target]
	if !ok || !next.CanExecute() {
		return false
	}

	m.current.OnExit()
	m.previous = m.current
	m.current = next
	next.OnEnter(params...)
	m.transitioned = true
	if target == StateDie {
		m.terminal = true
	}
	return true
}

// Update is the per-frame driver: dispatch the active state's update and
// attempt its requested transition, then apply input-driven movement and
// facing independently of state.
func (m *Machine) Update() {
	if next := m.current.OnUpdate(); next != StateNone && next != m.current.ID() {
		m.RequestTransition(next)
	}

	axis := m.input.Axis()
	if m.movable {
		m.move.X = axis * m.cfg.Speed
	}
	if m.directionChangeable && axis != 0 {
		if axis > 0 {
			m.SetDirection(Positive)
		} else {
			m.SetDirection(Negative)
		}
	}
}

// ApplyConfig swaps in fresh tuning values, used by config hot reload. The
// active state keeps running; new values apply from the next update.
func (m *Machine) ApplyConfig(cfg Config) { m.cfg = cfg }

// EndFrame clears the once-per-frame transition guard. The game loop calls it
// after render bookkeeping, closing the frame cycle.
func (m *Machine) EndFrame() { m.transitioned = false }

// FixedUpdate is the physics driver: refresh sensor facts, run the active
// state's physics hook, then integrate position from the move vector.
func (m *Machine) FixedUpdate() {
	m.sensor.Refresh()
	m.current.OnFixedUpdate()
	m.body.SetPosition(m.body.Position().Add(m.move.Mult(m.cfg.FixedDelta)))
}

// Hurt depletes health and knocks the hero into the Hurt state, or Die when
// health bottoms out. Depletion while invincible is dropped by the health
// model and causes no state change.
func (m *Machine) Hurt(damage float64, knockback cp.Vector) {
	if m.hp.Invincible || m.terminal {
		return
	}
	m.hp.Deplete(damage)
	if m.hp.Empty() {
		m.RequestTransition(StateDie)
		return
	}
	m.RequestTransition(StateHurt, knockback)
}

// Reset returns the machine to its spawn condition: every state's sub-state
// cleared, health refilled, the terminal latch released, Idle active.
// Observer registrations survive.
func (m *Machine) Reset() {
	for _, s := range m.states {
		s.Reset()
	}
	m.hp.Invincible = false
	m.hp.Recover(m.hp.Max)
	m.direction = Positive
	m.directionChangeable = true
	m.movable = true
	m.move = cp.Vector{}
	m.hasJumped = false
	m.hasSecondJumped = false
	m.transitioned = false
	m.terminal = false
	m.previous = nil
	m.current = m.states[StateIdle]
	m.current.OnEnter()
}

// NotifyAttackHit is fired by the animation collaborator at the clip-authored
// hit timestamp during an attack swing.
func (m *Machine) NotifyAttackHit() {
	if attack, ok := m.states[StateAttack].(*attackWorkflow); ok && m.current == attack {
		attack.resolveHit()
	}
}

func (m *Machine) emitAttackHit(target world.Target, damage float64) {
	for _, fn := range m.onAttackHit {
		fn(target, damage)
	}
}

func (m *Machine) emitDeath() {
	for _, fn := range m.onDeath {
		fn()
	}
}

// applyGravity accumulates downward velocity, used by the airborne states.
func (m *Machine) applyGravity() {
	m.move.Y += m.cfg.Gravity * m.cfg.FixedDelta
}

func (m *Machine) facing() float64 { return float64(m.direction) }

func mirror(v cp.Vector, facing float64) cp.Vector {
	return cp.Vector{X: v.X * facing, Y: v.Y}
}
