package machine

import (
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/grotto/world"
)

func testLadder() *world.Ladder {
	return &world.Ladder{
		UpStart:   cp.Vector{X: 100, Y: 200},
		UpEnd:     cp.Vector{X: 100, Y: 100},
		DownStart: cp.Vector{X: 100, Y: 90},
		DownEnd:   cp.Vector{X: 100, Y: 190},
		Top:       cp.Vector{X: 100, Y: 80},
	}
}

func TestLadderEnterSnapsFully(t *testing.T) {
	r := newRig(testConfig())
	r.frame()

	l := testLadder()
	r.body.pos = cp.Vector{X: 120, Y: 220} // below the up-start point
	if !r.m.RequestTransition(StateLadderClimb, l, ApproachUp) {
		t.Fatalf("idle should allow grabbing the ladder")
	}
	if got := r.body.pos; got != l.UpStart {
		t.Fatalf("expected full snap to up-start, got %v", got)
	}
	if !r.body.kinematic {
		t.Fatalf("ladder must drive the body kinematically")
	}
}

func TestLadderEnterKeepsHeightWhenPastWaypoint(t *testing.T) {
	r := newRig(testConfig())
	r.frame()

	l := testLadder()
	r.body.pos = cp.Vector{X: 120, Y: 150} // already above up-start
	if !r.m.RequestTransition(StateLadderClimb, l, ApproachUp) {
		t.Fatalf("grab should apply")
	}
	want := cp.Vector{X: 100, Y: 150}
	if got := r.body.pos; got != want {
		t.Fatalf("expected x-only snap to %v, got %v", want, got)
	}
}

func TestLadderClimbsAndExitsAtTop(t *testing.T) {
	r := newRig(testConfig())
	r.frame()

	l := testLadder()
	r.body.pos = cp.Vector{X: 100, Y: 220}
	r.queries.grounded = false
	r.m.FixedUpdate()
	if !r.m.RequestTransition(StateLadderClimb, l, ApproachUp) {
		t.Fatalf("grab should apply")
	}
	r.m.EndFrame()

	r.input.axisY = 1
	for i := 0; i < 600 && r.m.State() == StateLadderClimb; i++ {
		r.frame()
	}
	if r.m.State() != StateIdle {
		t.Fatalf("expected idle after topping out, got %s", r.m.State())
	}
	if got := r.body.pos; got != l.Top {
		t.Fatalf("expected snap to the top anchor %v, got %v", l.Top, got)
	}
	if r.anim.speed != 1 {
		t.Fatalf("playback speed must be restored on exit, got %v", r.anim.speed)
	}
}

func TestLadderRejectsBadApproach(t *testing.T) {
	r := newRig(testConfig())
	r.frame()

	defer func() {
		if recover() == nil {
			t.Fatalf("invalid ladder approach must panic")
		}
	}()
	r.m.RequestTransition(StateLadderClimb, testLadder(), Approach(7))
}

func TestLedgeHangAndClimb(t *testing.T) {
	cfg := testConfig()
	r := newRig(cfg)
	r.frame()

	// airborne with a ledge in front
	r.queries.grounded = false
	ledgePoint := cp.Vector{X: 200, Y: 300}
	r.queries.raycast = func(origin, dir cp.Vector, maxDist float64) (world.RayHit, bool) {
		if dir.Y > 0 {
			return world.RayHit{Point: ledgePoint}, true
		}
		return world.RayHit{}, false
	}
	r.frame()
	r.frame()
	if r.m.State() != StateFall {
		t.Fatalf("expected fall, got %s", r.m.State())
	}
	r.frame()
	if r.m.State() != StateLedgeHang {
		t.Fatalf("expected ledge hang, got %s", r.m.State())
	}
	wantHang := ledgePoint.Add(cfg.LedgeHangOffset) // positive facing
	if got := r.body.pos; got != wantHang {
		t.Fatalf("expected hang snap to %v, got %v", wantHang, got)
	}
	if r.m.Move() != (cp.Vector{}) {
		t.Fatalf("hang must zero the move vector")
	}

	// hang holds until an explicit climb request
	for i := 0; i < 5; i++ {
		r.anim.normalized = 1
		r.frame()
	}
	if r.m.State() != StateLedgeHang {
		t.Fatalf("hang must not exit on its own, got %s", r.m.State())
	}
	if r.anim.current() != "ledge_hang" {
		t.Fatalf("expected hang idle clip after the catch, got %q", r.anim.current())
	}

	if !r.m.RequestTransition(StateLedgeClimb) {
		t.Fatalf("climb request from hang should apply")
	}
	r.m.EndFrame()

	for i := 0; i < 600 && r.m.State() == StateLedgeClimb; i++ {
		r.frame()
	}
	if r.m.State() != StateIdle {
		t.Fatalf("expected idle after the climb, got %s", r.m.State())
	}
	wantStand := ledgePoint.Add(cfg.LedgeStandOffset)
	got := r.body.pos
	if !near(got.X, wantStand.X, 0.5) || !near(got.Y, wantStand.Y, 0.5) {
		t.Fatalf("expected stand position near %v, got %v", wantStand, got)
	}
}

func TestCrouchPhases(t *testing.T) {
	r := newRig(testConfig())
	r.frame()

	if !r.m.RequestTransition(StateCrouch) {
		t.Fatalf("grounded idle should allow crouch")
	}
	if r.body.scale != testConfig().CrouchColliderScale {
		t.Fatalf("crouch must shrink the collider, got scale %v", r.body.scale)
	}
	r.m.EndFrame()

	r.frame()
	r.anim.normalized = 1
	r.frame()
	if r.anim.current() != "crouch_idle" {
		t.Fatalf("expected crouch idle clip after settling, got %q", r.anim.current())
	}

	// floor disappears while settled
	r.queries.grounded = false
	r.frame()
	r.frame()
	if r.m.State() != StateFall {
		t.Fatalf("expected fall when the floor vanishes, got %s", r.m.State())
	}
	if r.body.scale != 1 {
		t.Fatalf("collider must be restored on exit, got scale %v", r.body.scale)
	}
}

func near(a, b, eps float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}
