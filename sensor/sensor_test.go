package sensor

import (
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/grotto/world"
)

type scriptedWorld struct {
	grounded bool
	ladders  map[cp.Vector]*world.Ladder
	raycast  func(origin, dir cp.Vector, maxDist float64) (world.RayHit, bool)
}

func (w *scriptedWorld) BoxOverlap(center, size cp.Vector) bool { return w.grounded }

func (w *scriptedWorld) LadderOverlap(center cp.Vector, radius float64) (*world.Ladder, bool) {
	l, ok := w.ladders[center]
	return l, ok
}

func (w *scriptedWorld) Raycast(origin, dir cp.Vector, maxDist float64) (world.RayHit, bool) {
	if w.raycast == nil {
		return world.RayHit{}, false
	}
	return w.raycast(origin, dir, maxDist)
}

func (w *scriptedWorld) BoxCastTargets(origin, size, dir cp.Vector, dist float64, layer uint, max int) []world.Target {
	return nil
}

func testSensorConfig() Config {
	return Config{
		GroundBoxOffset:  cp.Vector{Y: 18},
		GroundBoxSize:    cp.Vector{X: 20, Y: 4},
		LadderUpOffset:   cp.Vector{Y: -10},
		LadderDownOffset: cp.Vector{Y: 20},
		LadderRadius:     6,
		LedgeRayOffset:   cp.Vector{X: 14, Y: -20},
		LedgeRayLength:   24,
		WallTopOffset:    cp.Vector{X: 10, Y: -12},
		WallBottomOffset: cp.Vector{X: 10, Y: 12},
		WallRayLength:    8,
	}
}

func newTestSensor(w *scriptedWorld, facing float64) *Sensor {
	pos := cp.Vector{X: 100, Y: 100}
	return New(testSensorConfig(), w, func() cp.Vector { return pos }, func() float64 { return facing })
}

func TestLedgeRequiresFreeSpaceAbove(t *testing.T) {
	w := &scriptedWorld{}
	s := newTestSensor(w, 1)

	point := cp.Vector{X: 114, Y: 92}
	w.raycast = func(origin, dir cp.Vector, maxDist float64) (world.RayHit, bool) {
		if dir.Y > 0 {
			return world.RayHit{Point: point}, true
		}
		return world.RayHit{}, false
	}
	s.Refresh()
	if !s.LedgeDetected {
		t.Fatalf("down hit with a clear up ray should register a ledge")
	}
	if s.LedgePoint != point {
		t.Fatalf("expected ledge point %v, got %v", point, s.LedgePoint)
	}

	// a flat wall hits both vertical rays and must be rejected
	w.raycast = func(origin, dir cp.Vector, maxDist float64) (world.RayHit, bool) {
		if dir.X == 0 {
			return world.RayHit{Point: point}, true
		}
		return world.RayHit{}, false
	}
	s.Refresh()
	if s.LedgeDetected {
		t.Fatalf("a surface hit by both vertical rays is not a ledge")
	}
	if s.LedgePoint != (cp.Vector{}) {
		t.Fatalf("stale ledge point must clear, got %v", s.LedgePoint)
	}
}

func TestWallNeedsBothRays(t *testing.T) {
	w := &scriptedWorld{}
	s := newTestSensor(w, 1)

	var hits []cp.Vector
	w.raycast = func(origin, dir cp.Vector, maxDist float64) (world.RayHit, bool) {
		if dir.X != 0 {
			hits = append(hits, origin)
			// only the bottom ray connects, like a knee-high step
			if origin.Y > 100 {
				return world.RayHit{Point: origin}, true
			}
		}
		return world.RayHit{}, false
	}
	s.Refresh()
	if s.WallDetected {
		t.Fatalf("a single forward hit is a step, not a wall")
	}
	if len(hits) != 2 {
		t.Fatalf("expected both forward probes cast, got %d", len(hits))
	}

	w.raycast = func(origin, dir cp.Vector, maxDist float64) (world.RayHit, bool) {
		if dir.X != 0 {
			return world.RayHit{Point: origin}, true
		}
		return world.RayHit{}, false
	}
	s.Refresh()
	if !s.WallDetected {
		t.Fatalf("both forward hits should register a wall")
	}
}

func TestProbesMirrorWithFacing(t *testing.T) {
	w := &scriptedWorld{}
	var origins []cp.Vector
	w.raycast = func(origin, dir cp.Vector, maxDist float64) (world.RayHit, bool) {
		if dir.X != 0 {
			origins = append(origins, origin)
		}
		return world.RayHit{}, false
	}

	newTestSensor(w, 1).Refresh()
	right := origins[0]
	origins = nil
	newTestSensor(w, -1).Refresh()
	left := origins[0]

	if right.X != 110 || left.X != 90 {
		t.Fatalf("expected wall probes mirrored around x=100, got %v and %v", right.X, left.X)
	}
	if right.Y != left.Y {
		t.Fatalf("y offsets must not mirror, got %v and %v", right.Y, left.Y)
	}
}

func TestLadderReachability(t *testing.T) {
	l := &world.Ladder{}
	w := &scriptedWorld{ladders: map[cp.Vector]*world.Ladder{
		{X: 100, Y: 90}: l, // up probe only
	}}
	s := newTestSensor(w, 1)
	s.Refresh()

	if !s.CanLadderUp() || s.LadderUp != l {
		t.Fatalf("expected the up probe to find the ladder")
	}
	if s.CanLadderDown() {
		t.Fatalf("down probe should not reach the ladder")
	}
}
