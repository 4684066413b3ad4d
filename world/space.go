package world

import (
	"math"
	"sort"

	"github.com/jakecoffman/cp"
)

// Space wraps a chipmunk space and implements Queries over it. Level geometry
// is registered through the Add* helpers; dynamic bodies (enemies) step with
// the space, the hero body is kinematic and integrated by the machine core.
type Space struct {
	space   *cp.Space
	ladders map[*cp.Shape]*Ladder
	targets map[*cp.Shape]Target
}

func NewSpace(gravity cp.Vector) *Space {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(gravity)
	return &Space{
		space:   space,
		ladders: make(map[*cp.Shape]*Ladder),
		targets: make(map[*cp.Shape]Target),
	}
}

func (s *Space) Raw() *cp.Space {
	if s == nil {
		return nil
	}
	return s.space
}

// Step advances the simulation for dynamic bodies.
func (s *Space) Step(dt float64) {
	if s == nil || s.space == nil {
		return
	}
	s.space.Step(dt)
}

// AddGroundBox registers a static solid box centered at center.
func (s *Space) AddGroundBox(center, size cp.Vector) {
	body := s.space.AddBody(cp.NewStaticBody())
	body.SetPosition(center)
	shape := s.space.AddShape(cp.NewBox(body, size.X, size.Y, 0))
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, LayerGround, cp.ALL_CATEGORIES))
}

// AddGroundSegment registers a static solid segment between a and b.
func (s *Space) AddGroundSegment(a, b cp.Vector) {
	body := s.space.AddBody(cp.NewStaticBody())
	shape := s.space.AddShape(cp.NewSegment(body, a, b, 1))
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, LayerGround, cp.ALL_CATEGORIES))
}

// AddLadder registers a ladder whose grab region is the box spanning its
// waypoints, padded by pad on each side.
func (s *Space) AddLadder(l *Ladder, pad float64) {
	if l == nil {
		return
	}
	center := cp.Vector{
		X: l.UpStart.X,
		Y: (l.UpperBound() + l.LowerBound()) / 2,
	}
	h := l.LowerBound() - l.UpperBound()
	body := s.space.AddBody(cp.NewStaticBody())
	body.SetPosition(center)
	shape := s.space.AddShape(cp.NewBox(body, pad*2, h+pad*2, 0))
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, LayerLadder, cp.ALL_CATEGORIES))
	shape.SetSensor(true)
	s.ladders[shape] = l
}

// AddEnemyBody creates a dynamic body on the enemy layer. The caller
// registers the returned shape as a target.
func (s *Space) AddEnemyBody(pos cp.Vector, width, height, mass float64) (*cp.Body, *cp.Shape) {
	body := s.space.AddBody(cp.NewBody(mass, cp.INFINITY))
	body.SetPosition(pos)
	shape := s.space.AddShape(cp.NewBox(body, width, height, 0))
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, LayerEnemy, LayerGround|LayerEnemy))
	shape.SetFriction(0.8)
	return body, shape
}

// RemoveEnemyBody takes an enemy out of the simulation.
func (s *Space) RemoveEnemyBody(body *cp.Body, shape *cp.Shape) {
	s.UnregisterTarget(shape)
	s.space.RemoveShape(shape)
	s.space.RemoveBody(body)
}

// RegisterTarget associates an attackable target with its shape. The shape
// must carry the LayerEnemy category.
func (s *Space) RegisterTarget(shape *cp.Shape, t Target) {
	if shape == nil || t == nil {
		return
	}
	s.targets[shape] = t
}

func (s *Space) UnregisterTarget(shape *cp.Shape) {
	delete(s.targets, shape)
}

func (s *Space) BoxOverlap(center, size cp.Vector) bool {
	found := false
	bb := cp.NewBBForExtents(center, size.X/2, size.Y/2)
	s.space.BBQuery(bb, queryFilter(LayerGround), func(shape *cp.Shape, _ interface{}) {
		found = true
	}, nil)
	return found
}

func (s *Space) LadderOverlap(center cp.Vector, radius float64) (*Ladder, bool) {
	var ladder *Ladder
	bb := cp.NewBBForExtents(center, radius, radius)
	s.space.BBQuery(bb, queryFilter(LayerLadder), func(shape *cp.Shape, _ interface{}) {
		if ladder == nil {
			ladder = s.ladders[shape]
		}
	}, nil)
	return ladder, ladder != nil
}

func (s *Space) Raycast(origin, dir cp.Vector, maxDist float64) (RayHit, bool) {
	end := origin.Add(dir.Normalize().Mult(maxDist))
	info := s.space.SegmentQueryFirst(origin, end, 0, queryFilter(LayerGround))
	if info.Shape == nil {
		return RayHit{}, false
	}
	return RayHit{Point: info.Point, Normal: info.Normal}, true
}

func (s *Space) BoxCastTargets(origin, size, dir cp.Vector, dist float64, layer uint, max int) []Target {
	if max <= 0 {
		return nil
	}
	// Sweep as the union of the box at the start and end of the cast.
	start := cp.NewBBForExtents(origin, size.X/2, size.Y/2)
	end := cp.NewBBForExtents(origin.Add(dir.Normalize().Mult(dist)), size.X/2, size.Y/2)
	bb := start.Merge(end)

	type hit struct {
		target Target
		dist   float64
	}
	var hits []hit
	seen := make(map[Target]bool)
	s.space.BBQuery(bb, queryFilter(layer), func(shape *cp.Shape, _ interface{}) {
		t, ok := s.targets[shape]
		if !ok || seen[t] {
			return
		}
		seen[t] = true
		d := t.Position().Sub(origin)
		hits = append(hits, hit{target: t, dist: math.Abs(d.X) + math.Abs(d.Y)})
	}, nil)

	sort.Slice(hits, func(i, j int) bool { return hits[i].dist < hits[j].dist })
	if len(hits) > max {
		hits = hits[:max]
	}
	out := make([]Target, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.target)
	}
	return out
}

func queryFilter(layer uint) cp.ShapeFilter {
	return cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, layer)
}
