package world

import "github.com/jakecoffman/cp"

// CpBody adapts a chipmunk body to the Body contract. The hero body starts
// kinematic (the machine core integrates its position); SetKinematic(false)
// hands it back to the space for full simulation.
type CpBody struct {
	body  *cp.Body
	shape *cp.Shape
	space *cp.Space

	width     float64
	height    float64
	scale     float64
	kinematic bool
}

// NewHeroBody creates the controller's body at pos with the given collider
// size and registers it in the space.
func NewHeroBody(s *Space, pos cp.Vector, width, height float64) *CpBody {
	body := s.space.AddBody(cp.NewKinematicBody())
	body.SetPosition(pos)
	b := &CpBody{
		body:      body,
		space:     s.space,
		width:     width,
		height:    height,
		scale:     1,
		kinematic: true,
	}
	b.shape = b.addShape(1)
	return b
}

func (b *CpBody) addShape(scale float64) *cp.Shape {
	h := b.height * scale
	// Keep the feet anchored when the collider shrinks.
	bb := cp.BB{L: -b.width / 2, B: b.height/2 - h, R: b.width / 2, T: b.height / 2}
	shape := b.space.AddShape(cp.NewBox2(b.body, bb, 0))
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, 0, LayerGround))
	return shape
}

func (b *CpBody) Position() cp.Vector     { return b.body.Position() }
func (b *CpBody) SetPosition(p cp.Vector) { b.body.SetPosition(p) }
func (b *CpBody) Velocity() cp.Vector     { return b.body.Velocity() }
func (b *CpBody) SetVelocity(v cp.Vector) { b.body.SetVelocityVector(v) }

func (b *CpBody) ApplyImpulse(impulse cp.Vector) {
	b.body.ApplyImpulseAtWorldPoint(impulse, b.body.Position())
}

func (b *CpBody) Kinematic() bool { return b.kinematic }

func (b *CpBody) SetKinematic(kinematic bool) {
	if kinematic == b.kinematic {
		return
	}
	b.kinematic = kinematic
	if kinematic {
		b.body.SetType(cp.BODY_KINEMATIC)
		return
	}
	b.body.SetType(cp.BODY_DYNAMIC)
	b.body.SetMass(1)
	b.body.SetMoment(cp.INFINITY)
}

func (b *CpBody) ResizeCollider(scale float64) {
	if scale <= 0 || scale == b.scale {
		return
	}
	b.space.RemoveShape(b.shape)
	b.shape = b.addShape(scale)
	b.scale = scale
}

func (b *CpBody) Raw() *cp.Body { return b.body }
