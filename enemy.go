package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/grotto/health"
	"github.com/milk9111/grotto/world"
)

const (
	enemyWidth  = 24.0
	enemyHeight = 32.0
)

// Enemy is a training dummy on the enemy layer: it stands there, takes hits,
// and despawns when its health bottoms out.
type Enemy struct {
	space *world.Space
	body  *cp.Body
	shape *cp.Shape
	hp    *health.Health
	dead  bool
}

func NewEnemy(space *world.Space, pos cp.Vector) *Enemy {
	e := &Enemy{
		space: space,
		hp:    health.New(30),
	}
	e.body, e.shape = space.AddEnemyBody(pos, enemyWidth, enemyHeight, 2)
	space.RegisterTarget(e.shape, e)
	e.hp.OnReachedMin(func() {
		e.dead = true
		space.RemoveEnemyBody(e.body, e.shape)
	})
	return e
}

func (e *Enemy) Position() cp.Vector { return e.body.Position() }

func (e *Enemy) ApplyDamage(amount float64) { e.hp.Deplete(amount) }

func (e *Enemy) ApplyKnockback(impulse cp.Vector) {
	if e.dead {
		return
	}
	e.body.ApplyImpulseAtWorldPoint(impulse, e.body.Position())
}

func (e *Enemy) Dead() bool { return e.dead }

func (e *Enemy) Draw(screen *ebiten.Image) {
	if e.dead {
		return
	}
	pos := e.body.Position()
	// health-tinted body
	frac := e.hp.Value() / e.hp.Max
	col := color.RGBA{R: 180, G: uint8(60 + 120*frac), B: 60, A: 255}
	vector.DrawFilledRect(screen,
		float32(pos.X-enemyWidth/2), float32(pos.Y-enemyHeight/2),
		enemyWidth, enemyHeight, col, false)
}
