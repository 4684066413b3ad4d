// Package fx renders transient combat feedback: floating damage numbers that
// rise and fade above whatever got hit.
package fx

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/jakecoffman/cp"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/basicfont"
)

const (
	numberRise     = 24.0
	numberLifetime = 0.8
)

type number struct {
	text  string
	pos   cp.Vector
	layer int
	rise  *gween.Tween
	fade  *gween.Tween
	dy    float32
	alpha float32
	done  bool
}

// DamageNumbers is the popup display service. Create may be called from
// machine callbacks at any point in the frame; drawing happens later, layer
// by layer.
type DamageNumbers struct {
	face    ebtext.Face
	numbers []*number
}

func NewDamageNumbers() *DamageNumbers {
	return &DamageNumbers{
		face: ebtext.NewGoXFace(basicfont.Face7x13),
	}
}

func (d *DamageNumbers) Create(pos cp.Vector, amount float64, layer int) {
	d.numbers = append(d.numbers, &number{
		text:  fmt.Sprintf("%.0f", amount),
		pos:   pos,
		layer: layer,
		rise:  gween.New(0, numberRise, numberLifetime, ease.OutQuad),
		fade:  gween.New(1, 0, numberLifetime, ease.InQuad),
		alpha: 1,
	})
}

func (d *DamageNumbers) Update(dt float64) {
	alive := d.numbers[:0]
	for _, n := range d.numbers {
		var doneRise, doneFade bool
		n.dy, doneRise = n.rise.Update(float32(dt))
		n.alpha, doneFade = n.fade.Update(float32(dt))
		n.done = doneRise && doneFade
		if !n.done {
			alive = append(alive, n)
		}
	}
	d.numbers = alive
}

// Draw renders every live number on the given layer. camX/camY is the camera
// offset in world units.
func (d *DamageNumbers) Draw(screen *ebiten.Image, layer int, camX, camY float64) {
	for _, n := range d.numbers {
		if n.layer != layer {
			continue
		}
		op := &ebtext.DrawOptions{}
		op.GeoM.Translate(n.pos.X-camX, n.pos.Y-camY-float64(n.dy))
		op.ColorScale.ScaleWithColor(color.White)
		op.ColorScale.ScaleAlpha(n.alpha)
		ebtext.Draw(screen, n.text, d.face, op)
	}
}
