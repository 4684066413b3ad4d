package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/grotto/world"
)

type levelRect struct {
	center cp.Vector
	size   cp.Vector
}

// Level is the demo arena: a floor, outer walls, a tall ledge platform, and a
// ladder up to a mid platform.
type Level struct {
	rects  []levelRect
	ladder *world.Ladder

	heroSpawn  cp.Vector
	enemySpawn cp.Vector
}

func BuildLevel(space *world.Space) *Level {
	l := &Level{
		heroSpawn:  cp.Vector{X: 200, Y: 600},
		enemySpawn: cp.Vector{X: 520, Y: 600},
	}

	add := func(center, size cp.Vector) {
		space.AddGroundBox(center, size)
		l.rects = append(l.rects, levelRect{center: center, size: size})
	}

	// floor
	add(cp.Vector{X: 640, Y: 680}, cp.Vector{X: 1280, Y: 80})
	// outer walls
	add(cp.Vector{X: 20, Y: 360}, cp.Vector{X: 40, Y: 720})
	add(cp.Vector{X: 1260, Y: 360}, cp.Vector{X: 40, Y: 720})
	// ledge platform, tall enough that its lip reads as a ledge
	add(cp.Vector{X: 980, Y: 480}, cp.Vector{X: 280, Y: 320})
	// mid platform served by the ladder
	add(cp.Vector{X: 420, Y: 420}, cp.Vector{X: 220, Y: 30})

	ladder := &world.Ladder{
		UpStart:   cp.Vector{X: 320, Y: 620},
		UpEnd:     cp.Vector{X: 320, Y: 420},
		DownStart: cp.Vector{X: 320, Y: 400},
		DownEnd:   cp.Vector{X: 320, Y: 600},
		Top:       cp.Vector{X: 320, Y: 385},
	}
	space.AddLadder(ladder, 10)
	l.ladder = ladder

	return l
}

func (l *Level) Draw(screen *ebiten.Image) {
	for _, r := range l.rects {
		vector.DrawFilledRect(screen,
			float32(r.center.X-r.size.X/2), float32(r.center.Y-r.size.Y/2),
			float32(r.size.X), float32(r.size.Y),
			color.RGBA{R: 70, G: 70, B: 86, A: 255}, false)
	}

	rail := color.RGBA{R: 150, G: 120, B: 60, A: 255}
	lx := float32(l.ladder.UpStart.X)
	top := float32(l.ladder.UpperBound())
	bottom := float32(l.ladder.LowerBound())
	vector.StrokeLine(screen, lx-6, top, lx-6, bottom, 2, rail, false)
	vector.StrokeLine(screen, lx+6, top, lx+6, bottom, 2, rail, false)
	for y := top; y < bottom; y += 14 {
		vector.StrokeLine(screen, lx-6, y, lx+6, y, 2, rail, false)
	}
}
