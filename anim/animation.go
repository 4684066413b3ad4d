// Package anim provides the clip-based animation player the controller
// drives by name. A clip is a frame-timed animation over an optional
// spritesheet; with a nil sheet it still advances frames and fires frame
// events, which keeps headless tests and unskinned prototypes working.
package anim

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Clip is one named animation. Frames are laid out left-to-right,
// top-to-bottom on the sheet.
type Clip struct {
	Name       string
	Sheet      *ebiten.Image
	FrameW     int
	FrameH     int
	FrameCount int
	FPS        int
	Loop       bool

	frames []*ebiten.Image
}

// NewClip creates a clip. A nil sheet is allowed; fps defaults to 12 and
// frameCount must be at least 1.
func NewClip(name string, sheet *ebiten.Image, frameW, frameH, frameCount, fps int, loop bool) *Clip {
	if fps <= 0 {
		fps = 12
	}
	if frameCount <= 0 {
		frameCount = 1
	}
	c := &Clip{
		Name:       name,
		Sheet:      sheet,
		FrameW:     frameW,
		FrameH:     frameH,
		FrameCount: frameCount,
		FPS:        fps,
		Loop:       loop,
	}
	c.buildFrames()
	return c
}

// Length returns the clip duration in seconds, unscaled by playback speed.
func (c *Clip) Length() float64 {
	return float64(c.FrameCount) / float64(c.FPS)
}

// buildFrames slices the sheet into individual *ebiten.Image frames.
func (c *Clip) buildFrames() {
	if c.Sheet == nil || c.FrameW <= 0 || c.FrameH <= 0 {
		return
	}
	cols := c.Sheet.Bounds().Dx() / c.FrameW
	if cols <= 0 {
		return
	}
	c.frames = make([]*ebiten.Image, c.FrameCount)
	for i := 0; i < c.FrameCount; i++ {
		col := i % cols
		row := i / cols
		sx := col * c.FrameW
		sy := row * c.FrameH
		r := image.Rect(sx, sy, sx+c.FrameW, sy+c.FrameH)
		c.frames[i] = ebiten.NewImageFromImage(c.Sheet.SubImage(r))
	}
}

// Frame returns the prebuilt image for frame i, nil for sheetless clips.
func (c *Clip) Frame(i int) *ebiten.Image {
	if len(c.frames) == 0 {
		return nil
	}
	if i < 0 {
		i = 0
	}
	if i >= len(c.frames) {
		i = len(c.frames) - 1
	}
	return c.frames[i]
}
