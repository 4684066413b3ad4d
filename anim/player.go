package anim

import "github.com/hajimehoshi/ebiten/v2"

// Player holds the clip registry and the playback head. Frame callbacks are
// the clip-authored event channel: the attack hit event registers here and
// fires mid-clip.
type Player struct {
	clips map[string]*Clip

	current   *Clip
	elapsed   float64
	lastFrame int
	speed     float64
	params    map[string]float64

	frameFns map[string]map[int][]func()
}

func NewPlayer(clips ...*Clip) *Player {
	p := &Player{
		clips:    make(map[string]*Clip),
		speed:    1,
		params:   make(map[string]float64),
		frameFns: make(map[string]map[int][]func()),
	}
	for _, c := range clips {
		p.Add(c)
	}
	return p
}

func (p *Player) Add(c *Clip) {
	if c == nil || c.Name == "" {
		return
	}
	p.clips[c.Name] = c
}

// Play restarts the named clip from its first frame. Unknown names stop
// playback; the controller treats clip lookup as the collaborator's problem.
func (p *Player) Play(name string) {
	p.current = p.clips[name]
	p.elapsed = 0
	p.lastFrame = -1
	p.speed = 1
}

func (p *Player) SetSpeed(scale float64) {
	if scale < 0 {
		scale = 0
	}
	p.speed = scale
}

func (p *Player) SetParameter(name string, value float64) { p.params[name] = value }
func (p *Player) Parameter(name string) float64           { return p.params[name] }

// CurrentClip returns the playing clip's name, "" when stopped.
func (p *Player) CurrentClip() string {
	if p.current == nil {
		return ""
	}
	return p.current.Name
}

// NormalizedTime reports progress through the current clip: 0 at the start,
// clamped at 1 for non-looping clips, wrapping for loops.
func (p *Player) NormalizedTime() float64 {
	if p.current == nil {
		return 0
	}
	n := p.elapsed / p.current.Length()
	if !p.current.Loop && n > 1 {
		return 1
	}
	if p.current.Loop && n >= 1 {
		n -= float64(int(n))
	}
	return n
}

// ClipLength returns the current clip's unscaled duration in seconds.
func (p *Player) ClipLength() float64 {
	if p.current == nil {
		return 0
	}
	return p.current.Length()
}

// OnFrame registers fn to fire when the named clip crosses the given frame.
func (p *Player) OnFrame(clip string, frame int, fn func()) {
	if fn == nil || frame < 0 {
		return
	}
	if p.frameFns[clip] == nil {
		p.frameFns[clip] = make(map[int][]func())
	}
	p.frameFns[clip][frame] = append(p.frameFns[clip][frame], fn)
}

// Update advances playback by dt seconds and fires callbacks for every frame
// crossed since the last update.
func (p *Player) Update(dt float64) {
	if p.current == nil || dt <= 0 {
		return
	}
	p.elapsed += dt * p.speed

	frame := int(p.elapsed * float64(p.current.FPS))
	last := p.current.FrameCount - 1
	if !p.current.Loop && frame > last {
		frame = last
	}

	for f := p.lastFrame + 1; f <= frame; f++ {
		idx := f
		if p.current.Loop {
			idx = f % p.current.FrameCount
		}
		for _, fn := range p.frameFns[p.current.Name][idx] {
			fn()
		}
	}
	p.lastFrame = frame
}

// Frame returns the image for the current playback frame, nil when stopped
// or sheetless.
func (p *Player) Frame() *ebiten.Image {
	if p.current == nil {
		return nil
	}
	frame := int(p.elapsed * float64(p.current.FPS))
	if p.current.Loop {
		frame %= p.current.FrameCount
	}
	return p.current.Frame(frame)
}

// Draw draws the current frame with the given options.
func (p *Player) Draw(screen *ebiten.Image, op *ebiten.DrawImageOptions) {
	frm := p.Frame()
	if frm == nil {
		return
	}
	var dop ebiten.DrawImageOptions
	if op != nil {
		dop = *op
	}
	dop.Filter = ebiten.FilterNearest
	screen.DrawImage(frm, &dop)
}
