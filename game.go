package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/grotto/anim"
	"github.com/milk9111/grotto/config"
	"github.com/milk9111/grotto/fx"
	"github.com/milk9111/grotto/machine"
	"github.com/milk9111/grotto/world"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	heroWidth  = 24.0
	heroHeight = 36.0

	fixedDelta = 1.0 / 60.0
)

type Game struct {
	frames int
	debug  bool

	input   *Input
	space   *world.Space
	level   *Level
	hero    *machine.Machine
	player  *anim.Player
	popups  *fx.DamageNumbers
	enemies []*Enemy

	configPath string
	watcher    *config.Watcher
}

func NewGame(configPath string, debug bool) *Game {
	spec := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			log.Printf("falling back to default config: %v", err)
		} else {
			spec = loaded
		}
	}

	space := world.NewSpace(cp.Vector{Y: spec.Hero.Gravity})
	level := BuildLevel(space)

	body := world.NewHeroBody(space, level.heroSpawn, heroWidth, heroHeight)
	input := NewInput()
	player := heroClips()
	popups := fx.NewDamageNumbers()

	hero := machine.New(spec.Machine(fixedDelta), spec.SensorConfig(), space, body, player, input, popups)

	// clip-authored hit timestamps
	for i := 0; i < spec.Hero.ComboMax; i++ {
		player.OnFrame(fmt.Sprintf("attack_%d", i), 3, hero.NotifyAttackHit)
	}

	g := &Game{
		debug:      debug,
		input:      input,
		space:      space,
		level:      level,
		hero:       hero,
		player:     player,
		popups:     popups,
		enemies:    []*Enemy{NewEnemy(space, level.enemySpawn)},
		configPath: configPath,
	}

	hero.OnDeath(func() {
		log.Println("hero died")
	})

	if configPath != "" {
		if w, err := config.NewWatcher(configPath); err != nil {
			log.Printf("config watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	return g
}

func (g *Game) Update() error {
	g.frames++
	g.pollConfig()

	g.input.Update()
	g.requestInputTransitions()

	g.hero.Update()
	g.hero.FixedUpdate()
	g.space.Step(fixedDelta)

	g.player.Update(fixedDelta)
	g.popups.Update(fixedDelta)

	g.hero.EndFrame()
	return nil
}

// requestInputTransitions turns button edges into transition requests; the
// machine's guards decide which of them actually apply.
func (g *Game) requestInputTransitions() {
	h := g.hero
	s := h.Sensor()

	if h.Terminal() {
		if g.input.respawnPressed {
			h.Body().SetPosition(g.level.heroSpawn)
			h.Reset()
		}
		return
	}

	if g.input.jumpPressed {
		if !h.RequestTransition(machine.StateJump) {
			h.RequestTransition(machine.StateSecondJump)
		}
	}
	if g.input.attackPressed {
		h.RequestTransition(machine.StateAttack)
	}

	if g.input.upPressed {
		if h.State() == machine.StateLedgeHang {
			h.RequestTransition(machine.StateLedgeClimb)
		} else if s.CanLadderUp() {
			h.RequestTransition(machine.StateLadderClimb, s.LadderUp, machine.ApproachUp)
		}
	}
	if g.input.downPressed && s.CanLadderDown() {
		h.RequestTransition(machine.StateLadderClimb, s.LadderDown, machine.ApproachDown)
	}

	if g.input.crouchHeld && s.Grounded {
		h.RequestTransition(machine.StateCrouch)
	}
	if !g.input.crouchHeld && h.State() == machine.StateCrouch {
		h.RequestTransition(machine.StateIdle)
	}
}

func (g *Game) pollConfig() {
	if g.watcher == nil {
		return
	}
	select {
	case <-g.watcher.Events:
		spec, err := config.Load(g.configPath)
		if err != nil {
			log.Printf("config reload failed: %v", err)
			return
		}
		g.hero.ApplyConfig(spec.Machine(fixedDelta))
		log.Printf("config reloaded from %s", g.configPath)
	case err := <-g.watcher.Errors:
		log.Printf("config watch error: %v", err)
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 24, G: 26, B: 34, A: 255})
	g.level.Draw(screen)

	for _, e := range g.enemies {
		e.Draw(screen)
	}

	g.drawHero(screen)
	g.popups.Draw(screen, int(world.LayerEnemy), 0, 0)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"state: %s  prev: %s  hp: %.0f/%.0f  FPS: %.1f",
			g.hero.State(), g.hero.PreviousState(),
			g.hero.Health().Value(), g.hero.Health().Max,
			ebiten.ActualFPS()))
	}
}

func (g *Game) drawHero(screen *ebiten.Image) {
	pos := g.hero.Body().Position()

	if frm := g.player.Frame(); frm != nil {
		op := &ebiten.DrawImageOptions{}
		w, h := frm.Bounds().Dx(), frm.Bounds().Dy()
		if g.hero.Direction() == machine.Negative {
			op.GeoM.Scale(-1, 1)
			op.GeoM.Translate(float64(w), 0)
		}
		op.GeoM.Translate(pos.X-float64(w)/2, pos.Y-float64(h)/2)
		g.player.Draw(screen, op)
		return
	}

	// unskinned build: a rect with a facing notch
	h := heroHeight
	if g.hero.State() == machine.StateCrouch {
		h /= 2
	}
	vector.DrawFilledRect(screen,
		float32(pos.X-heroWidth/2), float32(pos.Y+heroHeight/2-h),
		heroWidth, float32(h),
		color.RGBA{R: 90, G: 160, B: 220, A: 255}, false)
	notchX := pos.X + float64(g.hero.Direction())*heroWidth/2
	vector.DrawFilledRect(screen,
		float32(notchX-2), float32(pos.Y-4), 4, 8,
		color.RGBA{R: 240, G: 240, B: 240, A: 255}, false)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

// heroClips builds the sheetless clip set. Frame counts and rates mirror the
// intended sprite sheets; swapping real sheets in only changes NewClip args.
func heroClips() *anim.Player {
	return anim.NewPlayer(
		anim.NewClip("idle", nil, 0, 0, 6, 8, true),
		anim.NewClip("move", nil, 0, 0, 8, 12, true),
		anim.NewClip("jump", nil, 0, 0, 4, 10, false),
		anim.NewClip("second_jump", nil, 0, 0, 6, 14, false),
		anim.NewClip("fall", nil, 0, 0, 4, 10, true),
		anim.NewClip("land", nil, 0, 0, 5, 16, false),
		anim.NewClip("crouch", nil, 0, 0, 4, 12, false),
		anim.NewClip("crouch_idle", nil, 0, 0, 4, 6, true),
		anim.NewClip("ladder_climb", nil, 0, 0, 6, 10, true),
		anim.NewClip("ledge_catch", nil, 0, 0, 3, 12, false),
		anim.NewClip("ledge_hang", nil, 0, 0, 4, 6, true),
		anim.NewClip("ledge_climb", nil, 0, 0, 8, 10, false),
		anim.NewClip("wall_slide", nil, 0, 0, 3, 8, true),
		anim.NewClip("attack_0", nil, 0, 0, 6, 18, false),
		anim.NewClip("attack_1", nil, 0, 0, 6, 18, false),
		anim.NewClip("attack_2", nil, 0, 0, 8, 18, false),
		anim.NewClip("hurt", nil, 0, 0, 4, 12, false),
		anim.NewClip("die", nil, 0, 0, 8, 10, false),
	)
}
