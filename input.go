package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input polls the keyboard and gamepad once per frame. It satisfies the
// machine's axis interface; button edges drive the transition requests in
// game.go.
type Input struct {
	moveX float64
	moveY float64

	jumpPressed    bool
	attackPressed  bool
	crouchHeld     bool
	upPressed      bool
	downPressed    bool
	respawnPressed bool
}

func NewInput() *Input {
	return &Input{}
}

func (i *Input) Update() {
	const stickDeadzone = 0.2

	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	up := ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	down := ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown)

	i.moveX = 0
	if left {
		i.moveX -= 1
	}
	if right {
		i.moveX += 1
	}
	i.moveY = 0
	if up {
		i.moveY += 1
	}
	if down {
		i.moveY -= 1
	}

	i.jumpPressed = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	i.attackPressed = inpututil.IsKeyJustPressed(ebiten.KeyJ) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	i.crouchHeld = down
	i.upPressed = inpututil.IsKeyJustPressed(ebiten.KeyW) || inpututil.IsKeyJustPressed(ebiten.KeyArrowUp)
	i.downPressed = inpututil.IsKeyJustPressed(ebiten.KeyS) || inpututil.IsKeyJustPressed(ebiten.KeyArrowDown)
	i.respawnPressed = inpututil.IsKeyJustPressed(ebiten.KeyR)

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(leftX) > stickDeadzone {
			i.moveX = leftX
		}
		leftY := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Abs(leftY) > stickDeadzone {
			i.moveY = -leftY
		}

		i.jumpPressed = i.jumpPressed ||
			inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		i.attackPressed = i.attackPressed ||
			inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft)
	}
}

func (i *Input) Axis() float64  { return i.moveX }
func (i *Input) AxisY() float64 { return i.moveY }
