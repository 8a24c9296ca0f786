package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/mutant/ecs"
	"github.com/milk9111/mutant/ecs/component"
)

const stickDeadzone = 0.2

type InputSystem struct {
	// Read samples the devices. Tests and the headless demo replace it.
	Read func() component.Input
}

func NewInputSystem() *InputSystem {
	return &InputSystem{Read: readDevices}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.Read == nil {
		return
	}

	in := i.Read()
	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		*input = in
	})
}

func readDevices() component.Input {
	var in component.Input
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.MoveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.MoveX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		in.MoveZ -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		in.MoveZ += 1
	}

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(lx, ly) > stickDeadzone {
			in.MoveX = lx
			in.MoveZ = ly
		}
	}
	return in
}
