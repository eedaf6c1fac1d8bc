package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/padhop/ecs/component"
)

const stickDeadzone = 0.2

// ReadIntent maps keyboard and the first gamepad to the tick's Intent.
func ReadIntent() component.Intent {
	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	jump := ebiten.IsKeyPressed(ebiten.KeySpace)

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		left = left || leftX < -stickDeadzone
		right = right || leftX > stickDeadzone
		jump = jump || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
	}

	return component.Intent{
		MoveLeft:    left,
		MoveRight:   right && !left,
		JumpPressed: jump,
	}
}
