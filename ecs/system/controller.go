package system

import (
	"github.com/milk9111/padhop/ecs"
	"github.com/milk9111/padhop/ecs/component"
	"github.com/milk9111/padhop/levels"
)

// ControllerSystem turns the tick's Intent into actor velocity.
type ControllerSystem struct {
	speed     float64
	jumpForce float64
}

func NewControllerSystem(actor levels.ActorSpec) *ControllerSystem {
	return &ControllerSystem{speed: actor.Speed, jumpForce: actor.JumpForce}
}

func (c *ControllerSystem) Update(w *ecs.World) {
	if c == nil || w == nil {
		return
	}

	e := mustActor(w, "controller")
	intent := mustGet(w, e, component.IntentComponent, "controller")
	vel := mustGet(w, e, component.VelocityComponent, "controller")
	state := mustGet(w, e, component.ActorStateComponent, "controller")

	switch {
	case intent.MoveLeft:
		vel.X = -c.speed
	case intent.MoveRight:
		vel.X = c.speed
	default:
		vel.X = 0
	}
	vel.X += state.RideAlong
	state.RideAlong = 0

	if intent.JumpPressed && state.Grounded {
		vel.Y = c.jumpForce
		state.Grounded = false
	}
}
