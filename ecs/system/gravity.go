package system

import (
	"github.com/milk9111/padhop/ecs"
	"github.com/milk9111/padhop/ecs/component"
)

// GravitySystem accelerates the airborne actor downwards by gravity*mass.
type GravitySystem struct {
	gravity float64
	dt      float64
}

func NewGravitySystem(gravity, dt float64) *GravitySystem {
	return &GravitySystem{gravity: gravity, dt: dt}
}

func (g *GravitySystem) Update(w *ecs.World) {
	if g == nil || w == nil {
		return
	}

	e := mustActor(w, "gravity")
	vel := mustGet(w, e, component.VelocityComponent, "gravity")
	mass := mustGet(w, e, component.MassComponent, "gravity")
	state := mustGet(w, e, component.ActorStateComponent, "gravity")

	if state.Grounded {
		return
	}
	vel.Y -= g.gravity * mass.Value * g.dt
}
