package system

import (
	"github.com/milk9111/padhop/ecs"
	"github.com/milk9111/padhop/ecs/component"
)

// rideAlongFactor scales the obstacle velocity handed to an actor standing on it.
const rideAlongFactor = 2.0

// ResolverSystem snaps the actor out of the obstacle named by each pending
// collision event and clears the queue.
type ResolverSystem struct{}

func NewResolverSystem() *ResolverSystem {
	return &ResolverSystem{}
}

func (r *ResolverSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	events := w.Collisions().Drain()
	if len(events) == 0 {
		return
	}

	e := mustActor(w, "resolver")
	t := mustGet(w, e, component.TransformComponent, "resolver")
	vel := mustGet(w, e, component.VelocityComponent, "resolver")
	col := mustGet(w, e, component.ColliderComponent, "resolver")
	state := mustGet(w, e, component.ActorStateComponent, "resolver")

	for _, evt := range events {
		ot, ok := ecs.Get(w, evt.Obstacle, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		ocol, ok := ecs.Get(w, evt.Obstacle, component.ColliderComponent.Kind())
		if !ok {
			continue
		}

		switch evt.Side {
		case component.SideLeft:
			vel.X = 0
			t.X = ot.X - ocol.HalfWidth - col.HalfWidth
		case component.SideRight:
			vel.X = 0
			t.X = ot.X + ocol.HalfWidth + col.HalfWidth
		case component.SideTop:
			vel.Y = 0
			t.Y = ot.Y + ocol.HalfHeight + col.HalfHeight
			if ov, ok := ecs.Get(w, evt.Obstacle, component.VelocityComponent.Kind()); ok {
				carry := rideAlongFactor * ov.X
				vel.X += carry
				state.RideAlong = carry
			}
		case component.SideBottom:
			vel.Y = 0
			t.Y = ot.Y - ocol.HalfHeight - col.HalfHeight
		}
	}
}
