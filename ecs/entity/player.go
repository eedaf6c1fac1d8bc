package entity

import (
	"errors"
	"fmt"

	"github.com/milk9111/padhop/ecs"
	"github.com/milk9111/padhop/ecs/component"
	"github.com/milk9111/padhop/levels"
)

// NewActor spawns the controllable actor and registers it as the world's actor.
func NewActor(w *ecs.World, spec levels.ActorSpec) (ecs.Entity, error) {
	if prev := w.Actor(); prev.Valid() && w.IsAlive(prev) {
		return 0, fmt.Errorf("actor: world already has actor %s", prev)
	}

	e := ecs.CreateEntity(w)
	half := spec.Size / 2
	err := errors.Join(
		ecs.Add(w, e, component.ActorTagComponent.Kind(), &component.ActorTag{}),
		ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: spec.X, Y: spec.Y}),
		ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{}),
		ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{HalfWidth: half, HalfHeight: half}),
		ecs.Add(w, e, component.MassComponent.Kind(), &component.Mass{Value: spec.Mass}),
		ecs.Add(w, e, component.ActorStateComponent.Kind(), &component.ActorState{}),
		ecs.Add(w, e, component.IntentComponent.Kind(), &component.Intent{}),
	)
	if err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("actor: %w", err)
	}

	w.SetActor(e)
	return e, nil
}
