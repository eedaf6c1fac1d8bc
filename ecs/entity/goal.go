package entity

import (
	"errors"
	"fmt"

	"github.com/milk9111/padhop/ecs"
	"github.com/milk9111/padhop/ecs/component"
	"github.com/milk9111/padhop/levels"
)

func NewGoal(w *ecs.World, spec levels.GoalSpec) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	err := errors.Join(
		ecs.Add(w, e, component.GoalComponent.Kind(), &component.Goal{Radius: spec.Radius}),
		ecs.Add(w, e, component.GoalStateComponent.Kind(), &component.GoalState{}),
		ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: spec.X, Y: spec.Y}),
	)
	if err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("goal: %w", err)
	}
	return e, nil
}
