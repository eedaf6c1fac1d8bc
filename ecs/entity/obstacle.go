package entity

import (
	"errors"
	"fmt"

	"github.com/milk9111/padhop/ecs"
	"github.com/milk9111/padhop/ecs/component"
	"github.com/milk9111/padhop/levels"
)

// NewObstacle spawns obstacle index of lvl with its travel limits and
// starting velocity.
func NewObstacle(w *ecs.World, lvl *levels.Level, index int) (ecs.Entity, error) {
	if index < 0 || index >= len(lvl.Obstacles.Items) {
		return 0, fmt.Errorf("obstacle %d: out of range", index)
	}
	spec := lvl.Obstacles.Items[index]
	hw, hh := spec.W/2, spec.H/2
	dir, vx := lvl.Obstacles.Motion(index)

	e := ecs.CreateEntity(w)
	err := errors.Join(
		ecs.Add(w, e, component.ObstacleComponent.Kind(), &component.Obstacle{
			Index:     index,
			Direction: dir,
			MinX:      lvl.Walls.LeftBound(hw),
			MaxX:      lvl.Walls.RightBound(hw),
		}),
		ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: spec.X, Y: spec.Y}),
		ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{X: vx}),
		ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{HalfWidth: hw, HalfHeight: hh}),
	)
	if err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("obstacle %d: %w", index, err)
	}
	return e, nil
}
