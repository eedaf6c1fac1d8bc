package entity

import (
	"github.com/milk9111/padhop/ecs"
	"github.com/milk9111/padhop/levels"
)

// LoadLevelToWorld spawns walls, obstacles, the goal and the actor described
// by lvl and returns the actor.
func LoadLevelToWorld(world *ecs.World, lvl *levels.Level) (ecs.Entity, error) {
	if err := lvl.Validate(); err != nil {
		return 0, err
	}

	for _, loc := range []WallLocation{WallBottom, WallLeft, WallRight} {
		if _, err := NewWall(world, lvl.Walls, loc); err != nil {
			return 0, err
		}
	}
	for i := range lvl.Obstacles.Items {
		if _, err := NewObstacle(world, lvl, i); err != nil {
			return 0, err
		}
	}
	if lvl.Goal != nil {
		if _, err := NewGoal(world, *lvl.Goal); err != nil {
			return 0, err
		}
	}
	return NewActor(world, lvl.Actor)
}
