package system

import (
	"cmp"
	"slices"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/padhop/common"
	"github.com/milk9111/padhop/ecs"
	"github.com/milk9111/padhop/ecs/component"
)

// CollisionSystem tests the actor against every obstacle and queues a
// CollisionEvent for the first one it overlaps, in obstacle index order.
//
// Only one contact is reported per tick. When the actor overlaps two
// obstacles at once the later one is ignored until the first is resolved, and
// a fast enough actor can pass through a thin obstacle between two ticks.
type CollisionSystem struct {
	candidates []obstacleBox
}

type obstacleBox struct {
	entity ecs.Entity
	index  int
	bb     cp.BB
}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

func (c *CollisionSystem) Update(w *ecs.World) {
	if c == nil || w == nil {
		return
	}

	e := mustActor(w, "collision")
	t := mustGet(w, e, component.TransformComponent, "collision")
	col := mustGet(w, e, component.ColliderComponent, "collision")
	state := mustGet(w, e, component.ActorStateComponent, "collision")

	actorBB := col.BB(*t)
	state.Grounded = false

	for _, ob := range c.obstacles(w) {
		if !common.Overlap(actorBB, ob.bb) {
			continue
		}
		side := common.Classify(actorBB, ob.bb)
		w.Collisions().Push(ecs.CollisionEvent{
			ObstacleIndex: ob.index,
			Obstacle:      ob.entity,
			Side:          side,
		})
		if side == component.SideTop {
			state.Grounded = true
		}
		return
	}
}

func (c *CollisionSystem) obstacles(w *ecs.World) []obstacleBox {
	c.candidates = c.candidates[:0]
	ecs.ForEach3(w, component.ObstacleComponent.Kind(), component.TransformComponent.Kind(), component.ColliderComponent.Kind(), func(e ecs.Entity, ob *component.Obstacle, t *component.Transform, col *component.Collider) {
		c.candidates = append(c.candidates, obstacleBox{entity: e, index: ob.Index, bb: col.BB(*t)})
	})
	slices.SortStableFunc(c.candidates, func(a, b obstacleBox) int {
		return cmp.Compare(a.index, b.index)
	})
	return c.candidates
}
