package system

import (
	"math"

	"github.com/milk9111/padhop/common"
	"github.com/milk9111/padhop/ecs"
	"github.com/milk9111/padhop/ecs/component"
	"github.com/milk9111/padhop/levels"
)

// BoundsSystem keeps the actor between the side walls and above the floor.
// Landing on the floor grounds the actor.
type BoundsSystem struct {
	walls levels.WallSpec
}

func NewBoundsSystem(walls levels.WallSpec) *BoundsSystem {
	return &BoundsSystem{walls: walls}
}

func (b *BoundsSystem) Update(w *ecs.World) {
	if b == nil || w == nil {
		return
	}

	e := mustActor(w, "bounds")
	t := mustGet(w, e, component.TransformComponent, "bounds")
	vel := mustGet(w, e, component.VelocityComponent, "bounds")
	col := mustGet(w, e, component.ColliderComponent, "bounds")
	state := mustGet(w, e, component.ActorStateComponent, "bounds")

	floor := b.walls.FloorBound(col.HalfHeight)
	t.X = common.Clamp(t.X, b.walls.LeftBound(col.HalfWidth), b.walls.RightBound(col.HalfWidth))
	t.Y = common.Clamp(t.Y, floor, math.Inf(1))

	// The clamp assigns floor exactly, so equality holds whenever it binds.
	if t.Y == floor {
		vel.Y = 0
		state.Grounded = true
	}
}
