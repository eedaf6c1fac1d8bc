package sim

import (
	"cmp"
	"slices"

	"github.com/milk9111/padhop/ecs"
	"github.com/milk9111/padhop/ecs/component"
)

// ActorSnapshot is a copy of the actor state for presentation.
type ActorSnapshot struct {
	X, Y       float64
	VX, VY     float64
	HalfWidth  float64
	HalfHeight float64
	Grounded   bool
}

type ObstacleSnapshot struct {
	Index      int
	X, Y       float64
	VX         float64
	HalfWidth  float64
	HalfHeight float64
	Direction  float64
}

func (s *Simulation) Actor() ActorSnapshot {
	var snap ActorSnapshot
	w := s.world
	if t, ok := ecs.Get(w, s.actor, component.TransformComponent.Kind()); ok {
		snap.X, snap.Y = t.X, t.Y
	}
	if v, ok := ecs.Get(w, s.actor, component.VelocityComponent.Kind()); ok {
		snap.VX, snap.VY = v.X, v.Y
	}
	if c, ok := ecs.Get(w, s.actor, component.ColliderComponent.Kind()); ok {
		snap.HalfWidth, snap.HalfHeight = c.HalfWidth, c.HalfHeight
	}
	if st, ok := ecs.Get(w, s.actor, component.ActorStateComponent.Kind()); ok {
		snap.Grounded = st.Grounded
	}
	return snap
}

// Obstacles returns every obstacle in index order.
func (s *Simulation) Obstacles() []ObstacleSnapshot {
	var out []ObstacleSnapshot
	ecs.ForEach3(s.world, component.ObstacleComponent.Kind(), component.TransformComponent.Kind(), component.ColliderComponent.Kind(), func(e ecs.Entity, ob *component.Obstacle, t *component.Transform, c *component.Collider) {
		snap := ObstacleSnapshot{
			Index:      ob.Index,
			X:          t.X,
			Y:          t.Y,
			HalfWidth:  c.HalfWidth,
			HalfHeight: c.HalfHeight,
			Direction:  ob.Direction,
		}
		if v, ok := ecs.Get(s.world, e, component.VelocityComponent.Kind()); ok {
			snap.VX = v.X
		}
		out = append(out, snap)
	})
	slices.SortFunc(out, func(a, b ObstacleSnapshot) int {
		return cmp.Compare(a.Index, b.Index)
	})
	return out
}

// GoalReached reports whether the actor is within any goal's radius.
func (s *Simulation) GoalReached() bool {
	reached := false
	ecs.ForEach(s.world, component.GoalStateComponent.Kind(), func(_ ecs.Entity, st *component.GoalState) {
		reached = reached || st.Reached
	})
	return reached
}
