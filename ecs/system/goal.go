package system

import (
	"github.com/milk9111/padhop/ecs"
	"github.com/milk9111/padhop/ecs/component"
	"go.uber.org/zap"
)

// GoalSystem flags goals the actor is close enough to.
type GoalSystem struct {
	logger *zap.Logger
}

func NewGoalSystem(logger *zap.Logger) *GoalSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GoalSystem{logger: logger}
}

func (g *GoalSystem) Update(w *ecs.World) {
	if g == nil || w == nil {
		return
	}

	e := mustActor(w, "goal")
	at := mustGet(w, e, component.TransformComponent, "goal")

	ecs.ForEach3(w, component.GoalComponent.Kind(), component.TransformComponent.Kind(), component.GoalStateComponent.Kind(), func(ge ecs.Entity, goal *component.Goal, t *component.Transform, state *component.GoalState) {
		dist := at.Vector().Distance(t.Vector())
		if dist >= goal.Radius {
			state.Reached = false
			state.Ticks = 0
			return
		}
		if !state.Reached {
			g.logger.Info("goal reached",
				zap.Stringer("goal", ge),
				zap.Float64("x", at.X),
				zap.Float64("y", at.Y),
				zap.Float64("distance", dist),
			)
		}
		state.Reached = true
		state.Ticks++
	})
}
