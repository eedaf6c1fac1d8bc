package system

import (
	"github.com/milk9111/padhop/ecs"
	"github.com/milk9111/padhop/levels"
	"go.uber.org/zap"
)

// NewTickScheduler wires the per-tick stage order for lvl.
//
// Bounds runs after collision detection and resolution so the floor clamp
// re-asserts Grounded after the detector clears it.
func NewTickScheduler(lvl *levels.Level, logger *zap.Logger) *ecs.Scheduler {
	dt := lvl.DT()
	return ecs.NewScheduler(
		NewControllerSystem(lvl.Actor),
		NewGravitySystem(lvl.Physics.Gravity, dt),
		NewMotionSystem(dt),
		NewOscillatorSystem(),
		NewCollisionSystem(),
		NewResolverSystem(),
		NewBoundsSystem(lvl.Walls),
		NewGoalSystem(logger),
	)
}
