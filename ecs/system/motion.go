package system

import (
	"github.com/milk9111/padhop/ecs"
	"github.com/milk9111/padhop/ecs/component"
)

// MotionSystem advances every body that has a velocity by one fixed step.
type MotionSystem struct {
	dt float64
}

func NewMotionSystem(dt float64) *MotionSystem {
	return &MotionSystem{dt: dt}
}

func (m *MotionSystem) Update(w *ecs.World) {
	if m == nil || w == nil {
		return
	}

	mustActor(w, "motion")

	ecs.ForEach2(w, component.TransformComponent.Kind(), component.VelocityComponent.Kind(), func(_ ecs.Entity, t *component.Transform, v *component.Velocity) {
		t.X += v.X * m.dt
		t.Y += v.Y * m.dt
	})
}
