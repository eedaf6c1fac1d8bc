package system

import (
	"github.com/milk9111/padhop/ecs"
	"github.com/milk9111/padhop/ecs/component"
)

// OscillatorSystem reverses obstacles that reached the end of their travel.
type OscillatorSystem struct{}

func NewOscillatorSystem() *OscillatorSystem {
	return &OscillatorSystem{}
}

func (o *OscillatorSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.ObstacleComponent.Kind(), component.TransformComponent.Kind(), component.VelocityComponent.Kind(), func(_ ecs.Entity, ob *component.Obstacle, t *component.Transform, v *component.Velocity) {
		switch {
		case ob.Direction > 0 && t.X >= ob.MaxX:
			ob.Direction = -1
			v.X = -v.X
		case ob.Direction < 0 && t.X <= ob.MinX:
			ob.Direction = 1
			v.X = -v.X
		}
	})
}
