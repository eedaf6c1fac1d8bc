package system

import (
	"testing"

	"github.com/milk9111/padhop/ecs"
	"github.com/milk9111/padhop/ecs/component"
	"github.com/milk9111/padhop/levels"
	"github.com/stretchr/testify/require"
)

var testWalls = levels.WallSpec{Thickness: 20, LeftX: -400, RightX: 400, BottomY: -300}

type testActor struct {
	entity    ecs.Entity
	transform *component.Transform
	velocity  *component.Velocity
	collider  *component.Collider
	state     *component.ActorState
	intent    *component.Intent
}

func newActor(t *testing.T, w *ecs.World, x, y, half, mass float64) testActor {
	t.Helper()
	e := ecs.CreateEntity(w)
	a := testActor{
		entity:    e,
		transform: &component.Transform{X: x, Y: y},
		velocity:  &component.Velocity{},
		collider:  &component.Collider{HalfWidth: half, HalfHeight: half},
		state:     &component.ActorState{},
		intent:    &component.Intent{},
	}
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), a.transform))
	require.NoError(t, ecs.Add(w, e, component.VelocityComponent.Kind(), a.velocity))
	require.NoError(t, ecs.Add(w, e, component.ColliderComponent.Kind(), a.collider))
	require.NoError(t, ecs.Add(w, e, component.ActorStateComponent.Kind(), a.state))
	require.NoError(t, ecs.Add(w, e, component.IntentComponent.Kind(), a.intent))
	require.NoError(t, ecs.Add(w, e, component.MassComponent.Kind(), &component.Mass{Value: mass}))
	w.SetActor(e)
	return a
}

type testObstacle struct {
	entity    ecs.Entity
	obstacle  *component.Obstacle
	transform *component.Transform
	velocity  *component.Velocity
}

func newObstacle(t *testing.T, w *ecs.World, index int, x, y, hw, hh, vx float64) testObstacle {
	t.Helper()
	e := ecs.CreateEntity(w)
	dir := 1.0
	if vx < 0 {
		dir = -1
	}
	o := testObstacle{
		entity: e,
		obstacle: &component.Obstacle{
			Index:     index,
			Direction: dir,
			MinX:      testWalls.LeftBound(hw),
			MaxX:      testWalls.RightBound(hw),
		},
		transform: &component.Transform{X: x, Y: y},
		velocity:  &component.Velocity{X: vx},
	}
	require.NoError(t, ecs.Add(w, e, component.ObstacleComponent.Kind(), o.obstacle))
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), o.transform))
	require.NoError(t, ecs.Add(w, e, component.VelocityComponent.Kind(), o.velocity))
	require.NoError(t, ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{HalfWidth: hw, HalfHeight: hh}))
	return o
}
