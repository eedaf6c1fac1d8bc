package system

import (
	"fmt"
	"testing"

	"github.com/milk9111/padhop/ecs"
	"github.com/milk9111/padhop/ecs/component"
	"github.com/milk9111/padhop/levels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recoverMessage(fn func()) (msg string) {
	defer func() {
		if r := recover(); r != nil {
			msg = fmt.Sprint(r)
		}
	}()
	fn()
	return ""
}

func TestStagesAbortWithoutActor(t *testing.T) {
	stages := map[string]ecs.System{
		"controller": NewControllerSystem(levels.ActorSpec{}),
		"gravity":    NewGravitySystem(9.8, 0.02),
		"motion":     NewMotionSystem(0.02),
		"collision":  NewCollisionSystem(),
		"bounds":     NewBoundsSystem(testWalls),
		"goal":       NewGoalSystem(nil),
	}

	for name, stage := range stages {
		t.Run(name, func(t *testing.T) {
			w := ecs.NewWorld()
			msg := recoverMessage(func() { stage.Update(w) })
			require.NotEmpty(t, msg, "stage must not silently skip the tick")
			assert.Contains(t, msg, name+" system: actor")
			assert.Contains(t, msg, "not alive")
		})
	}
}

func TestStageReportsMissingActorComponent(t *testing.T) {
	w := ecs.NewWorld()
	a := newActor(t, w, 0, 0, 15, 40)
	require.True(t, ecs.Remove(w, a.entity, component.MassComponent.Kind()))

	msg := recoverMessage(func() { NewGravitySystem(9.8, 0.02).Update(w) })
	assert.Contains(t, msg, "gravity system")
	assert.Contains(t, msg, "component.Mass")
}

func TestResolverWithDeadActorPanics(t *testing.T) {
	w := ecs.NewWorld()
	a := newActor(t, w, 0, 9, 5, 40)
	ob := newObstacle(t, w, 0, 0, 0, 5, 5, 0)
	w.Collisions().Push(ecs.CollisionEvent{Obstacle: ob.entity, Side: component.SideTop})
	require.True(t, ecs.DestroyEntity(w, a.entity))

	msg := recoverMessage(func() { NewResolverSystem().Update(w) })
	assert.Contains(t, msg, "resolver system")
}
