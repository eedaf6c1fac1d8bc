package system

import (
	"fmt"

	"github.com/milk9111/padhop/ecs"
	"github.com/milk9111/padhop/ecs/component"
)

// mustActor returns the world's actor handle. A missing or dead actor breaks
// every stage's assumptions, so it aborts the tick.
func mustActor(w *ecs.World, stage string) ecs.Entity {
	e := w.Actor()
	if !e.Valid() || !w.IsAlive(e) {
		panic(fmt.Sprintf("%s system: actor %s is not alive", stage, e))
	}
	return e
}

func mustGet[T any](w *ecs.World, e ecs.Entity, handle component.ComponentHandle[T], stage string) *T {
	v, ok := ecs.Get(w, e, handle.Kind())
	if !ok {
		var zero T
		panic(fmt.Sprintf("%s system: actor %s: missing %T", stage, e, zero))
	}
	return v
}
