package ecs

import "github.com/milk9111/padhop/ecs/component"

// System updates a world once per tick.
type System interface {
	Update(w *World)
}

// World owns entities, component stores and the per-tick collision queue.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]store

	collisions EventQueue[CollisionEvent]

	actor Entity
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]store)}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity removes every component of e and marks it dead.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e.id())
	}
	if w.actor == e {
		w.actor = 0
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, w.entities.count)
	for i := range w.entities.gen {
		if e, ok := w.entities.entity(entityID(i + 1)); ok {
			out = append(out, e)
		}
	}
	return out
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	return IsAlive(w, e)
}

// SetActor records the controllable actor. There is exactly one per world.
func (w *World) SetActor(e Entity) {
	if w == nil {
		return
	}
	w.actor = e
}

// Actor returns the actor handle set by SetActor.
func (w *World) Actor() Entity {
	if w == nil {
		return 0
	}
	return w.actor
}

// Collisions returns the collision queue for the current tick.
func (w *World) Collisions() *EventQueue[CollisionEvent] {
	if w == nil {
		return nil
	}
	return &w.collisions
}

func (w *World) endTick() {
	w.collisions.flush()
}
