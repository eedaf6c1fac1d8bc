package ecs

import "github.com/milk9111/padhop/ecs/component"

// CollisionEvent is emitted by the detector and consumed by the resolver in
// the same tick.
type CollisionEvent struct {
	ObstacleIndex int
	Obstacle      Entity
	Side          component.Side
}

// EventQueue is a simple FIFO queue.
type EventQueue[T any] struct {
	items []T
}

// Push adds an event.
func (q *EventQueue[T]) Push(evt T) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue[T]) Drain() []T {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len reports the number of pending events.
func (q *EventQueue[T]) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue[T]) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
