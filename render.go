package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/padhop/ecs"
	"github.com/milk9111/padhop/ecs/component"
	"github.com/milk9111/padhop/sim"
)

var (
	wallColor     = color.RGBA{R: 204, G: 204, B: 204, A: 255}
	actorColor    = color.RGBA{R: 128, G: 128, B: 255, A: 255}
	obstacleColor = color.RGBA{R: 110, G: 200, B: 140, A: 255}
	goalColor     = color.RGBA{R: 255, G: 128, B: 128, A: 255}
	groundedColor = color.RGBA{R: 255, G: 220, B: 0, A: 255}
)

// DrawWorld draws every collider as a filled rectangle. World space has its
// origin at the screen centre and y pointing up.
func DrawWorld(screen *ebiten.Image, s *sim.Simulation, debug bool) {
	w := s.World()
	bounds := screen.Bounds()
	ox := float64(bounds.Dx()) / 2
	oy := float64(bounds.Dy()) / 2

	fill := func(x, y, hw, hh float64, clr color.Color) {
		vector.FillRect(screen, float32(ox+x-hw), float32(oy-(y+hh)), float32(2*hw), float32(2*hh), clr, false)
	}

	ecs.ForEach3(w, component.WallTagComponent.Kind(), component.TransformComponent.Kind(), component.ColliderComponent.Kind(), func(_ ecs.Entity, _ *component.WallTag, t *component.Transform, c *component.Collider) {
		fill(t.X, t.Y, c.HalfWidth, c.HalfHeight, wallColor)
	})

	for _, ob := range s.Obstacles() {
		fill(ob.X, ob.Y, ob.HalfWidth, ob.HalfHeight, obstacleColor)
	}

	actor := s.Actor()
	ecs.ForEach2(w, component.GoalComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.Goal, t *component.Transform) {
		fill(t.X, t.Y, actor.HalfWidth, actor.HalfHeight, goalColor)
	})

	fill(actor.X, actor.Y, actor.HalfWidth, actor.HalfHeight, actorColor)

	if debug && actor.Grounded {
		x := ox + actor.X - actor.HalfWidth
		y := oy - (actor.Y - actor.HalfHeight)
		vector.StrokeLine(screen, float32(x), float32(y), float32(x+2*actor.HalfWidth), float32(y), 2, groundedColor, false)
	}
}
