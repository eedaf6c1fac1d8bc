package entity

import (
	"errors"
	"fmt"

	"github.com/milk9111/padhop/ecs"
	"github.com/milk9111/padhop/ecs/component"
	"github.com/milk9111/padhop/levels"
)

type WallLocation int

const (
	WallBottom WallLocation = iota
	WallLeft
	WallRight
)

func (l WallLocation) String() string {
	switch l {
	case WallBottom:
		return "bottom"
	case WallLeft:
		return "left"
	case WallRight:
		return "right"
	default:
		return "unknown"
	}
}

// NewWall spawns a static wall body. Walls carry no velocity, so only the
// presentation layer reads them; the bounds resolver clamps against the level
// walls directly.
func NewWall(w *ecs.World, walls levels.WallSpec, loc WallLocation) (ecs.Entity, error) {
	width := walls.Width()
	if width <= 0 {
		return 0, fmt.Errorf("wall %s: level width %.2f must be positive", loc, width)
	}

	var t component.Transform
	var c component.Collider
	switch loc {
	case WallBottom:
		t = component.Transform{X: (walls.LeftX + walls.RightX) / 2, Y: walls.BottomY}
		c = component.Collider{HalfWidth: (width + walls.Thickness) / 2, HalfHeight: walls.Thickness / 2}
	case WallLeft, WallRight:
		x := walls.LeftX
		if loc == WallRight {
			x = walls.RightX
		}
		t = component.Transform{X: x, Y: walls.BottomY + width/2}
		c = component.Collider{HalfWidth: walls.Thickness / 2, HalfHeight: (width + walls.Thickness) / 2}
	default:
		return 0, fmt.Errorf("wall %s: unknown location", loc)
	}

	e := ecs.CreateEntity(w)
	err := errors.Join(
		ecs.Add(w, e, component.WallTagComponent.Kind(), &component.WallTag{}),
		ecs.Add(w, e, component.TransformComponent.Kind(), &t),
		ecs.Add(w, e, component.ColliderComponent.Kind(), &c),
	)
	if err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("wall %s: %w", loc, err)
	}
	return e, nil
}
