package component

import "github.com/jakecoffman/cp"

// Collider is an axis-aligned box centred on the entity's Transform.
type Collider struct {
	HalfWidth  float64
	HalfHeight float64
}

// BB returns the collider's bounding box at t.
func (c Collider) BB(t Transform) cp.BB {
	return cp.NewBBForExtents(t.Vector(), c.HalfWidth, c.HalfHeight)
}

var ColliderComponent = NewComponent[Collider]()
