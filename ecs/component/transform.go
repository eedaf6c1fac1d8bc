package component

import "github.com/jakecoffman/cp"

// Transform is the centre position of a body in world units, y up.
type Transform struct {
	X float64
	Y float64
}

func (t Transform) Vector() cp.Vector {
	return cp.Vector{X: t.X, Y: t.Y}
}

var TransformComponent = NewComponent[Transform]()
