package component

// Velocity is in world units per second. Static bodies have none.
type Velocity struct {
	X float64
	Y float64
}

var VelocityComponent = NewComponent[Velocity]()
