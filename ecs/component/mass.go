package component

// Mass scales gravity for the actor. Acceleration is proportional to mass.
type Mass struct {
	Value float64
}

var MassComponent = NewComponent[Mass]()
