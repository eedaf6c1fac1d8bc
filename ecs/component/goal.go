package component

// Goal marks a target position. The actor reaches it when the distance between
// their centres drops below Radius.
type Goal struct {
	Radius float64
}

var GoalComponent = NewComponent[Goal]()

type GoalState struct {
	Reached bool
	// Ticks counts consecutive ticks the goal has stayed reached.
	Ticks int
}

var GoalStateComponent = NewComponent[GoalState]()
