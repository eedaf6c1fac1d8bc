package component

// ActorState is the per-tick contact state of the actor.
//
// Grounded is re-derived every tick by the collision detector and the bounds
// resolver. While it is true the actor's vertical velocity is zero and its
// bottom edge rests on the floor or an obstacle top.
type ActorState struct {
	Grounded bool
	// RideAlong is the horizontal velocity handed over by the last top
	// contact with a moving obstacle. The controller adds it back on top of
	// the intent speed and clears it.
	RideAlong float64
}

var ActorStateComponent = NewComponent[ActorState]()
