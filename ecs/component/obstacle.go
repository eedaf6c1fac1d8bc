package component

// Obstacle is a moving block patrolling horizontally between MinX and MaxX.
type Obstacle struct {
	// Index is the position of the obstacle in the level's obstacle list.
	Index int
	// Direction is +1 while travelling right and -1 while travelling left.
	Direction float64
	MinX      float64
	MaxX      float64
}

var ObstacleComponent = NewComponent[Obstacle]()
