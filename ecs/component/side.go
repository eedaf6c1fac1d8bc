package component

// Side names the face of an obstacle the actor struck, seen from the actor:
// SideTop means the actor landed on the obstacle.
type Side uint8

const (
	SideLeft Side = iota + 1
	SideRight
	SideTop
	SideBottom
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	default:
		return "none"
	}
}
