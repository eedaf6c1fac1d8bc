package common

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/padhop/ecs/component"
)

// Overlap reports whether a and b intersect with positive area. Touching
// edges do not count.
func Overlap(a, b cp.BB) bool {
	return a.L < b.R &&
		a.R > b.L &&
		a.B < b.T &&
		a.T > b.B
}

// Classify picks the side of b that a struck, using the axis with the smaller
// penetration. Equal penetrations resolve vertically.
func Classify(a, b cp.BB) component.Side {
	xOverlap := math.Min(math.Abs(a.R-b.L), math.Abs(b.R-a.L))
	yOverlap := math.Min(math.Abs(a.T-b.B), math.Abs(b.T-a.B))

	if xOverlap < yOverlap {
		if a.L < b.L {
			return component.SideLeft
		}
		return component.SideRight
	}
	if a.B < b.B {
		return component.SideBottom
	}
	return component.SideTop
}
