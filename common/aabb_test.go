package common

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/padhop/ecs/component"
	"github.com/stretchr/testify/assert"
)

func box(x, y, hw, hh float64) cp.BB {
	return cp.NewBBForExtents(cp.Vector{X: x, Y: y}, hw, hh)
}

func TestOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b cp.BB
		want bool
	}{
		{"identical", box(0, 0, 5, 5), box(0, 0, 5, 5), true},
		{"partial", box(0, 9, 5, 5), box(0, 0, 5, 5), true},
		{"touching_top_edge", box(0, 10, 5, 5), box(0, 0, 5, 5), false},
		{"touching_side_edge", box(10, 0, 5, 5), box(0, 0, 5, 5), false},
		{"separated", box(0, 11, 5, 5), box(0, 0, 5, 5), false},
		{"contained", box(0, 0, 1, 1), box(0, 0, 5, 5), true},
		{"x_only", box(0, 20, 5, 5), box(3, 0, 5, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlap(tt.a, tt.b))
			assert.Equal(t, Overlap(tt.a, tt.b), Overlap(tt.b, tt.a), "overlap must be symmetric")
		})
	}
}

func TestClassify(t *testing.T) {
	obstacle := box(0, 0, 5, 5)

	tests := []struct {
		name  string
		actor cp.BB
		want  component.Side
	}{
		// 1 unit of vertical and 10 units of horizontal penetration.
		{"landed_on_top", box(0, 9, 5, 5), component.SideTop},
		{"hit_from_below", box(0, -9, 5, 5), component.SideBottom},
		{"hit_left_face", box(-9, 0, 5, 5), component.SideLeft},
		{"hit_right_face", box(9, 0, 5, 5), component.SideRight},
		{"equal_overlap_goes_vertical_top", box(8, 8, 5, 5), component.SideTop},
		{"equal_overlap_goes_vertical_bottom", box(-8, -8, 5, 5), component.SideBottom},
		{"corner_mostly_horizontal", box(-9, 6, 5, 5), component.SideLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, Overlap(tt.actor, obstacle))
			got := Classify(tt.actor, obstacle)
			assert.Equal(t, tt.want, got, "got %s", got)
			assert.Equal(t, got, Classify(tt.actor, obstacle), "classification must be a pure function")
		})
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 2.0, Clamp(1, 2, 3))
	assert.Equal(t, 3.0, Clamp(4, 2, 3))
	assert.Equal(t, 2.5, Clamp(2.5, 2, 3))
}
