package system

import (
	"testing"

	"github.com/milk9111/padhop/ecs"
	"github.com/milk9111/padhop/ecs/component"
	"github.com/milk9111/padhop/levels"
	"github.com/stretchr/testify/assert"
)

func TestControllerAppliesIntent(t *testing.T) {
	spec := levels.ActorSpec{Speed: 400, JumpForce: 230}

	tests := []struct {
		name         string
		intent       component.Intent
		grounded     bool
		rideAlong    float64
		wantVX       float64
		wantVY       float64
		wantGrounded bool
	}{
		{"idle", component.Intent{}, true, 0, 0, 0, true},
		{"left", component.Intent{MoveLeft: true}, true, 0, -400, 0, true},
		{"right", component.Intent{MoveRight: true}, true, 0, 400, 0, true},
		{"left_wins_over_right", component.Intent{MoveLeft: true, MoveRight: true}, true, 0, -400, 0, true},
		{"jump_grounded", component.Intent{JumpPressed: true}, true, 0, 0, 230, false},
		{"jump_airborne_ignored", component.Intent{JumpPressed: true}, false, 0, 0, -7, false},
		{"ride_along_kept", component.Intent{MoveRight: true}, true, -60, 340, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld()
			a := newActor(t, w, 0, 0, 15, 40)
			*a.intent = tt.intent
			a.state.Grounded = tt.grounded
			a.state.RideAlong = tt.rideAlong
			a.velocity.X = 999
			if !tt.grounded {
				a.velocity.Y = -7
			}

			NewControllerSystem(spec).Update(w)

			assert.Equal(t, tt.wantVX, a.velocity.X)
			assert.Equal(t, tt.wantVY, a.velocity.Y)
			assert.Equal(t, tt.wantGrounded, a.state.Grounded)
			assert.Zero(t, a.state.RideAlong)
		})
	}
}
