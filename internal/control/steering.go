// Package control turns the sampled steering input into marble motion.
package control

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/marble/internal/engine"
	"github.com/san-kum/marble/internal/input"
)

// Steering overwrites the marble's lateral velocity from the held steer
// actions. The override is direct, no ramp: holding a key pins the lateral
// speed at Force, releasing it stops lateral drift on the next frame.
type Steering struct {
	Force float64
}

// Apply sets the marble's X velocity for this frame's input. Left steers
// toward +X, right toward -X, both or neither cancel to zero. Vertical and
// forward velocity are left to the physics step. A nil marble is a no-op.
func (s Steering) Apply(marble *engine.Body, in input.State) {
	if marble == nil {
		return
	}
	var lateral float64
	switch {
	case in.Left && !in.Right:
		lateral = s.Force
	case in.Right && !in.Left:
		lateral = -s.Force
	}
	v := marble.Velocity
	marble.Velocity = mgl64.Vec3{lateral, v.Y(), v.Z()}
}
