// Package sim drives the per-frame update. The ordering is fixed: sample
// input, advance physics, apply steering, move the camera. Steering writes
// velocity after the step, so the next step consumes it; the camera always
// sees the marble transform produced by this frame's step.
package sim

import (
	"context"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/marble/internal/input"
	"github.com/san-kum/marble/internal/scene"
)

// Loop ties a scene to an input source.
type Loop struct {
	Scene *scene.Scene
	Input input.Source
}

// Step advances one logical frame by dt seconds.
func (l *Loop) Step(dt float64) {
	in := input.Sample(l.Input)
	l.Scene.World.Step(dt)
	l.Scene.Steering.Apply(l.Scene.Marble(), in)
	l.Scene.Follow.Update(l.Scene.Camera, l.Scene.Marble(), dt)
}

// Frame is the marble state after one loop step, handed to Run callbacks.
type Frame struct {
	Index    int
	Time     float64
	Position mgl64.Vec3
	Velocity mgl64.Vec3
}

// Run steps the loop frames times at a fixed dt, invoking onFrame after
// each step. Returns early if ctx is cancelled.
func (l *Loop) Run(ctx context.Context, frames int, dt float64, onFrame func(Frame)) error {
	for i := 0; i < frames; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		l.Step(dt)
		if onFrame == nil {
			continue
		}
		f := Frame{Index: i, Time: float64(i+1) * dt}
		if m := l.Scene.Marble(); m != nil {
			f.Position = m.Position
			f.Velocity = m.Velocity
		}
		onFrame(f)
	}
	return nil
}
