// Package camera implements the trailing chase camera. The camera position
// is smoothed toward an offset behind and above the marble; the view
// direction is a fixed forward and slightly downward bias, so the camera
// never yaws toward the marble's lateral position.
package camera

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/marble/internal/engine"
)

// State is the mutable camera pose.
type State struct {
	Position mgl64.Vec3
}

// Follow is the tracking behavior. Offset trails the marble (positive Y,
// negative Z); Look is added to the camera position to form the look
// target (positive Z ahead, negative Y down). Rate is the exponential
// smoothing rate in 1/seconds.
type Follow struct {
	Offset mgl64.Vec3
	Look   mgl64.Vec3
	Rate   float64
}

// Target returns the ideal camera position for a marble at pos: centered on
// the marble laterally, trailing by the offset.
func (f Follow) Target(pos mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		pos.X(),
		pos.Y() + f.Offset.Y(),
		pos.Z() + f.Offset.Z(),
	}
}

// Update moves the camera a fraction of the way toward the marble's target
// position. The fraction rate*dt is clamped to [0,1] so the camera closes in
// at any frame rate without overshooting. A nil camera or marble is a no-op.
func (f Follow) Update(cam *State, marble *engine.Body, dt float64) {
	if cam == nil || marble == nil {
		return
	}
	t := f.Rate * dt
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	target := f.Target(marble.Position)
	cam.Position = cam.Position.Add(target.Sub(cam.Position).Mul(t))
}

// LookTarget returns the point the camera faces: its own position plus the
// fixed look bias. Depends only on the camera pose, never on the marble.
func (f Follow) LookTarget(cam State) mgl64.Vec3 {
	return cam.Position.Add(f.Look)
}

// Orientation derives the camera rotation facing the look target.
func (f Follow) Orientation(cam State) mgl64.Quat {
	return mgl64.QuatLookAtV(cam.Position, f.LookTarget(cam), mgl64.Vec3{0, 1, 0})
}
