// Package scene assembles the world once: gravity, track, marble, camera
// and lighting, all from the loaded config.
package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/marble/internal/camera"
	"github.com/san-kum/marble/internal/config"
	"github.com/san-kum/marble/internal/control"
	"github.com/san-kum/marble/internal/engine"
	"github.com/san-kum/marble/internal/track"
)

// TagMarble is the role tag of the player-controlled sphere.
const TagMarble = "marble"

// Light carries the sun and ambient parameters for renderer frontends.
type Light struct {
	PitchRad    float64
	YawRad      float64
	Illuminance float64
	Ambient     float64
}

// Direction returns the unit vector the sun shines along.
func (l Light) Direction() mgl64.Vec3 {
	rot := mgl64.QuatRotate(l.YawRad, mgl64.Vec3{0, 1, 0}).
		Mul(mgl64.QuatRotate(l.PitchRad, mgl64.Vec3{1, 0, 0}))
	return rot.Rotate(mgl64.Vec3{0, 0, -1})
}

// Scene is the assembled world plus the controllers that drive it.
type Scene struct {
	World    *engine.World
	Track    track.Pieces
	Camera   *camera.State
	Follow   camera.Follow
	Steering control.Steering
	Light    Light
}

// Marble looks up the marble body. Returns nil when it is absent or
// ambiguous; callers treat that as a no-op frame.
func (s *Scene) Marble() *engine.Body {
	return s.World.One(TagMarble)
}

// Bootstrap builds the scene from cfg. It runs once per session; a nil cfg
// uses the defaults.
func Bootstrap(cfg *config.Config) *Scene {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	w := engine.NewWorld(engine.Params{
		Gravity:  mgl64.Vec3{0, cfg.Physics.GravityY, 0},
		MaxStep:  cfg.Physics.MaxStep,
		Substeps: cfg.Physics.Substeps,
	})

	pieces := track.Build(w, track.Params{
		Width:          cfg.Track.Width,
		Depth:          cfg.Track.Depth,
		FloorThickness: cfg.Track.FloorThickness,
		WallHeight:     cfg.Track.WallHeight,
		WallThickness:  cfg.Track.WallThickness,
		SlopeDeg:       cfg.Track.SlopeDeg,
		FloorFriction:  cfg.Track.FloorFriction,
	})

	// The marble starts elevated over the high end of the slope with a
	// small push downhill so it settles into a roll instead of a drop.
	marble := w.AddSphere(engine.SphereDef{
		Tag:         TagMarble,
		Position:    mgl64.Vec3{0, cfg.Marble.StartY, cfg.Marble.StartZ},
		Velocity:    mgl64.Vec3{0, 0, cfg.Marble.StartPush},
		Radius:      cfg.Marble.Radius,
		Density:     cfg.Marble.Density,
		Friction:    cfg.Marble.Friction,
		Restitution: cfg.Marble.Restitution,
	})

	follow := camera.Follow{
		Offset: mgl64.Vec3{0, cfg.Camera.Height, -cfg.Camera.Distance},
		Look:   mgl64.Vec3{0, -cfg.Camera.LookDown, cfg.Camera.LookAhead},
		Rate:   cfg.Camera.SmoothRate,
	}
	cam := &camera.State{Position: follow.Target(marble.Position)}

	return &Scene{
		World:    w,
		Track:    pieces,
		Camera:   cam,
		Follow:   follow,
		Steering: control.Steering{Force: cfg.Control.Force},
		Light: Light{
			PitchRad:    -0.5,
			YawRad:      0.3,
			Illuminance: 10000,
			Ambient:     300,
		},
	}
}
