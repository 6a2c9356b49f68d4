package engine

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Kind identifies the collision shape of a body.
type Kind int

const (
	KindSphere Kind = iota
	KindBox
)

// Body is a rigid body tracked by the world. Static bodies never move;
// dynamic bodies are integrated each substep. Position and velocity may be
// read or overwritten between steps; overwrites take effect on the next step.
type Body struct {
	Tag    string
	Kind   Kind
	Static bool

	Position        mgl64.Vec3
	Rotation        mgl64.Quat
	Velocity        mgl64.Vec3
	AngularVelocity mgl64.Vec3

	// Sphere shape.
	Radius float64
	// Box shape, half extents along the local axes.
	HalfExtents mgl64.Vec3

	Friction    float64
	Restitution float64
	Mass        float64
}

// SphereDef describes a dynamic sphere. Zero-valued fields fall back to
// workable defaults so callers only set what they care about.
type SphereDef struct {
	Tag         string
	Position    mgl64.Vec3
	Velocity    mgl64.Vec3
	Radius      float64
	Density     float64
	Friction    float64
	Restitution float64
}

func (d *SphereDef) applyDefaults() {
	if d.Radius <= 0 {
		d.Radius = 0.5
	}
	if d.Density <= 0 {
		d.Density = 1.0
	}
}

// BoxDef describes a static oriented box.
type BoxDef struct {
	Tag         string
	Position    mgl64.Vec3
	Rotation    mgl64.Quat
	HalfExtents mgl64.Vec3
	Friction    float64
	Restitution float64
}

func (d *BoxDef) applyDefaults() {
	if d.Rotation.Len() == 0 {
		d.Rotation = mgl64.QuatIdent()
	}
}
