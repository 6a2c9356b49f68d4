package engine

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Params configures the world integration.
type Params struct {
	Gravity  mgl64.Vec3
	MaxStep  float64
	Substeps int
}

// DefaultParams returns standard earth gravity with a 60 Hz step bound.
func DefaultParams() Params {
	return Params{
		Gravity:  mgl64.Vec3{0, -9.81, 0},
		MaxStep:  1.0 / 60.0,
		Substeps: 4,
	}
}

// World owns the bodies and advances them with semi-implicit Euler steps.
// It is not safe for concurrent use; callers drive it from a single loop.
type World struct {
	params Params
	bodies []*Body
}

func NewWorld(p Params) *World {
	if p.MaxStep <= 0 {
		p.MaxStep = 1.0 / 60.0
	}
	if p.Substeps <= 0 {
		p.Substeps = 1
	}
	return &World{params: p}
}

// AddSphere creates a dynamic sphere from def and returns its body handle.
func (w *World) AddSphere(def SphereDef) *Body {
	def.applyDefaults()
	b := &Body{
		Tag:         def.Tag,
		Kind:        KindSphere,
		Position:    def.Position,
		Rotation:    mgl64.QuatIdent(),
		Velocity:    def.Velocity,
		Radius:      def.Radius,
		Friction:    def.Friction,
		Restitution: def.Restitution,
		Mass:        def.Density * (4.0 / 3.0) * math.Pi * def.Radius * def.Radius * def.Radius,
	}
	w.bodies = append(w.bodies, b)
	return b
}

// AddBox creates a static oriented box from def and returns its body handle.
func (w *World) AddBox(def BoxDef) *Body {
	def.applyDefaults()
	b := &Body{
		Tag:         def.Tag,
		Kind:        KindBox,
		Static:      true,
		Position:    def.Position,
		Rotation:    def.Rotation,
		HalfExtents: def.HalfExtents,
		Friction:    def.Friction,
		Restitution: def.Restitution,
	}
	w.bodies = append(w.bodies, b)
	return b
}

// One returns the body carrying tag when exactly one body does, otherwise
// nil. Controllers treat a nil handle as a per-frame no-op.
func (w *World) One(tag string) *Body {
	var found *Body
	for _, b := range w.bodies {
		if b.Tag != tag {
			continue
		}
		if found != nil {
			return nil
		}
		found = b
	}
	return found
}

// Bodies returns the live body slice for iteration by renderers.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Step advances the simulation by dt seconds. dt is clamped to MaxStep and
// split into Substeps fixed substeps so a stalled frame cannot tunnel the
// marble through the track.
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}
	if dt > w.params.MaxStep {
		dt = w.params.MaxStep
	}
	h := dt / float64(w.params.Substeps)
	for i := 0; i < w.params.Substeps; i++ {
		w.substep(h)
	}
}

func (w *World) substep(h float64) {
	for _, b := range w.bodies {
		if b.Static {
			continue
		}
		b.Velocity = b.Velocity.Add(w.params.Gravity.Mul(h))
		b.Position = b.Position.Add(b.Velocity.Mul(h))
	}
	for _, b := range w.bodies {
		if b.Static || b.Kind != KindSphere {
			continue
		}
		for _, other := range w.bodies {
			if other == b || other.Kind != KindBox {
				continue
			}
			resolveSphereBox(b, other, h)
		}
	}
}
