package engine

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Contacts slower than this along the normal do not bounce; the marble
// settles instead of jittering on the floor.
const restThreshold = 0.5

// resolveSphereBox pushes sphere s out of box b and applies the contact
// impulse. Positions resolve immediately; the velocity change is visible to
// the next substep.
func resolveSphereBox(s, b *Body, h float64) {
	inv := b.Rotation.Conjugate()
	local := inv.Rotate(s.Position.Sub(b.Position))

	closest := mgl64.Vec3{
		clamp(local.X(), -b.HalfExtents.X(), b.HalfExtents.X()),
		clamp(local.Y(), -b.HalfExtents.Y(), b.HalfExtents.Y()),
		clamp(local.Z(), -b.HalfExtents.Z(), b.HalfExtents.Z()),
	}

	delta := local.Sub(closest)
	dist := delta.Len()
	if dist >= s.Radius {
		return
	}

	var normalLocal mgl64.Vec3
	if dist > 1e-9 {
		normalLocal = delta.Mul(1 / dist)
	} else {
		// Center inside the box; push up along the box's local Y.
		normalLocal = mgl64.Vec3{0, 1, 0}
	}
	normal := b.Rotation.Rotate(normalLocal)

	s.Position = s.Position.Add(normal.Mul(s.Radius - dist))

	vn := s.Velocity.Dot(normal)
	if vn < 0 {
		e := s.Restitution * b.Restitution
		if -vn < restThreshold {
			e = 0
		}
		s.Velocity = s.Velocity.Sub(normal.Mul((1 + e) * vn))
	}

	// Tangential friction damps sliding, then the tangential speed fixes
	// the rolling angular velocity.
	mu := math.Sqrt(s.Friction * b.Friction)
	vn = s.Velocity.Dot(normal)
	tangent := s.Velocity.Sub(normal.Mul(vn))
	tangent = tangent.Mul(1 / (1 + mu*h))
	s.Velocity = normal.Mul(vn).Add(tangent)

	if s.Radius > 0 {
		s.AngularVelocity = normal.Cross(tangent).Mul(1 / s.Radius)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
