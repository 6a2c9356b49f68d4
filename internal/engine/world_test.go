package engine

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestFreeFall(t *testing.T) {
	w := NewWorld(Params{
		Gravity:  mgl64.Vec3{0, -10, 0},
		MaxStep:  1.0,
		Substeps: 1,
	})
	s := w.AddSphere(SphereDef{Tag: "ball", Position: mgl64.Vec3{0, 10, 0}})

	w.Step(0.1)

	if math.Abs(s.Velocity.Y()+1.0) > 1e-9 {
		t.Errorf("expected vy -1.0, got %f", s.Velocity.Y())
	}
	if math.Abs(s.Position.Y()-9.9) > 1e-9 {
		t.Errorf("expected y 9.9, got %f", s.Position.Y())
	}
}

func TestStepClampsToMaxStep(t *testing.T) {
	w := NewWorld(Params{
		Gravity:  mgl64.Vec3{0, -9.81, 0},
		MaxStep:  1.0 / 60.0,
		Substeps: 4,
	})
	s := w.AddSphere(SphereDef{Tag: "ball", Position: mgl64.Vec3{0, 100, 0}})

	// A stalled 10 second frame must advance at most one max step.
	w.Step(10.0)

	want := -9.81 / 60.0
	if math.Abs(s.Velocity.Y()-want) > 1e-9 {
		t.Errorf("expected vy %f, got %f", want, s.Velocity.Y())
	}
}

func TestSphereRestsOnFloor(t *testing.T) {
	w := NewWorld(DefaultParams())
	w.AddBox(BoxDef{
		Tag:         "floor",
		HalfExtents: mgl64.Vec3{5, 0.2, 5},
		Friction:    0.4,
	})
	s := w.AddSphere(SphereDef{
		Tag:      "ball",
		Position: mgl64.Vec3{0, 0.7, 0},
		Radius:   0.5,
		Friction: 0.5,
	})

	for i := 0; i < 120; i++ {
		w.Step(1.0 / 60.0)
	}

	if math.Abs(s.Position.Y()-0.7) > 1e-3 {
		t.Errorf("expected resting y 0.7, got %f", s.Position.Y())
	}
	if math.Abs(s.Velocity.Y()) > 1e-3 {
		t.Errorf("expected settled vy, got %f", s.Velocity.Y())
	}
}

func TestBounceReflectsNormalVelocity(t *testing.T) {
	w := NewWorld(Params{
		Gravity:  mgl64.Vec3{0, 0, 0},
		MaxStep:  1.0 / 60.0,
		Substeps: 1,
	})
	w.AddBox(BoxDef{
		Tag:         "floor",
		HalfExtents: mgl64.Vec3{5, 0.2, 5},
		Restitution: 1.0,
	})
	s := w.AddSphere(SphereDef{
		Tag:         "ball",
		Position:    mgl64.Vec3{0, 0.71, 0},
		Velocity:    mgl64.Vec3{0, -5, 0},
		Radius:      0.5,
		Restitution: 1.0,
	})

	w.Step(1.0 / 60.0)

	if s.Velocity.Y() <= 0 {
		t.Errorf("expected upward rebound, got vy %f", s.Velocity.Y())
	}
	if math.Abs(s.Position.Y()-0.7) > 1e-9 {
		t.Errorf("expected push-out to y 0.7, got %f", s.Position.Y())
	}
}

func TestRollingDownSlopeGainsForwardSpeed(t *testing.T) {
	w := NewWorld(DefaultParams())
	slope := mgl64.QuatRotate(mgl64.DegToRad(5), mgl64.Vec3{1, 0, 0})
	w.AddBox(BoxDef{
		Tag:         "floor",
		Rotation:    slope,
		HalfExtents: mgl64.Vec3{4, 0.2, 10},
		Friction:    0.4,
	})
	s := w.AddSphere(SphereDef{
		Tag:      "ball",
		Position: mgl64.Vec3{0, 2, -8},
		Radius:   0.5,
		Friction: 0.5,
	})

	for i := 0; i < 60; i++ {
		w.Step(1.0 / 60.0)
	}

	if s.Position.Z() <= -8 {
		t.Errorf("expected forward progress, got z %f", s.Position.Z())
	}
	if s.Velocity.Z() <= 0 {
		t.Errorf("expected forward velocity, got vz %f", s.Velocity.Z())
	}
	if math.Abs(s.Velocity.X()) > 1e-6 {
		t.Errorf("expected no lateral drift, got vx %f", s.Velocity.X())
	}
}

func TestOne(t *testing.T) {
	w := NewWorld(DefaultParams())

	if w.One("ball") != nil {
		t.Error("expected nil for absent tag")
	}

	s := w.AddSphere(SphereDef{Tag: "ball"})
	if w.One("ball") != s {
		t.Error("expected the single tagged body")
	}

	w.AddSphere(SphereDef{Tag: "ball"})
	if w.One("ball") != nil {
		t.Error("expected nil for ambiguous tag")
	}
}
