package scene

import (
	"testing"

	"github.com/san-kum/marble/internal/track"
)

func TestBootstrapDefaults(t *testing.T) {
	s := Bootstrap(nil)

	marble := s.Marble()
	if marble == nil {
		t.Fatal("marble missing after bootstrap")
	}
	if marble.Position.Y() != 2.0 || marble.Position.Z() != -8.0 {
		t.Errorf("unexpected marble start: %v", marble.Position)
	}
	if marble.Velocity.Z() <= 0 {
		t.Errorf("expected initial forward push, got vz %f", marble.Velocity.Z())
	}

	// Track pieces plus marble.
	if len(s.World.Bodies()) != 4 {
		t.Errorf("expected 4 bodies, got %d", len(s.World.Bodies()))
	}
	if s.World.One(track.TagFloor) == nil {
		t.Error("floor missing")
	}
}

func TestBootstrapCameraTrailsMarble(t *testing.T) {
	s := Bootstrap(nil)
	m := s.Marble()

	if s.Camera.Position.Z() >= m.Position.Z() {
		t.Error("camera should start behind the marble")
	}
	if s.Camera.Position.Y() <= m.Position.Y() {
		t.Error("camera should start above the marble")
	}
	if s.Camera.Position.X() != m.Position.X() {
		t.Error("camera should start centered on the marble")
	}
}

func TestLightDirectionPointsDown(t *testing.T) {
	s := Bootstrap(nil)
	dir := s.Light.Direction()

	if dir.Y() >= 0 {
		t.Errorf("sun should shine downward, got %v", dir)
	}
}
