package stream

import (
	"testing"
	"time"

	"github.com/san-kum/marble/internal/input"
)

func TestRemoteSteer(t *testing.T) {
	r := NewRemote(300 * time.Millisecond)

	if r.Held(input.SteerLeft) || r.Held(input.SteerRight) {
		t.Error("fresh remote should hold nothing")
	}

	r.Steer(DirLeft)
	if !r.Held(input.SteerLeft) {
		t.Error("left should be held after steer")
	}
	if r.Held(input.SteerRight) {
		t.Error("right should not be held")
	}

	r.Steer(DirNone)
	if r.Held(input.SteerLeft) {
		t.Error("none should release the hold")
	}
}

func TestRemoteGoesStale(t *testing.T) {
	r := NewRemote(300 * time.Millisecond)

	now := time.Now()
	r.now = func() time.Time { return now }
	r.Steer(DirRight)

	if !r.Held(input.SteerRight) {
		t.Fatal("right should be held")
	}

	r.now = func() time.Time { return now.Add(time.Second) }
	if r.Held(input.SteerRight) {
		t.Error("hold should expire after the ttl")
	}
}
