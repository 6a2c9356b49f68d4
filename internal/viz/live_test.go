package viz

import (
	"testing"

	"github.com/san-kum/marble/internal/input"
)

func TestKeyHoldExpires(t *testing.T) {
	k := &keyHold{}

	if k.Held(input.SteerLeft) {
		t.Error("no press yet")
	}

	k.press(input.SteerLeft)
	if !k.Held(input.SteerLeft) {
		t.Error("press should register as held")
	}

	for i := 0; i < holdFrames; i++ {
		k.tick()
	}
	if k.Held(input.SteerLeft) {
		t.Error("hold should expire after the countdown")
	}
}

func TestKeyHoldRefreshedByRepeat(t *testing.T) {
	k := &keyHold{}
	k.press(input.SteerRight)

	for i := 0; i < holdFrames-1; i++ {
		k.tick()
	}
	k.press(input.SteerRight)

	for i := 0; i < holdFrames-1; i++ {
		k.tick()
	}
	if !k.Held(input.SteerRight) {
		t.Error("repeat press should keep the key held")
	}
}

func TestRecordSpeedBounded(t *testing.T) {
	m := NewModel(nil)
	for i := 0; i < historyCapacity+50; i++ {
		m.recordSpeed()
	}
	if len(m.speeds) > historyCapacity {
		t.Errorf("speed history exceeded capacity: %d", len(m.speeds))
	}
}
