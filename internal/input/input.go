// Package input defines the logical steering actions and the per-frame
// snapshot the controllers consume. Concrete key sources (raylib keyboard,
// bubbletea events, websocket clients) live with their frontends and
// implement Source.
package input

// Action is a logical control the player can hold.
type Action int

const (
	SteerLeft Action = iota
	SteerRight
)

// Source answers whether an action is currently held. Implementations are
// polled once per frame.
type Source interface {
	Held(Action) bool
}

// State is one frame's input snapshot.
type State struct {
	Left  bool
	Right bool
}

// Sample reads src into a snapshot. A nil source reads as nothing held.
func Sample(src Source) State {
	if src == nil {
		return State{}
	}
	return State{
		Left:  src.Held(SteerLeft),
		Right: src.Held(SteerRight),
	}
}
