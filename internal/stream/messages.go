package stream

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Message types on the wire. The server sends init once per connection and
// state at the stream interval; clients send steer commands.
const (
	TypeInit  = "init"
	TypeState = "state"
	TypeSteer = "steer"
)

// Steer directions accepted from clients.
const (
	DirLeft  = "left"
	DirRight = "right"
	DirNone  = "none"
)

var (
	ErrUnknownMessage = errors.New("stream: unknown message type")
	ErrBadDirection   = errors.New("stream: bad steer direction")
)

// InitMessage describes the track so clients can draw it.
type InitMessage struct {
	Type     string  `json:"type"`
	Width    float64 `json:"width"`
	Depth    float64 `json:"depth"`
	SlopeDeg float64 `json:"slope_deg"`
	Radius   float64 `json:"radius"`
}

// StateMessage is one frame of marble and camera state.
type StateMessage struct {
	Type     string     `json:"type"`
	Time     float64    `json:"time"`
	Position [3]float64 `json:"position"`
	Velocity [3]float64 `json:"velocity"`
	Camera   [3]float64 `json:"camera"`
}

// SteerCommand is a client's steering intent. It stays in effect until
// replaced or until it goes stale.
type SteerCommand struct {
	Type      string `json:"type"`
	Direction string `json:"direction"`
}

// DecodeCommand parses a client message, accepting only steer commands
// with a known direction.
func DecodeCommand(data []byte) (SteerCommand, error) {
	var cmd SteerCommand
	if err := json.Unmarshal(data, &cmd); err != nil {
		return SteerCommand{}, fmt.Errorf("stream: decode command: %w", err)
	}
	if cmd.Type != TypeSteer {
		return SteerCommand{}, fmt.Errorf("%w: %q", ErrUnknownMessage, cmd.Type)
	}
	switch cmd.Direction {
	case DirLeft, DirRight, DirNone:
		return cmd, nil
	default:
		return SteerCommand{}, fmt.Errorf("%w: %q", ErrBadDirection, cmd.Direction)
	}
}
