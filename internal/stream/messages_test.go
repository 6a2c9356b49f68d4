package stream

import (
	"errors"
	"testing"
)

func TestDecodeCommand(t *testing.T) {
	cmd, err := DecodeCommand([]byte(`{"type":"steer","direction":"left"}`))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if cmd.Direction != DirLeft {
		t.Errorf("expected left, got %q", cmd.Direction)
	}
}

func TestDecodeCommandUnknownType(t *testing.T) {
	_, err := DecodeCommand([]byte(`{"type":"teleport"}`))
	if !errors.Is(err, ErrUnknownMessage) {
		t.Errorf("expected ErrUnknownMessage, got %v", err)
	}
}

func TestDecodeCommandBadDirection(t *testing.T) {
	_, err := DecodeCommand([]byte(`{"type":"steer","direction":"up"}`))
	if !errors.Is(err, ErrBadDirection) {
		t.Errorf("expected ErrBadDirection, got %v", err)
	}
}

func TestDecodeCommandMalformed(t *testing.T) {
	if _, err := DecodeCommand([]byte(`{`)); err == nil {
		t.Error("expected error for malformed json")
	}
}
