package stream

import (
	"sync"
	"time"

	"github.com/san-kum/marble/internal/input"
)

// Remote is the input source fed by websocket steer commands. A direction
// stays held until replaced or until ttl passes without a refresh, so a
// vanished client cannot pin the marble sideways.
type Remote struct {
	mu  sync.Mutex
	dir string
	at  time.Time
	ttl time.Duration
	now func() time.Time
}

func NewRemote(ttl time.Duration) *Remote {
	return &Remote{dir: DirNone, ttl: ttl, now: time.Now}
}

// Steer records a client direction.
func (r *Remote) Steer(dir string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dir = dir
	r.at = r.now()
}

func (r *Remote) Held(a input.Action) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.now().Sub(r.at) > r.ttl {
		return false
	}
	switch a {
	case input.SteerLeft:
		return r.dir == DirLeft
	case input.SteerRight:
		return r.dir == DirRight
	}
	return false
}
