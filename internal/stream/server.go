// Package stream serves the simulation over websockets: state frames out
// at a fixed interval, steer commands in from any connected client.
package stream

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/san-kum/marble/internal/config"
	"github.com/san-kum/marble/internal/scene"
	"github.com/san-kum/marble/internal/sim"
)

const (
	streamInterval = time.Second / 30
	steerTTL       = 300 * time.Millisecond
)

// client wraps a connection with a write lock; the stream ticker and the
// per-connection reader both write to it.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) writeJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

// Server runs the simulation loop and fans its state out to websocket
// clients.
type Server struct {
	cfg    *config.Config
	loop   *sim.Loop
	remote *Remote

	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
	elapsed float64
}

func NewServer(cfg *config.Config) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	remote := NewRemote(steerTTL)
	return &Server{
		cfg:    cfg,
		loop:   &sim.Loop{Scene: scene.Bootstrap(cfg), Input: remote},
		remote: remote,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*client]struct{}),
	}
}

// Run serves websocket clients on addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)

	srv := &http.Server{Addr: addr, Handler: mux}

	go s.tickLoop(ctx)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Printf("[Stream] listening on %s", addr)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) tickLoop(ctx context.Context) {
	ticker := time.NewTicker(streamInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			dt := streamInterval.Seconds()
			s.loop.Step(dt)
			s.mu.Lock()
			s.elapsed += dt
			s.mu.Unlock()
			s.broadcast(s.stateMessage())
		}
	}
}

func (s *Server) stateMessage() StateMessage {
	msg := StateMessage{Type: TypeState}
	s.mu.Lock()
	msg.Time = s.elapsed
	s.mu.Unlock()

	if m := s.loop.Scene.Marble(); m != nil {
		msg.Position = m.Position
		msg.Velocity = m.Velocity
	}
	msg.Camera = s.loop.Scene.Camera.Position
	return msg
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Stream] upgrade failed: %v", err)
		return
	}
	c := &client{conn: conn}

	s.mu.Lock()
	s.clients[c] = struct{}{}
	n := len(s.clients)
	s.mu.Unlock()
	log.Printf("[Stream] client connected (%d total)", n)

	c.writeJSON(InitMessage{
		Type:     TypeInit,
		Width:    s.cfg.Track.Width,
		Depth:    s.cfg.Track.Depth,
		SlopeDeg: s.cfg.Track.SlopeDeg,
		Radius:   s.cfg.Marble.Radius,
	})

	go s.readLoop(c)
}

func (s *Server) readLoop(c *client) {
	defer s.drop(c)
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		cmd, err := DecodeCommand(data)
		if err != nil {
			log.Printf("[Stream] rejected command: %v", err)
			continue
		}
		s.remote.Steer(cmd.Direction)
	}
}

func (s *Server) drop(c *client) {
	s.mu.Lock()
	delete(s.clients, c)
	n := len(s.clients)
	s.mu.Unlock()
	c.conn.Close()
	log.Printf("[Stream] client disconnected (%d total)", n)
}

func (s *Server) broadcast(msg StateMessage) {
	s.mu.Lock()
	targets := make([]*client, 0, len(s.clients))
	for c := range s.clients {
		targets = append(targets, c)
	}
	s.mu.Unlock()

	for _, c := range targets {
		if err := c.writeJSON(msg); err != nil {
			s.drop(c)
		}
	}
}
