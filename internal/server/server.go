// Package server streams generated levels to websocket clients and serves
// single levels over plain HTTP.
package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"cave-golf/internal/level"

	"github.com/coder/websocket"
)

// Server hands out levels. The current level is shared by every client;
// NextLevel swaps in a pregenerated one and broadcasts it.
type Server struct {
	cfg    level.Config
	hub    *Hub
	meshes bool
	seq    atomic.Uint64

	mu      sync.Mutex
	current *level.Level
	next    *level.Pregenerator
}

// New generates the first level for cfg. With meshes set, broadcast levels
// carry their render meshes.
func New(cfg level.Config, meshes bool) (*Server, error) {
	l, err := level.Generate(cfg)
	if err != nil {
		return nil, err
	}
	s := &Server{cfg: cfg, hub: NewHub(), meshes: meshes, current: l}
	s.prefetch()
	return s, nil
}

func (s *Server) prefetch() {
	cfg := s.cfg
	cfg.Seed = s.current.Config.Seed + 1
	s.next = level.Pregenerate(cfg)
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("GET /levels/{seed}", s.handleLevel)
	mux.HandleFunc("/stream", s.handleStream)
	return mux
}

// Current returns the shared level.
func (s *Server) Current() *level.Level {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Advance waits for the pregenerated level, makes it current and
// broadcasts it.
func (s *Server) Advance() error {
	s.mu.Lock()
	r := s.next.Wait()
	if r.Err != nil {
		s.prefetchFrom(s.current.Config.Seed + 1)
		s.mu.Unlock()
		return r.Err
	}
	s.current = r.Level
	s.prefetch()
	s.mu.Unlock()

	msg, err := s.envelope(TypeLevel, r.Level.Record(s.meshes))
	if err != nil {
		return err
	}
	s.hub.Broadcast(msg)
	return nil
}

// prefetchFrom skips a failing seed.
func (s *Server) prefetchFrom(seed int64) {
	cfg := s.cfg
	cfg.Seed = seed + 1
	s.next = level.Pregenerate(cfg)
}

func (s *Server) envelope(typ string, payload any) ([]byte, error) {
	return json.Marshal(Envelope{Sequence: s.seq.Add(1), Type: typ, Payload: payload})
}

func (s *Server) handleLevel(w http.ResponseWriter, r *http.Request) {
	seed, err := strconv.ParseInt(r.PathValue("seed"), 10, 64)
	if err != nil {
		http.Error(w, "seed must be an integer", http.StatusBadRequest)
		return
	}
	cfg := s.cfg
	if name := r.URL.Query().Get("preset"); name != "" {
		p, ok := level.ConfigFor(name)
		if !ok {
			http.Error(w, "unknown preset", http.StatusBadRequest)
			return
		}
		p.Logger = cfg.Logger
		cfg = p
	}
	cfg.Seed = seed
	l, err := level.Generate(cfg)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := level.Export(w, l, r.URL.Query().Get("meshes") == "1"); err != nil {
		log.Printf("server: write level %d: %v", seed, err)
	}
}

func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		return
	}
	conn.SetReadLimit(1 << 16)
	s.hub.Add(conn)
	defer s.hub.Remove(conn)
	defer conn.Close(websocket.StatusNormalClosure, "")

	hello, err := s.envelope(TypeLevel, s.Current().Record(s.meshes))
	if err != nil || send(conn, hello) != nil {
		return
	}

	ctx := r.Context()
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}
		var env IntentEnvelope
		if err := json.Unmarshal(data, &env); err != nil {
			continue
		}
		switch env.Type {
		case TypeNextLevel:
			if err := s.Advance(); err != nil {
				s.reply(ctx, conn, TypeError, ErrorPayload{Message: err.Error()})
			}
		case TypeRequestLevel:
			var req RequestLevel
			if err := json.Unmarshal(env.Payload, &req); err != nil {
				s.reply(ctx, conn, TypeError, ErrorPayload{Message: "malformed request"})
				continue
			}
			s.serveRequest(ctx, conn, req)
		}
	}
}

func (s *Server) serveRequest(ctx context.Context, conn *websocket.Conn, req RequestLevel) {
	cfg := s.cfg
	if req.Preset != "" {
		p, ok := level.ConfigFor(req.Preset)
		if !ok {
			s.reply(ctx, conn, TypeError, ErrorPayload{Message: "unknown preset " + strconv.Quote(req.Preset)})
			return
		}
		p.Logger = cfg.Logger
		cfg = p
	}
	cfg.Seed = req.Seed
	l, err := level.Generate(cfg)
	if err != nil {
		s.reply(ctx, conn, TypeError, ErrorPayload{Message: err.Error()})
		return
	}
	s.reply(ctx, conn, TypeLevel, l.Record(req.Meshes))
}

func (s *Server) reply(ctx context.Context, conn *websocket.Conn, typ string, payload any) {
	msg, err := s.envelope(typ, payload)
	if err != nil {
		log.Printf("server: encode %s: %v", typ, err)
		return
	}
	if err := conn.Write(ctx, websocket.MessageText, msg); err != nil {
		log.Printf("server: write %s: %v", typ, err)
	}
}
