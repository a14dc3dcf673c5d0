package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cave-golf/internal/level"

	"github.com/coder/websocket"
)

type levelEnvelope struct {
	Sequence uint64          `json:"sequence"`
	Type     string          `json:"type"`
	Payload  json.RawMessage `json:"payload"`
}

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	cfg := level.DefaultConfig()
	cfg.Seed = 11
	s, err := New(cfg, false)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func readEnvelope(t *testing.T, ctx context.Context, c *websocket.Conn) (levelEnvelope, level.Record) {
	t.Helper()
	_, data, err := c.Read(ctx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var env levelEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	var rec level.Record
	if env.Type == TypeLevel {
		if err := json.Unmarshal(env.Payload, &rec); err != nil {
			t.Fatalf("decode level: %v", err)
		}
	}
	return env, rec
}

func TestStreamHelloAndRequest(t *testing.T) {
	_, ts := newTestServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/stream"
	c, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer c.Close(websocket.StatusNormalClosure, "")
	c.SetReadLimit(1 << 24)

	env, rec := readEnvelope(t, ctx, c)
	if env.Type != TypeLevel || rec.Seed != 11 {
		t.Fatalf("expected hello with seed 11, got %s %d", env.Type, rec.Seed)
	}

	req, _ := json.Marshal(map[string]any{"type": TypeRequestLevel, "payload": RequestLevel{Seed: 5}})
	if err := c.Write(ctx, websocket.MessageText, req); err != nil {
		t.Fatalf("write: %v", err)
	}
	env, rec = readEnvelope(t, ctx, c)
	if env.Type != TypeLevel || rec.Seed != 5 {
		t.Fatalf("expected level 5, got %s %d", env.Type, rec.Seed)
	}

	bad, _ := json.Marshal(map[string]any{"type": TypeRequestLevel, "payload": RequestLevel{Seed: 1, Preset: "nightmare"}})
	if err := c.Write(ctx, websocket.MessageText, bad); err != nil {
		t.Fatalf("write: %v", err)
	}
	if env, _ = readEnvelope(t, ctx, c); env.Type != TypeError {
		t.Fatalf("expected error for unknown preset, got %s", env.Type)
	}
}

func TestStreamNextLevelBroadcast(t *testing.T) {
	s, ts := newTestServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/stream"
	c, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer c.Close(websocket.StatusNormalClosure, "")
	c.SetReadLimit(1 << 24)
	first, _ := readEnvelope(t, ctx, c)

	next, _ := json.Marshal(map[string]any{"type": TypeNextLevel})
	if err := c.Write(ctx, websocket.MessageText, next); err != nil {
		t.Fatalf("write: %v", err)
	}
	env, rec := readEnvelope(t, ctx, c)
	if env.Type != TypeLevel || rec.Seed != 12 {
		t.Fatalf("expected broadcast of seed 12, got %s %d", env.Type, rec.Seed)
	}
	if env.Sequence <= first.Sequence {
		t.Fatalf("sequence should grow, got %d after %d", env.Sequence, first.Sequence)
	}
	if s.Current().Config.Seed != 12 {
		t.Fatalf("server should now hold seed 12, got %d", s.Current().Config.Seed)
	}
}

func TestLevelEndpoint(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/levels/7")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var rec level.Record
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rec.Seed != 7 || rec.Width != 35 {
		t.Fatalf("unexpected record seed=%d width=%d", rec.Seed, rec.Width)
	}

	bad, err := http.Get(ts.URL + "/levels/abc")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	bad.Body.Close()
	if bad.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad seed, got %d", bad.StatusCode)
	}
}
