package app

import (
	"flag"
	"testing"
	"time"

	"cave-golf/internal/core"
)

var (
	_ core.IntParameterSetter   = (*Session)(nil)
	_ core.FloatParameterSetter = (*Session)(nil)
)

func TestConfigBind(t *testing.T) {
	c := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c.Bind(fs)
	if err := fs.Parse([]string{"-preset", "hard", "-scale", "4", "-seed", "3"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.Scale != 4 || c.Level.Seed != 3 || c.Level.Grid.Width != 60 {
		t.Fatalf("unexpected config %+v", c)
	}
}

func waitReady(t *testing.T, s *Session) {
	t.Helper()
	deadline := time.Now().Add(30 * time.Second)
	for !s.NextReady() {
		if time.Now().After(deadline) {
			t.Fatal("next level never became ready")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestSessionAdvance(t *testing.T) {
	cfg := NewConfig().Level
	cfg.Seed = 11
	s, err := NewSession(cfg)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	first := s.Level()
	waitReady(t, s)
	moved, err := s.Advance()
	if err != nil || !moved {
		t.Fatalf("expected to advance, got %v %v", moved, err)
	}
	if s.Level() == first || s.Config().Seed != 12 {
		t.Fatalf("expected seed 12, got %d", s.Config().Seed)
	}
}

func TestSessionSettingsRestartNext(t *testing.T) {
	cfg := NewConfig().Level
	cfg.Seed = 11
	s, err := NewSession(cfg)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if !s.SetIntParameter("iterations", 4) {
		t.Fatal("iterations should be adjustable")
	}
	if s.Status()[len(s.Status())-1] != "Next level: settings changed" {
		t.Fatalf("status should flag pending settings, got %v", s.Status())
	}
	moved, err := s.Advance()
	if err != nil || !moved {
		t.Fatalf("expected to regenerate, got %v %v", moved, err)
	}
	if s.Level().Config.Grid.Iterations != 4 {
		t.Fatalf("new level should use edited settings, got %d", s.Level().Config.Grid.Iterations)
	}
}
