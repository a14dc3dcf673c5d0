// Package app hosts the interactive level viewer. Session holds the state
// shared by the window and terminal front ends.
package app

import (
	"fmt"
	"strconv"

	"cave-golf/internal/core"
	"cave-golf/internal/level"
)

// Session shows one level while the next one is built in the background.
type Session struct {
	cfg     level.Config
	current *level.Level
	next    *level.Pregenerator
	nextCfg level.Config
	dirty   bool
}

// NewSession generates the first level synchronously and starts on the
// one after it.
func NewSession(cfg level.Config) (*Session, error) {
	s := &Session{cfg: cfg}
	if err := s.Regenerate(cfg.Seed); err != nil {
		return nil, err
	}
	return s, nil
}

// Level returns the level on display.
func (s *Session) Level() *level.Level { return s.current }

// Config returns the settings used for upcoming levels.
func (s *Session) Config() level.Config { return s.cfg }

// Regenerate replaces the current level with a fresh one for seed using
// the latest settings.
func (s *Session) Regenerate(seed int64) error {
	cfg := s.cfg
	cfg.Seed = seed
	l, err := level.Generate(cfg)
	if err != nil {
		return err
	}
	s.cfg.Seed = seed
	s.current = l
	s.dirty = false
	s.prefetch()
	return nil
}

func (s *Session) prefetch() {
	s.nextCfg = s.cfg
	s.nextCfg.Seed = s.cfg.Seed + 1
	s.next = level.Pregenerate(s.nextCfg)
}

// NextReady reports whether Advance would switch levels without waiting.
func (s *Session) NextReady() bool {
	if s.next == nil {
		return false
	}
	_, ok := s.next.Poll()
	return ok
}

// Advance switches to the pregenerated level if it is ready. Settings
// edited since it started are honoured by building a new one instead.
func (s *Session) Advance() (bool, error) {
	if s.dirty {
		return true, s.Regenerate(s.cfg.Seed + 1)
	}
	if s.next == nil {
		s.prefetch()
		return false, nil
	}
	r, ok := s.next.Poll()
	if !ok {
		return false, nil
	}
	if r.Err != nil {
		s.next = nil
		return false, fmt.Errorf("next level: %w", r.Err)
	}
	s.current = r.Level
	s.cfg.Seed = s.nextCfg.Seed
	s.prefetch()
	return true, nil
}

// Title names the level on display.
func (s *Session) Title() string {
	name := s.cfg.Preset
	if name == "" {
		name = "custom"
	}
	return fmt.Sprintf("Cave %s #%d", name, s.cfg.Seed)
}

// Status lists a few facts about the current level.
func (s *Session) Status() []string {
	l := s.current
	if l == nil {
		return nil
	}
	next := "building"
	if s.NextReady() {
		next = "ready"
	}
	if s.dirty {
		next = "settings changed"
	}
	return []string{
		"Caves tried: " + strconv.Itoa(l.Stats.Levels),
		"Grid attempts: " + strconv.Itoa(l.Stats.GridAttempts),
		"Open cells: " + strconv.Itoa(l.Stats.OpenCells),
		"Sand pits: " + strconv.Itoa(len(l.Pits)),
		"Next level: " + next,
	}
}

// Parameters reports the settings for upcoming levels.
func (s *Session) Parameters() core.ParameterSnapshot { return s.cfg.Parameters() }

// ParameterControls lists the adjustable settings.
func (s *Session) ParameterControls() []core.ParameterControl { return s.cfg.ParameterControls() }

// SetIntParameter updates a setting for the next level.
func (s *Session) SetIntParameter(key string, value int) bool {
	ok := s.cfg.SetIntParameter(key, value)
	s.dirty = s.dirty || ok
	return ok
}

// SetFloatParameter updates a setting for the next level.
func (s *Session) SetFloatParameter(key string, value float64) bool {
	ok := s.cfg.SetFloatParameter(key, value)
	s.dirty = s.dirty || ok
	return ok
}
