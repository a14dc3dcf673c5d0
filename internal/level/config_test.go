package level

import (
	"flag"
	"testing"
)

func TestFromMapPresetAndOverrides(t *testing.T) {
	c := FromMap(map[string]string{
		"preset":      "hard",
		"h":           "40",
		"wall_chance": "nope",
		"jitter":      "0.05",
		"bogus":       "1",
	})
	if c.Preset != "hard" || c.Grid.Width != 60 {
		t.Fatalf("expected hard preset width 60, got %q %d", c.Preset, c.Grid.Width)
	}
	if c.Grid.Height != 40 {
		t.Fatalf("expected height override 40, got %d", c.Grid.Height)
	}
	if c.Grid.WallChance != DefaultConfig().Grid.WallChance {
		t.Fatalf("malformed value should be ignored, got %d", c.Grid.WallChance)
	}
	if c.Jitter != 0.05 {
		t.Fatalf("expected jitter 0.05, got %v", c.Jitter)
	}
}

func TestFromMapNil(t *testing.T) {
	c := FromMap(nil)
	if c.Preset != "easy" || c.Grid.Width != 35 || c.Grid.Height != 25 {
		t.Fatalf("expected easy defaults, got %+v", c.Grid)
	}
}

func TestApplyRejects(t *testing.T) {
	c := DefaultConfig()
	if err := c.Apply("unknown", "1"); err == nil {
		t.Fatal("expected error for unknown key")
	}
	if err := c.Apply("w", "2"); err == nil {
		t.Fatal("expected error for width below 3")
	}
	if err := c.Apply("jitter", "-1"); err == nil {
		t.Fatal("expected error for negative jitter")
	}
	if err := c.Apply("pits", "4"); err != nil || len(c.PitCounts) != 1 || c.PitCounts[0] != 4 {
		t.Fatalf("expected fixed pit count 4, got %v (%v)", c.PitCounts, err)
	}
	if err := c.Apply("pits", "1, 2,x"); err == nil {
		t.Fatal("expected error for malformed pit list")
	}
	p, _ := DefaultConfig().Parameters().Find("pits")
	if err := c.Apply("pits", p.Value); err != nil || len(c.PitCounts) != 7 {
		t.Fatalf("snapshot value should parse back, got %v (%v)", c.PitCounts, err)
	}
}

func TestBindFlags(t *testing.T) {
	c := DefaultConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c.Bind(fs)
	err := fs.Parse([]string{"-seed", "9", "-w", "50", "-set", "iterations=7", "-set", "noise_bias = 12"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.Seed != 9 || c.Grid.Width != 50 || c.Grid.Iterations != 7 || c.Grid.NoiseBias != 12 {
		t.Fatalf("flags not applied: seed=%d w=%d it=%d bias=%v",
			c.Seed, c.Grid.Width, c.Grid.Iterations, c.Grid.NoiseBias)
	}
	if err := fs.Parse([]string{"-set", "iterations"}); err == nil {
		t.Fatal("expected error for -set without '='")
	}
}

func TestParameterSetters(t *testing.T) {
	c := DefaultConfig()
	if !c.SetIntParameter("wall_chance", 150) {
		t.Fatal("wall_chance should be settable")
	}
	if c.Grid.WallChance != 100 {
		t.Fatalf("expected clamp to 100, got %d", c.Grid.WallChance)
	}
	if !c.SetFloatParameter("min_flat_width", 0) || c.MinFlatWidth != 0.5 {
		t.Fatalf("expected clamp to 0.5, got %v", c.MinFlatWidth)
	}
	if c.SetIntParameter("min_flat_width", 2) {
		t.Fatal("float parameter must not accept int setter")
	}
	if c.SetFloatParameter("missing", 1) {
		t.Fatal("unknown parameter must be rejected")
	}

	p, ok := c.Parameters().Find("wall_chance")
	if !ok || p.Value != "100" {
		t.Fatalf("snapshot should reflect update, got %+v", p)
	}
}

func TestPresetRegistry(t *testing.T) {
	names := PresetNames()
	if len(names) < 2 || names[0] != "easy" || names[1] != "hard" {
		t.Fatalf("unexpected presets %v", names)
	}
	if _, ok := ConfigFor("missing"); ok {
		t.Fatal("unknown preset must not resolve")
	}
	c, ok := ConfigFor("hard")
	if !ok || c.Grid.Width != 60 || c.Grid.Height != 30 {
		t.Fatalf("unexpected hard preset %+v", c.Grid)
	}
}

func TestBindPresetFirst(t *testing.T) {
	c := DefaultConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c.Bind(fs)
	if err := fs.Parse([]string{"-preset", "hard", "-h", "40"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.Preset != "hard" || c.Grid.Width != 60 || c.Grid.Height != 40 {
		t.Fatalf("expected hard 60x40, got %s %dx%d", c.Preset, c.Grid.Width, c.Grid.Height)
	}
	if err := fs.Parse([]string{"-preset", "nightmare"}); err == nil {
		t.Fatal("expected unknown preset error")
	}
}
