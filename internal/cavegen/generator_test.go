package cavegen

import (
	"errors"
	"slices"
	"testing"

	"cave-golf/internal/core"
	pcore "cave-golf/pkg/core"
)

func TestGenerateSingleRegion(t *testing.T) {
	p := DefaultParams()
	for seed := int64(1); seed <= 5; seed++ {
		g, stats, err := Generate(p, pcore.NewRNG(seed))
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if got := len(Regions(g)); got != 1 {
			t.Fatalf("seed %d: expected one region, got %d", seed, got)
		}
		if floor := int(p.MinOpenPercent * float64(p.Width*p.Height)); stats.OpenCells < floor {
			t.Fatalf("seed %d: open cells %d below %d", seed, stats.OpenCells, floor)
		}
		if g.OpenCount() != stats.OpenCells {
			t.Fatalf("seed %d: stats disagree with grid", seed)
		}
		for x := 0; x < g.W; x++ {
			if !g.IsWall(x, 0) || !g.IsWall(x, g.H-1) {
				t.Fatalf("seed %d: border column %d open", seed, x)
			}
		}
		for y := 0; y < g.H; y++ {
			if !g.IsWall(0, y) || !g.IsWall(g.W-1, y) {
				t.Fatalf("seed %d: border row %d open", seed, y)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	p := DefaultParams()
	a, _, err := Generate(p, pcore.NewRNG(99))
	if err != nil {
		t.Fatal(err)
	}
	b, _, _ := Generate(p, pcore.NewRNG(99))
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("same seed produced different grids")
	}
}

func TestGenerateOpenBox(t *testing.T) {
	p := DefaultParams()
	p.Width, p.Height = 10, 10
	p.WallChance = 0
	p.Iterations = 0
	p.PillarIterations = 0
	g, stats, err := Generate(p, pcore.NewRNG(1))
	if err != nil {
		t.Fatal(err)
	}
	if stats.Attempts != 1 || stats.OpenCells != 64 {
		t.Fatalf("expected a single attempt with 64 open cells, got %+v", stats)
	}
	if g.IsWall(1, 1) || g.IsWall(8, 8) {
		t.Fatal("interior should be open")
	}
}

func TestGenerateFailsAfterCeiling(t *testing.T) {
	p := DefaultParams()
	p.Width, p.Height = 10, 10
	p.WallChance = 100
	p.MaxAttempts = 3
	_, stats, err := Generate(p, pcore.NewRNG(1))
	if !errors.Is(err, ErrGenerationFailed) {
		t.Fatalf("expected ErrGenerationFailed, got %v", err)
	}
	if stats.Attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", stats.Attempts)
	}
}

func TestKeepLargestRegionWallsIsolatedRoom(t *testing.T) {
	g := core.GridFromRows(
		"##########",
		"#....#..##",
		"#....#..##",
		"#....#####",
		"##########",
	)
	if got := len(Regions(g)); got != 2 {
		t.Fatalf("expected 2 regions, got %d", got)
	}
	if open := KeepLargestRegion(g); open != 12 {
		t.Fatalf("expected 12 open cells kept, got %d", open)
	}
	if !g.IsWall(6, 3) || !g.IsWall(7, 2) {
		t.Fatal("isolated room must be walled")
	}
	if g.IsWall(1, 1) {
		t.Fatal("main room must stay open")
	}
}

func TestStepPillars(t *testing.T) {
	src := core.GridFromRows(
		"#######",
		"#.....#",
		"#.....#",
		"#.....#",
		"#.....#",
		"#.....#",
		"#######",
	)
	dst := core.NewGrid(src.W, src.H)
	Step(src, dst, 5, true)
	if !dst.IsWall(3, 3) {
		t.Fatal("centre of an open hall should grow a pillar")
	}
	if !dst.IsWall(1, 1) {
		t.Fatal("hall corners see five border walls and should fill in")
	}
	if dst.IsWall(3, 1) {
		t.Fatal("a cell along the floor sees three walls and should stay open")
	}
	Step(src, dst, 5, false)
	if dst.IsWall(3, 3) {
		t.Fatal("without pillars the hall centre stays open")
	}
}

func TestNoiseBiasDeterministic(t *testing.T) {
	p := DefaultParams()
	p.NoiseBias = 15
	a, _, err := Generate(p, pcore.NewRNG(4))
	if err != nil {
		t.Fatal(err)
	}
	b, _, _ := Generate(p, pcore.NewRNG(4))
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("noise-biased generation must be deterministic")
	}
}
