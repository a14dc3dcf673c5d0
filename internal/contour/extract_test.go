package contour

import (
	"math"
	"slices"
	"testing"

	"cave-golf/internal/cavegen"
	"cave-golf/internal/core"
	"cave-golf/internal/geom"
	pcore "cave-golf/pkg/core"
)

func openBox(w, h int) core.Grid {
	g := core.NewGrid(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				g.Set(x, y, core.Wall)
			}
		}
	}
	return g
}

func TestExtractOpenBox(t *testing.T) {
	loops := Extract(openBox(10, 10))
	if len(loops) != 1 {
		t.Fatalf("expected a single contour, got %d", len(loops))
	}
	ext := loops[0]
	if a := ext.SignedArea(); a != 254 {
		t.Fatalf("expected counter-clockwise area 254, got %v", a)
	}
	b := ext.Bounds()
	if b.Min != geom.Pt(1, 1) || b.Max != geom.Pt(17, 17) {
		t.Fatalf("unexpected bounds %+v", b)
	}
}

func TestExtractIsland(t *testing.T) {
	g := core.GridFromRows(
		"########",
		"#......#",
		"#......#",
		"#..##..#",
		"#..##..#",
		"#......#",
		"#......#",
		"########",
	)
	loops := Extract(g)
	if len(loops) != 2 {
		t.Fatalf("expected exterior plus one island, got %d", len(loops))
	}
	if !loops[0].CCW() {
		t.Fatal("exterior must wind counter-clockwise")
	}
	if loops[1].CCW() {
		t.Fatal("island must wind clockwise")
	}
	if loops[0].Area() <= loops[1].Area() {
		t.Fatal("exterior must come first")
	}
	// open space sits on the left of every edge
	for _, l := range loops {
		for i := range l {
			a, b := l.Edge(i)
			mid := a.Mid(b)
			left := mid.Add(geom.Pt(-(b.Y - a.Y), b.X-a.X).Unit().Scale(0.5))
			cx, cy := int(math.Round(left.X/2)), int(math.Round(left.Y/2))
			if g.IsWall(cx, cy) {
				t.Fatalf("edge %v->%v has wall on its left at cell (%d,%d)", a, b, cx, cy)
			}
		}
	}
}

func TestExtractDeterministic(t *testing.T) {
	g, _, err := cavegen.Generate(cavegen.DefaultParams(), pcore.NewRNG(11))
	if err != nil {
		t.Fatal(err)
	}
	a := Extract(g)
	b := Extract(g)
	if len(a) != len(b) {
		t.Fatalf("contour counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if !slices.Equal(a[i], b[i]) {
			t.Fatalf("contour %d differs between runs", i)
		}
	}
	for _, l := range a[1:] {
		if l.CCW() {
			t.Fatal("islands must wind clockwise")
		}
	}
}

func TestCaseBits(t *testing.T) {
	g := core.GridFromRows(
		"#.",
		"..",
	)
	// top-left wall only
	if got := Case(g, 0, 0); got != 1 {
		t.Fatalf("expected case 1, got %d", got)
	}
}
