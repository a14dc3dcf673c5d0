package placement

import (
	"errors"
	"testing"

	"cave-golf/internal/cavegen"
	"cave-golf/internal/contour"
	"cave-golf/internal/core"
	"cave-golf/internal/geom"
	pcore "cave-golf/pkg/core"
)

func TestAStarMatchesBFS(t *testing.T) {
	g, _, err := cavegen.Generate(cavegen.DefaultParams(), pcore.NewRNG(21))
	if err != nil {
		t.Fatal(err)
	}
	var open []Cell
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if !g.IsWall(x, y) {
				open = append(open, Cell{x, y})
			}
		}
	}
	rng := pcore.NewRNG(3)
	for k := 0; k < 200; k++ {
		a := pcore.Pick(rng, open)
		b := pcore.Pick(rng, open)
		got, ok := PathLength(g, a, b)
		want, wantOK := BFSLength(g, a, b)
		if ok != wantOK || got != want {
			t.Fatalf("%v->%v: A* %d/%v, BFS %d/%v", a, b, got, ok, want, wantOK)
		}
		if !ok {
			t.Fatalf("%v->%v: open cells must be connected", a, b)
		}
	}
}

func TestPathLengthBlocked(t *testing.T) {
	g := core.GridFromRows(
		"#######",
		"#..#..#",
		"#..#..#",
		"#######",
	)
	if _, ok := PathLength(g, Cell{1, 1}, Cell{5, 1}); ok {
		t.Fatal("expected no route through the wall")
	}
	if n, ok := PathLength(g, Cell{1, 1}, Cell{2, 2}); !ok || n != 2 {
		t.Fatalf("expected 2 steps, got %d/%v", n, ok)
	}
}

func TestChoosePairByScore(t *testing.T) {
	// one corridor along row 1, columns 1 to 21
	g := core.GridFromRows(
		"#######################",
		"#.....................#",
		"#######################",
	)
	// pads resting on the corridor floor (y = 1), centred on columns 6, 16, 1, 21
	flats := []Flat{
		{Pos: geom.Pt(10, 1), Width: 4},
		{Pos: geom.Pt(29, 1), Width: 6},
		{Pos: geom.Pt(0, 1), Width: 4},
		{Pos: geom.Pt(40, 1), Width: 4},
	}
	length := func(a, b Flat) (int, bool) { return PathLength(g, CellOf(a), CellOf(b)) }
	if n, ok := length(flats[0], flats[1]); !ok || n != 10 {
		t.Fatalf("expected a 10 step path between the 4 and 6 wide pads, got %d/%v", n, ok)
	}
	if n, ok := length(flats[2], flats[3]); !ok || n != 20 {
		t.Fatalf("expected a 20 step path between the far pads, got %d/%v", n, ok)
	}
	i, j, err := choosePair(flats, length)
	if err != nil {
		t.Fatal(err)
	}
	// 4 + 20 beats 6 + 10; the tie with the reverse pair keeps the first.
	if i != 2 || j != 3 {
		t.Fatalf("expected pair (2,3), got (%d,%d)", i, j)
	}
}

func TestChoosePairErrors(t *testing.T) {
	if _, _, err := choosePair([]Flat{{Width: 4}}, nil); !errors.Is(err, ErrTooFewFlats) {
		t.Fatalf("expected ErrTooFewFlats, got %v", err)
	}
	none := func(a, b Flat) (int, bool) { return 0, false }
	if _, _, err := choosePair(make([]Flat, 2), none); !errors.Is(err, ErrNoPath) {
		t.Fatalf("expected ErrNoPath, got %v", err)
	}
}

func TestFindFlatsOpenBox(t *testing.T) {
	g := core.GridFromRows(
		"##########",
		"#........#",
		"#........#",
		"#........#",
		"##########",
	)
	flats := FindFlats(contour.Extract(g))
	if len(flats) != 1 {
		t.Fatalf("expected the floor as the only flat, got %+v", flats)
	}
	f := flats[0]
	// the floor runs between the centres of the outermost open cells
	if f.Pos != geom.Pt(2, 1) || f.Width != 14 {
		t.Fatalf("unexpected floor %+v", f)
	}
	if c := CellOf(f); c != (Cell{Col: 4, Row: 1}) {
		t.Fatalf("unexpected cell %v", c)
	}
}

func TestFindFlatsIslandTop(t *testing.T) {
	g := core.GridFromRows(
		"##########",
		"#........#",
		"#........#",
		"#...##...#",
		"#...##...#",
		"#........#",
		"##########",
	)
	flats := FindFlats(contour.Extract(g))
	var top *Flat
	for i := range flats {
		if flats[i].Pos.Y == 2*3+1 {
			top = &flats[i]
		}
	}
	if top == nil {
		t.Fatalf("island top missing from %+v", flats)
	}
	if c := CellOf(*top); g.IsWall(c.Col, c.Row) || !g.IsWall(c.Col, c.Row-1) {
		t.Fatalf("island top must map onto an open cell above wall, got %v", c)
	}
}

func TestPlaceStartAndGoal(t *testing.T) {
	g, _, err := cavegen.Generate(cavegen.DefaultParams(), pcore.NewRNG(8))
	if err != nil {
		t.Fatal(err)
	}
	contours := contour.Extract(g)
	start, goal, err := PlaceStartAndGoal(contours, g, 3, 0.5)
	if errors.Is(err, ErrTooFewFlats) {
		t.Skip("seed produced too few flats")
	}
	if err != nil {
		t.Fatal(err)
	}
	if start == goal {
		t.Fatal("start and goal must differ")
	}
	if start.Width < 3 || goal.Width < 3 {
		t.Fatalf("pads narrower than requested: %v %v", start.Width, goal.Width)
	}
	n, _ := PathLength(g, CellOf(start), CellOf(goal))
	best := goal.Width + float64(n)
	cands := Candidates(contours, 3, 0.5)
	for i, a := range cands {
		for j, b := range cands {
			if i == j {
				continue
			}
			m, _ := PathLength(g, CellOf(a), CellOf(b))
			if s := b.Width + float64(m); s > best {
				t.Fatalf("pair %d->%d scores %v above chosen %v", i, j, s, best)
			}
		}
	}
}
