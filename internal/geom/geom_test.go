package geom

import (
	"errors"
	"math"
	"testing"

	"cave-golf/pkg/core"
)

func square(x, y, side float64) Polygon {
	return R(x, y, x+side, y+side).Polygon()
}

func TestSignedAreaWinding(t *testing.T) {
	sq := square(0, 0, 2)
	if got := sq.SignedArea(); got != 4 {
		t.Fatalf("expected area 4, got %v", got)
	}
	if got := sq.Reversed().SignedArea(); got != -4 {
		t.Fatalf("expected reversed area -4, got %v", got)
	}
	if !sq.Contains(Pt(1, 1)) || sq.Contains(Pt(3, 1)) {
		t.Fatal("containment test failed")
	}
	if !sq.Reversed().Contains(Pt(1, 1)) {
		t.Fatal("containment must not depend on winding")
	}
}

func TestDedupeDegenerate(t *testing.T) {
	p := Polygon{{0, 0}, {0, 0}, {1, 0}, {0, 0}}
	if _, err := p.Dedupe(); !errors.Is(err, ErrDegenerate) {
		t.Fatalf("expected ErrDegenerate, got %v", err)
	}
}

func TestOffsetSquareCollapses(t *testing.T) {
	// A clockwise square offset to the right shrinks; half its side
	// consumes it completely.
	sq := square(0, 0, 2).Reversed()
	loops, err := Offset(sq, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(loops) != 0 {
		t.Fatalf("expected no loops, got %d", len(loops))
	}
}

func TestOffsetInwardSquare(t *testing.T) {
	loops, err := Offset(square(0, 0, 4), -1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(loops) != 1 {
		t.Fatalf("expected one loop, got %d", len(loops))
	}
	if got := loops[0].SignedArea(); math.Abs(got-4) > 1e-6 {
		t.Fatalf("expected a counter-clockwise 2x2 square, got area %v", got)
	}
}

func TestOffsetAreaMonotonic(t *testing.T) {
	base := square(0, 0, 2)
	prev := base.Area()
	for _, d := range []float64{0.2, 1.5, 6.5} {
		loops, err := Offset(base, d)
		if err != nil {
			t.Fatalf("offset %v: %v", d, err)
		}
		if len(loops) != 1 {
			t.Fatalf("offset %v: expected one loop, got %d", d, len(loops))
		}
		a := loops[0].SignedArea()
		if a <= prev {
			t.Fatalf("offset %v: area %v did not grow past %v", d, a, prev)
		}
		// rounded corners stay inside the exact rounded square
		exact := 4 + 8*d + math.Pi*d*d
		if a > exact+1e-6 || a < exact*0.97 {
			t.Fatalf("offset %v: area %v far from %v", d, a, exact)
		}
		prev = a
	}
}

func TestOffsetConcaveCorner(t *testing.T) {
	// L-shape: the inner corner folds over and must be trimmed.
	l := Polygon{{0, 0}, {4, 0}, {4, 2}, {2, 2}, {2, 4}, {0, 4}}
	loops, err := Offset(l, 0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(loops) != 1 {
		t.Fatalf("expected one loop, got %d", len(loops))
	}
	for _, pt := range loops[0] {
		if d := l.Distance(pt); math.Abs(d-0.5) > 1e-6 {
			t.Fatalf("point %v is %v from the source, want 0.5", pt, d)
		}
	}
}

func TestTessellateRingArea(t *testing.T) {
	outer := square(0, 0, 10)
	hole := square(3, 3, 2)
	island := square(3.5, 3.5, 1)
	batches := Tessellate([]Polygon{hole, outer, island})
	want := 100.0 - 4 + 1
	if got := TriangleArea(batches); math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected area %v, got %v", want, got)
	}
}

func TestTessellateConvexIsFan(t *testing.T) {
	batches := Tessellate([]Polygon{square(0, 0, 1).Reversed()})
	if len(batches) != 1 || batches[0].Mode != Fan {
		t.Fatalf("expected one fan batch, got %+v", batches)
	}
	if !Polygon(batches[0].Points).CCW() {
		t.Fatal("fan must be counter-clockwise")
	}
}

func TestTessellateConcave(t *testing.T) {
	l := Polygon{{0, 0}, {4, 0}, {4, 2}, {2, 2}, {2, 4}, {0, 4}}
	batches := Tessellate([]Polygon{l})
	if len(batches) != 1 || batches[0].Mode != Triangles {
		t.Fatalf("expected one triangle batch, got %+v", batches)
	}
	if got := TriangleArea(batches); math.Abs(got-12) > 1e-9 {
		t.Fatalf("expected area 12, got %v", got)
	}
}

func TestTessellateIgnoresOrientation(t *testing.T) {
	outer := square(0, 0, 10)
	hole := square(2, 2, 3)
	if outer.CCW() != hole.CCW() {
		hole = hole.Reversed()
	}
	batches := Tessellate([]Polygon{outer, hole})
	if got := TriangleArea(batches); math.Abs(got-91) > 1e-9 {
		t.Fatalf("expected area 91, got %v", got)
	}
	for _, b := range batches {
		EachTriangle(b, func(a, c, d Point) {
			m := Point{(a.X + c.X + d.X) / 3, (a.Y + c.Y + d.Y) / 3}
			if hole.Contains(m) {
				t.Fatalf("triangle %v %v %v covers the hole", a, c, d)
			}
		})
	}
}

func TestTessellateCrossingEdges(t *testing.T) {
	// two lobes meeting where (0,0)-(4,4) crosses (4,0)-(0,2)
	bow := Polygon{{0, 0}, {4, 4}, {4, 0}, {0, 2}}
	if got := TriangleArea(Tessellate([]Polygon{bow})); math.Abs(got-20.0/3) > 1e-9 {
		t.Fatalf("expected area 20/3, got %v", got)
	}
}

func TestTessellateOffsetRing(t *testing.T) {
	outer := Polygon{{0, 0}, {14, 0}, {14, 4}, {9, 4}, {9, 10}, {0, 10}}
	island := square(2, 2, 4).Reversed()
	loops := []Polygon{outer, island}
	want := 0.0
	for _, p := range loops {
		next, err := Offset(p, 1)
		if err != nil {
			t.Fatal(err)
		}
		moved := 0.0
		for _, l := range next {
			moved += l.Area()
		}
		want += math.Abs(moved - p.Area())
		loops = append(loops, next...)
	}
	if got := TriangleArea(Tessellate(loops)); math.Abs(got-want) > 1e-6 {
		t.Fatalf("expected band area %v, got %v", want, got)
	}
}

func TestEachTriangleStripParity(t *testing.T) {
	b := Batch{Mode: Strip, Points: []Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}}
	var got [][3]Point
	EachTriangle(b, func(a, c, d Point) { got = append(got, [3]Point{a, c, d}) })
	if len(got) != 2 {
		t.Fatalf("expected 2 triangles, got %d", len(got))
	}
	want := [3]Point{{1, 0}, {1, 1}, {0, 1}}
	if got[1] != want {
		t.Fatalf("odd strip triangle should swap its last two points, got %v", got[1])
	}
}

func TestOverlaps(t *testing.T) {
	a := square(0, 0, 2)
	if !Overlaps(a, square(1, 1, 2)) {
		t.Fatal("crossing squares must overlap")
	}
	if !Overlaps(a, square(0.5, 0.5, 0.5)) {
		t.Fatal("nested squares must overlap")
	}
	if Overlaps(a, square(3, 3, 1)) {
		t.Fatal("disjoint squares must not overlap")
	}
	if !OverlapsRect(a, R(1.5, -1, 5, 0.5)) {
		t.Fatal("rect overlap missed")
	}
}

func TestJitterDeterministic(t *testing.T) {
	p := square(0, 0, 2)
	a, err := Jitter(p, 0.01, core.NewRNG(5))
	if err != nil {
		t.Fatal(err)
	}
	b, _ := Jitter(p, 0.01, core.NewRNG(5))
	for i := range a {
		if !a[i].Eq(b[i]) {
			t.Fatalf("point %d differs", i)
		}
		if d := a[i].Sub(p[i]); d.X < 0 || d.X >= 0.01 || d.Y < 0 || d.Y >= 0.01 {
			t.Fatalf("jitter %v out of range", d)
		}
	}
}

func TestRectSubtract(t *testing.T) {
	r := R(0, 0, 10, 10)
	parts := r.Subtract(R(2, 2, 4, 4))
	total := 0.0
	for _, p := range parts {
		total += p.W() * p.H()
	}
	if total != 96 {
		t.Fatalf("expected 96 remaining, got %v", total)
	}
}
