package hazard

import (
	"testing"

	"cave-golf/internal/geom"
	pcore "cave-golf/pkg/core"
)

// cave builds a counter-clockwise exterior whose floor at y=0 dips into the
// given pits, each listed as its rim x coordinates and depth.
func cave(width float64, pits ...[3]float64) geom.Polygon {
	var p geom.Polygon
	p = append(p, geom.Pt(0, 0))
	for _, pit := range pits {
		l, r, depth := pit[0], pit[1], pit[2]
		p = append(p,
			geom.Pt(l, 0),
			geom.Pt(l+1, -depth),
			geom.Pt(r-1, -depth),
			geom.Pt(r, 0),
		)
	}
	p = append(p, geom.Pt(width, 0), geom.Pt(width, 10), geom.Pt(0, 10))
	return p
}

func TestDepressions(t *testing.T) {
	ext := cave(12, [3]float64{4, 8, 2})
	deps := Depressions(ext)
	var pit geom.Polygon
	for _, d := range deps {
		if d.Area() < 20 {
			pit = d
		}
	}
	if pit == nil {
		t.Fatalf("floor depression missing from %d candidates", len(deps))
	}
	if a := pit.SignedArea(); a != 6 {
		t.Fatalf("expected a counter-clockwise area of 6, got %v", a)
	}
	if len(pit) != 4 {
		t.Fatalf("expected 4 vertices, got %v", pit)
	}
}

func TestPlaceSandPitsSingle(t *testing.T) {
	contours := []geom.Polygon{cave(12, [3]float64{4, 8, 2})}
	pits := PlaceSandPits(contours, DefaultParams(), pcore.NewRNG(1))
	if len(pits) != 1 {
		t.Fatalf("expected one pit, got %d", len(pits))
	}
	pit := pits[0]
	if pit.Provenance != Committed {
		t.Fatalf("unexpected provenance %v", pit.Provenance)
	}
	if pit.Margin.Area() <= pit.Shape.Area() {
		t.Fatal("margin must be larger than the shape")
	}
	for _, v := range pit.Shape {
		if !pit.Margin.Contains(v.Add(geom.Pt(0, 0.01))) && !pit.Margin.Contains(v) {
			t.Fatalf("shape vertex %v outside margin", v)
		}
	}
	if len(pit.Outline) <= len(pit.Shape) {
		t.Fatal("outline should carry the rippled lid")
	}
	for _, v := range pit.Outline[len(pit.Shape):] {
		if v.Y > 0 || v.Y < -DefaultParams().RippleAmplitude-1e-9 {
			t.Fatalf("ripple point %v outside the band below the lid", v)
		}
	}
}

func TestPlaceSandPitsMarginsDoNotOverlap(t *testing.T) {
	contours := []geom.Polygon{cave(16,
		[3]float64{4, 7, 2},
		[3]float64{7.5, 10.5, 2},
	)}
	p := DefaultParams()
	if got := len(Candidates(contours, p)); got != 2 {
		t.Fatalf("expected 2 candidates, got %d", got)
	}
	for seed := int64(1); seed <= 10; seed++ {
		pits := PlaceSandPits(contours, p, pcore.NewRNG(seed))
		if len(pits) != 1 {
			t.Fatalf("seed %d: close pits must exclude each other, got %d", seed, len(pits))
		}
	}
}

func TestPlaceSandPitsAvoidAndIslands(t *testing.T) {
	ext := cave(20, [3]float64{4, 8, 2}, [3]float64{12, 16, 2})
	p := DefaultParams()
	p.Avoid = []geom.Rect{geom.R(3, 0, 9, 0.6)}
	pits := PlaceSandPits([]geom.Polygon{ext}, p, pcore.NewRNG(2))
	if len(pits) != 1 {
		t.Fatalf("expected only the unobstructed pit, got %d", len(pits))
	}
	if c := pits[0].Shape.Bounds().Center(); c.X < 12 {
		t.Fatalf("kept the avoided pit at %v", c)
	}

	island := geom.R(13, 0.3, 15, 2).Polygon().Reversed()
	pits = PlaceSandPits([]geom.Polygon{ext, island}, p, pcore.NewRNG(2))
	if len(pits) != 0 {
		t.Fatalf("island over the second pit should block it, got %d pits", len(pits))
	}
	for _, pit := range pits {
		for _, r := range p.Avoid {
			if geom.OverlapsRect(pit.Margin, r) {
				t.Fatal("margin overlaps an avoid region")
			}
		}
	}
}

func TestAreaBounds(t *testing.T) {
	contours := []geom.Polygon{cave(12, [3]float64{4, 8, 2})}
	p := DefaultParams()
	p.MaxArea = 5
	if got := PlaceSandPits(contours, p, pcore.NewRNG(1)); len(got) != 0 {
		t.Fatalf("pit of area 6 should exceed the maximum, got %d", len(got))
	}
	// The whole cave is a depression too, but its lid runs along the
	// ceiling and must be rejected whatever the area limits.
	p.MaxArea = 1000
	p.MinArea = 7
	if got := Candidates(contours, p); len(got) != 0 {
		t.Fatalf("expected no candidates, got %d", len(got))
	}
}
