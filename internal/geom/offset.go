package geom

import (
	"math"
	"sort"
)

// ArcSegments is the number of chords used per quarter circle when rounding
// offset corners.
const ArcSegments = 8

// offsetTolerance absorbs rounding when comparing probe distances against the
// offset distance.
const offsetTolerance = 1e-6

type rawSeg struct {
	a, b   Point
	arc    bool
	center Point
}

type splitAt struct {
	t float64
	p Point
}

// Offset returns the loops at distance d to the right of p's directed edges.
// Corners that open a gap are rounded; corners that fold over are trimmed.
// A negative d offsets to the left. The result may be empty when the offset
// consumes the whole shape, or hold several loops when it splits or pinches.
// Each loop keeps the winding convention of p: the region that was on the
// right of p stays on the right of the result.
func Offset(p Polygon, d float64) ([]Polygon, error) {
	src, err := p.Dedupe()
	if err != nil {
		return nil, err
	}
	switch {
	case d == 0:
		return []Polygon{src.Clone()}, nil
	case d < 0:
		loops, err := Offset(src.Reversed(), -d)
		for i := range loops {
			loops[i] = loops[i].Reversed()
		}
		return loops, err
	}

	segs := rawOffsetCurve(src, d)
	pieces := splitSegments(segs)

	index := newEdgeIndex(src, d)
	area := src.SignedArea()
	kept := pieces[:0]
	for _, pc := range pieces {
		probe := pc.a.Mid(pc.b)
		if pc.arc {
			dir := probe.Sub(pc.center).Unit()
			if dir == (Point{}) {
				continue
			}
			probe = pc.center.Add(dir.Scale(d))
		}
		if index.closerThan(probe, d-offsetTolerance*math.Max(1, d)) {
			continue
		}
		inside := src.Winding(probe) != 0
		if inside == (area > 0) {
			// left side of the source
			continue
		}
		kept = append(kept, pc)
	}
	return chainLoops(kept), nil
}

// OffsetAll offsets every polygon by d and collects the resulting loops.
// Polygons that degenerate are skipped.
func OffsetAll(polys []Polygon, d float64) []Polygon {
	var out []Polygon
	for _, p := range polys {
		loops, err := Offset(p, d)
		if err != nil {
			continue
		}
		out = append(out, loops...)
	}
	return out
}

func rawOffsetCurve(p Polygon, d float64) []rawSeg {
	n := len(p)
	starts := make([]Point, n)
	ends := make([]Point, n)
	normals := make([]Point, n)
	for i := 0; i < n; i++ {
		a, b := p.Edge(i)
		nr := b.Sub(a).RightNormal()
		normals[i] = nr
		starts[i] = a.Add(nr.Scale(d))
		ends[i] = b.Add(nr.Scale(d))
	}

	segs := make([]rawSeg, 0, n*3)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		segs = append(segs, rawSeg{a: starts[i], b: ends[i]})

		v := p[j]
		u1 := p[j].Sub(p[i]).Unit()
		u2 := p[(j+1)%n].Sub(p[j]).Unit()
		cross := u1.Cross(u2)
		dot := u1.Dot(u2)
		theta := math.Atan2(cross, dot)
		if dot < 0 && math.Abs(cross) < 1e-12 {
			theta = math.Pi
		}

		if theta <= 1e-9 {
			if !ends[i].Eq(starts[j]) {
				segs = append(segs, rawSeg{a: ends[i], b: starts[j]})
			}
			continue
		}

		steps := int(math.Ceil(theta / (math.Pi / 2) * ArcSegments))
		if steps < 1 {
			steps = 1
		}
		a0 := math.Atan2(normals[i].Y, normals[i].X)
		prev := ends[i]
		for k := 1; k <= steps; k++ {
			next := starts[j]
			if k < steps {
				ang := a0 + theta*float64(k)/float64(steps)
				next = v.Add(Point{math.Cos(ang), math.Sin(ang)}.Scale(d))
			}
			segs = append(segs, rawSeg{a: prev, b: next, arc: true, center: v})
			prev = next
		}
	}
	return segs
}

// splitSegments cuts every segment at its crossings with the others. A
// crossing point is computed once and shared by both cut segments so the
// pieces can be chained by exact position.
func splitSegments(segs []rawSeg) []rawSeg {
	order := make([]int, len(segs))
	for i := range order {
		order[i] = i
	}
	minX := func(s rawSeg) float64 { return math.Min(s.a.X, s.b.X) }
	maxX := func(s rawSeg) float64 { return math.Max(s.a.X, s.b.X) }
	sort.Slice(order, func(i, j int) bool { return minX(segs[order[i]]) < minX(segs[order[j]]) })

	const eps = 1e-9
	splits := make([][]splitAt, len(segs))
	for oi, i := range order {
		si := segs[i]
		hi := maxX(si)
		yi0, yi1 := math.Min(si.a.Y, si.b.Y), math.Max(si.a.Y, si.b.Y)
		for _, j := range order[oi+1:] {
			sj := segs[j]
			if minX(sj) > hi {
				break
			}
			if math.Max(sj.a.Y, sj.b.Y) < yi0 || math.Min(sj.a.Y, sj.b.Y) > yi1 {
				continue
			}
			t, u, ok := SegmentIntersection(si.a, si.b, sj.a, sj.b)
			if !ok {
				continue
			}
			tIn := t > eps && t < 1-eps
			uIn := u > eps && u < 1-eps
			if !tIn && !uIn {
				continue
			}
			var p Point
			switch {
			case u <= eps:
				p = sj.a
			case u >= 1-eps:
				p = sj.b
			case t <= eps:
				p = si.a
			case t >= 1-eps:
				p = si.b
			default:
				p = si.a.Lerp(si.b, t)
			}
			if tIn {
				splits[i] = append(splits[i], splitAt{t: t, p: p})
			}
			if uIn {
				splits[j] = append(splits[j], splitAt{t: u, p: p})
			}
		}
	}

	out := make([]rawSeg, 0, len(segs)*2)
	for i, s := range segs {
		cuts := splits[i]
		if len(cuts) == 0 {
			out = append(out, s)
			continue
		}
		sort.Slice(cuts, func(a, b int) bool { return cuts[a].t < cuts[b].t })
		prev := s.a
		for _, c := range cuts {
			if c.p.Eq(prev) {
				continue
			}
			out = append(out, rawSeg{a: prev, b: c.p, arc: s.arc, center: s.center})
			prev = c.p
		}
		if !prev.Eq(s.b) {
			out = append(out, rawSeg{a: prev, b: s.b, arc: s.arc, center: s.center})
		}
	}
	return out
}

type pointKey [2]int64

func keyOf(p Point) pointKey {
	const q = 1e7
	return pointKey{int64(math.Round(p.X * q)), int64(math.Round(p.Y * q))}
}

func chainLoops(pieces []rawSeg) []Polygon {
	byStart := make(map[pointKey][]int, len(pieces))
	for i, pc := range pieces {
		k := keyOf(pc.a)
		byStart[k] = append(byStart[k], i)
	}
	used := make([]bool, len(pieces))
	next := func(k pointKey) int {
		for _, idx := range byStart[k] {
			if !used[idx] {
				return idx
			}
		}
		return -1
	}

	var loops []Polygon
	for i := range pieces {
		if used[i] {
			continue
		}
		used[i] = true
		first := keyOf(pieces[i].a)
		loop := Polygon{pieces[i].a}
		cur := i
		closed := false
		for steps := 0; steps <= len(pieces); steps++ {
			end := keyOf(pieces[cur].b)
			if end == first {
				closed = true
				break
			}
			nx := next(end)
			if nx < 0 {
				break
			}
			used[nx] = true
			loop = append(loop, pieces[nx].a)
			cur = nx
		}
		if !closed {
			continue
		}
		clean, err := loop.Dedupe()
		if err != nil || clean.Area() < 1e-9 {
			continue
		}
		loops = append(loops, clean)
	}
	return loops
}

// edgeIndex buckets the edges of a polygon on a uniform grid so distance
// queries only visit nearby edges.
type edgeIndex struct {
	poly    Polygon
	cell    float64
	buckets map[[2]int][]int
}

func newEdgeIndex(p Polygon, d float64) *edgeIndex {
	cell := math.Max(d, 1)
	idx := &edgeIndex{poly: p, cell: cell, buckets: make(map[[2]int][]int)}
	for i := range p {
		a, b := p.Edge(i)
		x0, y0 := idx.cellOf(math.Min(a.X, b.X), math.Min(a.Y, b.Y))
		x1, y1 := idx.cellOf(math.Max(a.X, b.X), math.Max(a.Y, b.Y))
		for cx := x0; cx <= x1; cx++ {
			for cy := y0; cy <= y1; cy++ {
				k := [2]int{cx, cy}
				idx.buckets[k] = append(idx.buckets[k], i)
			}
		}
	}
	return idx
}

func (e *edgeIndex) cellOf(x, y float64) (int, int) {
	return int(math.Floor(x / e.cell)), int(math.Floor(y / e.cell))
}

// closerThan reports whether some edge lies strictly closer than limit to p.
func (e *edgeIndex) closerThan(p Point, limit float64) bool {
	x0, y0 := e.cellOf(p.X-limit, p.Y-limit)
	x1, y1 := e.cellOf(p.X+limit, p.Y+limit)
	for cx := x0; cx <= x1; cx++ {
		for cy := y0; cy <= y1; cy++ {
			for _, i := range e.buckets[[2]int{cx, cy}] {
				a, b := e.poly.Edge(i)
				if SegmentDistance(p, a, b) < limit {
					return true
				}
			}
		}
	}
	return false
}
