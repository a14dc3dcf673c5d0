package geom

import (
	"math"
	"slices"
	"sort"
)

// Mode tells a consumer how to read a Batch's points.
type Mode int

const (
	// Triangles holds independent triangles, three points each.
	Triangles Mode = iota
	// Fan shares the first point with every following pair.
	Fan
	// Strip builds a triangle from every run of three consecutive points.
	Strip
)

func (m Mode) String() string {
	switch m {
	case Triangles:
		return "triangles"
	case Fan:
		return "fan"
	case Strip:
		return "strip"
	}
	return "unknown"
}

// Batch is one primitive run produced by Tessellate.
type Batch struct {
	Mode   Mode
	Points []Point
}

// Tessellate fills loops using the odd winding rule: a point is covered when
// a ray from it crosses the loops an odd number of times. Nesting and
// orientation do not matter. A lone convex loop comes back as a
// counter-clockwise Fan; everything else is one Triangles batch cut from
// horizontal trapezoids.
func Tessellate(loops []Polygon) []Batch {
	var clean []Polygon
	for _, l := range loops {
		c, err := l.Dedupe()
		if err != nil || c.Area() == 0 {
			continue
		}
		clean = append(clean, c)
	}
	switch {
	case len(clean) == 0:
		return nil
	case len(clean) == 1 && clean[0].Convex():
		return []Batch{{Mode: Fan, Points: clean[0].Oriented(true).Clone()}}
	}
	tris := sweepTrapezoids(clean)
	if len(tris) == 0 {
		return nil
	}
	return []Batch{{Mode: Triangles, Points: tris}}
}

// TriangleArea sums the absolute area of every triangle a batch list
// describes.
func TriangleArea(batches []Batch) float64 {
	total := 0.0
	for _, b := range batches {
		EachTriangle(b, func(a, c, d Point) {
			total += math.Abs(c.Sub(a).Cross(d.Sub(a))) / 2
		})
	}
	return total
}

// EachTriangle decodes b into triangles. Strip triangles alternate their
// vertex order so every triangle keeps the strip's winding.
func EachTriangle(b Batch, fn func(a, c, d Point)) {
	pts := b.Points
	switch b.Mode {
	case Triangles:
		for i := 0; i+2 < len(pts); i += 3 {
			fn(pts[i], pts[i+1], pts[i+2])
		}
	case Fan:
		for i := 1; i+1 < len(pts); i++ {
			fn(pts[0], pts[i], pts[i+1])
		}
	case Strip:
		for i := 0; i+2 < len(pts); i++ {
			if i%2 == 0 {
				fn(pts[i], pts[i+1], pts[i+2])
			} else {
				fn(pts[i], pts[i+2], pts[i+1])
			}
		}
	}
}

type sweepEdge struct {
	lo, hi Point
}

// xAt is exact at both endpoints so neighbouring trapezoids share vertices.
func (e sweepEdge) xAt(y float64) float64 {
	switch y {
	case e.lo.Y:
		return e.lo.X
	case e.hi.Y:
		return e.hi.X
	}
	return e.lo.X + (y-e.lo.Y)*(e.hi.X-e.lo.X)/(e.hi.Y-e.lo.Y)
}

// crossY returns the height at which e and o meet strictly inside (y0, y1).
func (e sweepEdge) crossY(o sweepEdge, y0, y1 float64) (float64, bool) {
	d0 := e.xAt(y0) - o.xAt(y0)
	d1 := e.xAt(y1) - o.xAt(y1)
	if d0 == d1 {
		return 0, false
	}
	y := y0 + (y1-y0)*d0/(d0-d1)
	const eps = 1e-9
	if y <= y0+eps || y >= y1-eps {
		return 0, false
	}
	return y, true
}

type trapezoid struct {
	left, right int
	y0, xl, xr  float64
}

// sweepTrapezoids cuts the plane into horizontal slabs at every vertex
// height and every edge crossing. Inside a slab the edges keep their order,
// so pairing them left to right gives the odd-rule coverage as trapezoids.
// A trapezoid whose pair of edges carries on into the next slab is extended
// instead of closed.
func sweepTrapezoids(loops []Polygon) []Point {
	var edges []sweepEdge
	var ys []float64
	for _, l := range loops {
		for i := range l {
			a, b := l.Edge(i)
			if a.Y == b.Y {
				continue
			}
			if a.Y > b.Y {
				a, b = b, a
			}
			edges = append(edges, sweepEdge{lo: a, hi: b})
			ys = append(ys, a.Y, b.Y)
		}
	}
	if len(edges) == 0 {
		return nil
	}
	sort.Float64s(ys)
	ys = slices.Compact(ys)
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].lo.Y < edges[j].lo.Y })

	var tris []Point
	closeTrap := func(t trapezoid, y1 float64) {
		if y1 <= t.y0 {
			return
		}
		lb, rb := Point{t.xl, t.y0}, Point{t.xr, t.y0}
		lt := Point{edges[t.left].xAt(y1), y1}
		rt := Point{edges[t.right].xAt(y1), y1}
		if rb.X > lb.X {
			tris = append(tris, lb, rb, rt)
		}
		if rt.X > lt.X {
			tris = append(tris, lb, rt, lt)
		}
	}

	var (
		active []int
		xs     = map[int]float64{}
		open   []trapezoid
		cur    []trapezoid
		next   int
	)
	y0 := ys[0]
	for k := 1; k < len(ys); {
		y1 := ys[k]
		kept := active[:0]
		for _, i := range active {
			if edges[i].hi.Y > y0 {
				kept = append(kept, i)
			}
		}
		active = kept
		for next < len(edges) && edges[next].lo.Y <= y0 {
			if edges[next].hi.Y > y0 {
				active = append(active, next)
			}
			next++
		}

		ym := (y0 + y1) / 2
		clear(xs)
		for _, i := range active {
			xs[i] = edges[i].xAt(ym)
		}
		sort.SliceStable(active, func(a, b int) bool {
			xa, xb := xs[active[a]], xs[active[b]]
			if xa != xb {
				return xa < xb
			}
			return active[a] < active[b]
		})

		// Edges that swap order inside the slab cross; stop the slab there.
		cut := y1
		for j := 0; j+1 < len(active); j++ {
			e, o := edges[active[j]], edges[active[j+1]]
			if e.xAt(y0) > o.xAt(y0) || e.xAt(y1) > o.xAt(y1) {
				if yc, ok := e.crossY(o, y0, y1); ok && yc < cut {
					cut = yc
				}
			}
		}
		if cut < y1 {
			y1 = cut
		} else {
			k++
		}

		cur = cur[:0]
		for j := 0; j+1 < len(active); j += 2 {
			l, r := active[j], active[j+1]
			t := trapezoid{left: l, right: r, y0: y0, xl: edges[l].xAt(y0), xr: edges[r].xAt(y0)}
			for m, o := range open {
				if o.left == l && o.right == r {
					t = o
					open[m].left = -1
					break
				}
			}
			cur = append(cur, t)
		}
		for _, o := range open {
			if o.left >= 0 {
				closeTrap(o, y0)
			}
		}
		open, cur = cur, open
		y0 = y1
	}
	for _, o := range open {
		closeTrap(o, y0)
	}
	return tris
}
