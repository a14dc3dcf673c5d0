// Package contour traces the boundaries between wall and open cells of an
// occupancy grid with marching squares.
package contour

import (
	"math"
	"sort"

	"cave-golf/internal/core"
	"cave-golf/internal/geom"
)

// segments lists, per marching-squares case, the sub-cell midpoints joined
// inside a 2x2 block. Midpoints are numbered 1 top, 2 right, 3 bottom,
// 4 left. Cases 5 and 10 are saddles and emit two segments.
var segments = [16][][2]int{
	1:  {{1, 4}},
	2:  {{1, 2}},
	3:  {{2, 4}},
	4:  {{2, 3}},
	5:  {{1, 2}, {3, 4}},
	6:  {{1, 3}},
	7:  {{3, 4}},
	8:  {{3, 4}},
	9:  {{1, 3}},
	10: {{1, 4}, {2, 3}},
	11: {{2, 3}},
	12: {{2, 4}},
	13: {{1, 2}},
	14: {{1, 4}},
}

// Case returns the marching-squares case of the block whose bottom-left
// cell is (x, y).
func Case(g core.Grid, x, y int) int {
	bit := func(cx, cy int) int {
		if g.IsWall(cx, cy) {
			return 1
		}
		return 0
	}
	return bit(x, y+1) | bit(x+1, y+1)<<1 | bit(x+1, y)<<2 | bit(x, y)<<3
}

func midpoint(id, x, y int) geom.Point {
	fx, fy := float64(2*x), float64(2*y)
	switch id {
	case 1:
		return geom.Pt(fx+1, fy+2)
	case 2:
		return geom.Pt(fx+2, fy+1)
	case 3:
		return geom.Pt(fx+1, fy)
	default:
		return geom.Pt(fx, fy+1)
	}
}

// Extract returns every wall/open boundary of g in doubled coordinates. The
// longest-reaching loop, the one with the largest area, comes first and
// winds counter-clockwise; every other loop winds clockwise. Open space is
// therefore on the left of every directed edge.
func Extract(g core.Grid) []geom.Polygon {
	adj := make(map[geom.Point][]geom.Point)
	link := func(a, b geom.Point) {
		adj[a] = append(adj[a], b)
		adj[b] = append(adj[b], a)
	}
	for y := 0; y < g.H-1; y++ {
		for x := 0; x < g.W-1; x++ {
			for _, s := range segments[Case(g, x, y)] {
				link(midpoint(s[0], x, y), midpoint(s[1], x, y))
			}
		}
	}

	starts := make([]geom.Point, 0, len(adj))
	for p := range adj {
		starts = append(starts, p)
	}
	sort.Slice(starts, func(i, j int) bool {
		if starts[i].Y != starts[j].Y {
			return starts[i].Y < starts[j].Y
		}
		return starts[i].X < starts[j].X
	})

	var loops []geom.Polygon
	for _, start := range starts {
		if _, ok := adj[start]; !ok {
			continue
		}
		loop := walk(adj, start)
		if len(loop) >= 3 {
			loops = append(loops, loop)
		}
	}
	return orient(loops)
}

func walk(adj map[geom.Point][]geom.Point, start geom.Point) geom.Polygon {
	var loop geom.Polygon
	cur := start
	for {
		loop = append(loop, cur)
		nbrs := adj[cur]
		delete(adj, cur)
		next, found := geom.Point{}, false
		for _, n := range nbrs {
			if _, ok := adj[n]; ok {
				next, found = n, true
				break
			}
		}
		if !found {
			return loop
		}
		cur = next
	}
}

func orient(loops []geom.Polygon) []geom.Polygon {
	if len(loops) == 0 {
		return nil
	}
	ext := 0
	best := math.Inf(-1)
	for i, l := range loops {
		if a := l.Area(); a > best {
			best, ext = a, i
		}
	}
	out := make([]geom.Polygon, 0, len(loops))
	out = append(out, loops[ext].Oriented(true))
	for i, l := range loops {
		if i != ext {
			out = append(out, l.Oriented(false))
		}
	}
	return out
}
