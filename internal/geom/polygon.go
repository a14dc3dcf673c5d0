package geom

import (
	"errors"
	"math"
)

// ErrDegenerate reports a polygon with fewer than three distinct points.
var ErrDegenerate = errors.New("geom: degenerate polygon")

// Polygon is an implicitly closed ring of points.
type Polygon []Point

// SignedArea is the shoelace area: positive for counter-clockwise rings.
func (p Polygon) SignedArea() float64 {
	n := len(p)
	if n < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		a := p[i]
		b := p[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// Area is the absolute enclosed area.
func (p Polygon) Area() float64 { return math.Abs(p.SignedArea()) }

// CCW reports whether the ring winds counter-clockwise.
func (p Polygon) CCW() bool { return p.SignedArea() > 0 }

// Clone returns a copy of p.
func (p Polygon) Clone() Polygon {
	out := make(Polygon, len(p))
	copy(out, p)
	return out
}

// Reversed returns a copy of p with the opposite winding.
func (p Polygon) Reversed() Polygon {
	out := make(Polygon, len(p))
	for i, pt := range p {
		out[len(p)-1-i] = pt
	}
	return out
}

// Oriented returns p wound counter-clockwise when ccw is true, clockwise
// otherwise. p itself is returned when it already has that winding.
func (p Polygon) Oriented(ccw bool) Polygon {
	if p.CCW() == ccw {
		return p
	}
	return p.Reversed()
}

// Bounds returns the bounding box of p.
func (p Polygon) Bounds() Rect {
	if len(p) == 0 {
		return Rect{}
	}
	r := Rect{Min: p[0], Max: p[0]}
	for _, pt := range p[1:] {
		r.Min.X = math.Min(r.Min.X, pt.X)
		r.Min.Y = math.Min(r.Min.Y, pt.Y)
		r.Max.X = math.Max(r.Max.X, pt.X)
		r.Max.Y = math.Max(r.Max.Y, pt.Y)
	}
	return r
}

// Edge returns the directed edge starting at vertex i.
func (p Polygon) Edge(i int) (Point, Point) {
	return p[i], p[(i+1)%len(p)]
}

// Winding returns the winding number of p around pt.
func (p Polygon) Winding(pt Point) int {
	w := 0
	n := len(p)
	for i := 0; i < n; i++ {
		a, b := p[i], p[(i+1)%n]
		if a.Y <= pt.Y {
			if b.Y > pt.Y && b.Sub(a).Cross(pt.Sub(a)) > 0 {
				w++
			}
		} else if b.Y <= pt.Y && b.Sub(a).Cross(pt.Sub(a)) < 0 {
			w--
		}
	}
	return w
}

// Contains reports whether pt lies inside p.
func (p Polygon) Contains(pt Point) bool { return p.Winding(pt) != 0 }

// Distance is the distance from pt to the boundary of p.
func (p Polygon) Distance(pt Point) float64 {
	best := math.Inf(1)
	for i := range p {
		a, b := p.Edge(i)
		best = math.Min(best, SegmentDistance(pt, a, b))
	}
	return best
}

// Convex reports whether every turn of p has the same direction.
func (p Polygon) Convex() bool {
	n := len(p)
	if n < 3 {
		return false
	}
	sign := 0
	for i := 0; i < n; i++ {
		a, b, c := p[i], p[(i+1)%n], p[(i+2)%n]
		cr := b.Sub(a).Cross(c.Sub(b))
		if cr == 0 {
			continue
		}
		s := 1
		if cr < 0 {
			s = -1
		}
		if sign == 0 {
			sign = s
		} else if s != sign {
			return false
		}
	}
	return sign != 0
}

// Dedupe drops consecutive repeated points, including a closing point equal
// to the first. It returns ErrDegenerate when fewer than three remain.
func (p Polygon) Dedupe() (Polygon, error) {
	out := make(Polygon, 0, len(p))
	for _, pt := range p {
		if len(out) > 0 && out[len(out)-1].Eq(pt) {
			continue
		}
		out = append(out, pt)
	}
	for len(out) > 1 && out[0].Eq(out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	if len(out) < 3 {
		return out, ErrDegenerate
	}
	return out, nil
}
