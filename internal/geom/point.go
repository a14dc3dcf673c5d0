// Package geom holds the planar geometry used to turn cave contours into
// collidable and renderable shapes: polygons, rectangles, offsetting,
// tessellation and overlap tests.
package geom

import "math"

// Point is a position in contour space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Scale(k float64) Point { return Point{p.X * k, p.Y * k} }
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }
func (p Point) Len() float64 { return math.Hypot(p.X, p.Y) }
func (p Point) Dist(q Point) float64 { return p.Sub(q).Len() }
func (p Point) Eq(q Point) bool { return p.X == q.X && p.Y == q.Y }
func (p Point) Mid(q Point) Point { return Point{(p.X + q.X) / 2, (p.Y + q.Y) / 2} }
func (p Point) Lerp(q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

// Unit returns p scaled to length 1, or the zero point when p is zero.
func (p Point) Unit() Point {
	l := p.Len()
	if l == 0 {
		return Point{}
	}
	return Point{p.X / l, p.Y / l}
}

// RightNormal is the unit vector pointing to the right of direction p.
func (p Point) RightNormal() Point {
	u := p.Unit()
	return Point{u.Y, -u.X}
}

// SegmentDistance returns the distance from p to the segment ab.
func SegmentDistance(p, a, b Point) float64 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return p.Dist(a)
	}
	t := p.Sub(a).Dot(ab) / l2
	switch {
	case t <= 0:
		return p.Dist(a)
	case t >= 1:
		return p.Dist(b)
	}
	return p.Dist(a.Add(ab.Scale(t)))
}

// SegmentIntersection solves a+t(b-a) = c+u(d-c). ok is false for parallel
// segments or when the crossing lies outside either segment.
func SegmentIntersection(a, b, c, d Point) (t, u float64, ok bool) {
	r := b.Sub(a)
	s := d.Sub(c)
	denom := r.Cross(s)
	if math.Abs(denom) <= 1e-12*r.Len()*s.Len() {
		return 0, 0, false
	}
	ac := c.Sub(a)
	t = ac.Cross(s) / denom
	u = ac.Cross(r) / denom
	const eps = 1e-12
	if t < -eps || t > 1+eps || u < -eps || u > 1+eps {
		return t, u, false
	}
	return t, u, true
}

// SegmentsTouch reports whether segments ab and cd share at least one point,
// including collinear overlap.
func SegmentsTouch(a, b, c, d Point) bool {
	o1 := orient(a, b, c)
	o2 := orient(a, b, d)
	o3 := orient(c, d, a)
	o4 := orient(c, d, b)
	if o1 != o2 && o3 != o4 {
		return true
	}
	return (o1 == 0 && within(a, c, b)) ||
		(o2 == 0 && within(a, d, b)) ||
		(o3 == 0 && within(c, a, d)) ||
		(o4 == 0 && within(c, b, d))
}

func orient(a, b, c Point) int {
	v := b.Sub(a).Cross(c.Sub(a))
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// within reports whether q lies in the bounding box of segment pr.
func within(p, q, r Point) bool {
	return q.X <= math.Max(p.X, r.X) && q.X >= math.Min(p.X, r.X) &&
		q.Y <= math.Max(p.Y, r.Y) && q.Y >= math.Min(p.Y, r.Y)
}
