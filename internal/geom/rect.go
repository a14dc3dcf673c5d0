package geom

import "math"

// Rect is an axis-aligned rectangle with Min <= Max.
type Rect struct {
	Min, Max Point
}

// R builds a normalised rectangle from two corners.
func R(x0, y0, x1, y1 float64) Rect {
	return Rect{
		Min: Point{math.Min(x0, x1), math.Min(y0, y1)},
		Max: Point{math.Max(x0, x1), math.Max(y0, y1)},
	}
}

func (r Rect) W() float64 { return r.Max.X - r.Min.X }
func (r Rect) H() float64 { return r.Max.Y - r.Min.Y }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.W() <= 0 || r.H() <= 0 }

// Intersects reports whether r and o overlap with positive area.
func (r Rect) Intersects(o Rect) bool {
	return r.Min.X < o.Max.X && o.Min.X < r.Max.X &&
		r.Min.Y < o.Max.Y && o.Min.Y < r.Max.Y
}

// Contains reports whether p is inside r or on its border.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Grow expands r by d on every side.
func (r Rect) Grow(d float64) Rect {
	return Rect{Min: Point{r.Min.X - d, r.Min.Y - d}, Max: Point{r.Max.X + d, r.Max.Y + d}}
}

// Union returns the smallest rectangle containing r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Min: Point{math.Min(r.Min.X, o.Min.X), math.Min(r.Min.Y, o.Min.Y)},
		Max: Point{math.Max(r.Max.X, o.Max.X), math.Max(r.Max.Y, o.Max.Y)},
	}
}

// Center returns the midpoint of r.
func (r Rect) Center() Point { return r.Min.Mid(r.Max) }

// Polygon returns the corners of r in counter-clockwise order.
func (r Rect) Polygon() Polygon {
	return Polygon{
		{r.Min.X, r.Min.Y},
		{r.Max.X, r.Min.Y},
		{r.Max.X, r.Max.Y},
		{r.Min.X, r.Max.Y},
	}
}

// Subtract returns up to four rectangles covering r minus o.
func (r Rect) Subtract(o Rect) []Rect {
	if !r.Intersects(o) {
		return []Rect{r}
	}
	var out []Rect
	if o.Min.Y > r.Min.Y {
		out = append(out, Rect{Min: r.Min, Max: Point{r.Max.X, o.Min.Y}})
	}
	if o.Max.Y < r.Max.Y {
		out = append(out, Rect{Min: Point{r.Min.X, o.Max.Y}, Max: r.Max})
	}
	y0 := math.Max(r.Min.Y, o.Min.Y)
	y1 := math.Min(r.Max.Y, o.Max.Y)
	if o.Min.X > r.Min.X {
		out = append(out, Rect{Min: Point{r.Min.X, y0}, Max: Point{o.Min.X, y1}})
	}
	if o.Max.X < r.Max.X {
		out = append(out, Rect{Min: Point{o.Max.X, y0}, Max: Point{r.Max.X, y1}})
	}
	return out
}

// BoundsOf returns the bounding box of every point in polys. ok is false
// when there are no points.
func BoundsOf(polys []Polygon) (r Rect, ok bool) {
	for _, p := range polys {
		if len(p) == 0 {
			continue
		}
		b := p.Bounds()
		if !ok {
			r, ok = b, true
			continue
		}
		r = r.Union(b)
	}
	return r, ok
}

// RoundedRect returns r with its corners rounded by radius, counter-clockwise.
// The radius is clamped to half the shorter side.
func RoundedRect(r Rect, radius float64) Polygon {
	radius = math.Max(0, math.Min(radius, math.Min(r.W(), r.H())/2))
	if radius == 0 {
		return r.Polygon()
	}
	centres := [4]Point{
		{r.Max.X - radius, r.Min.Y + radius},
		{r.Max.X - radius, r.Max.Y - radius},
		{r.Min.X + radius, r.Max.Y - radius},
		{r.Min.X + radius, r.Min.Y + radius},
	}
	out := make(Polygon, 0, 4*(ArcSegments+1))
	for q, c := range centres {
		start := -math.Pi/2 + float64(q)*math.Pi/2
		for k := 0; k <= ArcSegments; k++ {
			a := start + float64(k)*(math.Pi/2)/ArcSegments
			out = append(out, Point{c.X + radius*math.Cos(a), c.Y + radius*math.Sin(a)})
		}
	}
	clean, _ := out.Dedupe()
	return clean
}
