// Package placement finds flat ground on cave contours and picks the start
// and goal pads.
package placement

import (
	"math"

	"cave-golf/internal/geom"
)

// Flat is a horizontal run of ground. Pos is its leftmost point.
type Flat struct {
	Pos   geom.Point
	Width float64
}

// Middle returns the centre of the run.
func (f Flat) Middle() geom.Point {
	return geom.Pt(f.Pos.X+f.Width/2, f.Pos.Y)
}

// Extend grows the run so it reaches x.
func (f Flat) Extend(x float64) Flat {
	switch {
	case x < f.Pos.X:
		return Flat{Pos: geom.Pt(x, f.Pos.Y), Width: f.Pos.X + f.Width - x}
	case x > f.Pos.X+f.Width:
		return Flat{Pos: f.Pos, Width: x - f.Pos.X}
	}
	return f
}

// Buffer grows the run by amount on both ends; a negative amount shrinks it.
func (f Flat) Buffer(amount float64) Flat {
	return Flat{Pos: geom.Pt(f.Pos.X-amount, f.Pos.Y), Width: f.Width + 2*amount}
}

// Rect is the footprint of a pad of height h standing on the run.
func (f Flat) Rect(h float64) geom.Rect {
	return geom.R(f.Pos.X, f.Pos.Y, f.Pos.X+f.Width, f.Pos.Y+h)
}

// GroundDirection returns +1 when edges of c that run towards +x have open
// space above them, -1 otherwise. Open space lies left of the edges of a
// counter-clockwise exterior and of a clockwise island.
func GroundDirection(c geom.Polygon, exterior bool) float64 {
	if c.CCW() == exterior {
		return 1
	}
	return -1
}

// FindFlats collects horizontal ground edges of every contour, merging
// consecutive ones. contours[0] is the exterior.
func FindFlats(contours []geom.Polygon) []Flat {
	var flats []Flat
	for i, c := range contours {
		dir := GroundDirection(c, i == 0)
		ground := func(j int) bool {
			a, b := c.Edge(j)
			return a.Y == b.Y && (b.X-a.X)*dir > 0
		}
		// Start after a non-ground edge so a run crossing index 0 stays whole.
		first := 0
		for j := range c {
			if !ground(j) {
				first = j + 1
				break
			}
		}
		prevFlat := false
		for k := 0; k < len(c); k++ {
			j := (first + k) % len(c)
			if !ground(j) {
				prevFlat = false
				continue
			}
			a, b := c.Edge(j)
			if prevFlat {
				flats[len(flats)-1] = flats[len(flats)-1].Extend(b.X)
			} else {
				x := math.Min(a.X, b.X)
				flats = append(flats, Flat{Pos: geom.Pt(x, a.Y), Width: math.Abs(b.X - a.X)})
			}
			prevFlat = true
		}
	}
	return flats
}
