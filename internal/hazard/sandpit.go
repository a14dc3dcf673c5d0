// Package hazard places sand pits in the floor depressions of a cave.
package hazard

import (
	"math"

	"cave-golf/internal/geom"
	pcore "cave-golf/pkg/core"
)

// Provenance records where a pit came from.
type Provenance int

const (
	// Committed pits belong to the generated level.
	Committed Provenance = iota
	// Preview pits are shown while editing and never collide.
	Preview
)

func (p Provenance) String() string {
	if p == Preview {
		return "preview"
	}
	return "committed"
}

// SandPit is a hazard filling a depression of the cave floor.
type SandPit struct {
	// Outline is the rendered shape with a rippled surface.
	Outline geom.Polygon
	// Shape is the depression closed by a horizontal lid.
	Shape geom.Polygon
	// Margin is Shape grown by the ball radius.
	Margin     geom.Polygon
	Provenance Provenance
}

// Params controls sand pit placement.
type Params struct {
	MinArea    float64
	MaxArea    float64
	MaxCount   int
	BallRadius float64
	Avoid      []geom.Rect

	RippleAmplitude  float64
	RippleWavelength float64
}

// DefaultParams mirrors the easy level settings.
func DefaultParams() Params {
	return Params{
		MinArea:          2,
		MaxArea:          36,
		MaxCount:         3,
		BallRadius:       0.6,
		RippleAmplitude:  0.15,
		RippleWavelength: 1.5,
	}
}

// Depressions returns every floor depression of the exterior contour,
// closed by a horizontal lid at the height where it starts.
func Depressions(exterior geom.Polygon) []geom.Polygon {
	n := len(exterior)
	if n < 3 {
		return nil
	}
	top := 0
	for i, p := range exterior {
		if p.Y > exterior[top].Y {
			top = i
		}
	}

	var out []geom.Polygon
	var stack []int
	for k := 0; k < n; k++ {
		i := (top + k) % n
		j := (i + 1) % n
		yi, yj := exterior[i].Y, exterior[j].Y
		switch {
		case yj < yi:
			stack = append(stack, i)
		case yj > yi:
			for len(stack) > 0 {
				s := stack[len(stack)-1]
				ys := exterior[s].Y
				if ys > yj {
					break
				}
				stack = stack[:len(stack)-1]
				t := (ys - yi) / (yj - yi)
				lid := exterior[i].Lerp(exterior[j], math.Max(0, math.Min(1, t)))
				lid.Y = ys
				var shape geom.Polygon
				for m := s; m != j; m = (m + 1) % n {
					shape = append(shape, exterior[m])
				}
				shape = append(shape, lid)
				if len(shape) >= 4 {
					out = append(out, shape)
				}
			}
		}
	}
	return out
}

// lidClear reports whether the lid of shape, its closing edge, stays clear
// of every contour edge away from its endpoints.
func lidClear(shape geom.Polygon, contours []geom.Polygon) bool {
	a := shape[len(shape)-1]
	b := shape[0]
	const eps = 1e-6
	a2 := a.Lerp(b, eps)
	b2 := b.Lerp(a, eps)
	for _, c := range contours {
		for k := range c {
			p, q := c.Edge(k)
			if geom.SegmentsTouch(a2, b2, p, q) {
				return false
			}
		}
	}
	return true
}

func largestLoop(loops []geom.Polygon) geom.Polygon {
	var best geom.Polygon
	for _, l := range loops {
		if l.SignedArea() > best.SignedArea() {
			best = l
		}
	}
	return best
}

// Candidates returns every depression that passes the area, margin and
// clearance filters, in contour order.
func Candidates(contours []geom.Polygon, p Params) []SandPit {
	if len(contours) == 0 {
		return nil
	}
	var out []SandPit
	for _, shape := range Depressions(contours[0]) {
		area := shape.SignedArea()
		if area <= 0 || area < p.MinArea || area > p.MaxArea {
			continue
		}
		if !lidClear(shape, contours) {
			continue
		}
		loops, err := geom.Offset(shape, p.BallRadius)
		if err != nil {
			continue
		}
		margin := largestLoop(loops)
		if len(margin) < 3 {
			continue
		}
		blocked := geom.OverlapsAny(margin, contours[1:])
		for _, r := range p.Avoid {
			if blocked {
				break
			}
			blocked = geom.OverlapsRect(margin, r)
		}
		if blocked {
			continue
		}
		out = append(out, SandPit{Shape: shape, Margin: margin, Provenance: Committed})
	}
	return out
}

// PlaceSandPits draws candidates at random and keeps those whose margin
// overlaps no pit kept so far, up to MaxCount.
func PlaceSandPits(contours []geom.Polygon, p Params, rng *pcore.RNG) []SandPit {
	remaining := Candidates(contours, p)
	var accepted []SandPit
	var margins []geom.Polygon
	for len(remaining) > 0 && len(accepted) < p.MaxCount {
		k := rng.IntN(len(remaining))
		pit := remaining[k]
		remaining = append(remaining[:k], remaining[k+1:]...)
		if geom.OverlapsAny(pit.Margin, margins) {
			continue
		}
		pit.Outline = ripple(pit.Shape, p, rng)
		accepted = append(accepted, pit)
		margins = append(margins, pit.Margin)
	}
	return accepted
}

// ripple resamples the lid of shape into a gently waving surface that dips
// below the lid and meets it at both ends.
func ripple(shape geom.Polygon, p Params, rng *pcore.RNG) geom.Polygon {
	out := shape.Clone()
	from := shape[len(shape)-1]
	to := shape[0]
	length := from.Dist(to)
	wl := p.RippleWavelength
	if wl <= 0 || p.RippleAmplitude <= 0 || length == 0 {
		return out
	}
	steps := int(math.Ceil(length / (wl / 4)))
	phase := rng.Float64() * 2 * math.Pi
	for k := 1; k < steps; k++ {
		u := float64(k) / float64(steps)
		pt := from.Lerp(to, u)
		wave := 0.5 + 0.5*math.Sin(2*math.Pi*u*length/wl+phase)
		pt.Y -= p.RippleAmplitude * math.Sin(math.Pi*u) * wave
		out = append(out, pt)
	}
	return out
}
