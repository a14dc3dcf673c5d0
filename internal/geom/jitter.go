package geom

import "cave-golf/pkg/core"

// Jitter moves every point of p by a uniform offset in [0, amount) on each
// axis. Tiny perturbations keep offsetting and tessellation away from exact
// collinear and coincident configurations. Consecutive duplicates are
// removed afterwards.
func Jitter(p Polygon, amount float64, rng *core.RNG) (Polygon, error) {
	out := make(Polygon, len(p))
	for i, pt := range p {
		if amount > 0 {
			pt.X += rng.Float64() * amount
			pt.Y += rng.Float64() * amount
		}
		out[i] = pt
	}
	return out.Dedupe()
}
