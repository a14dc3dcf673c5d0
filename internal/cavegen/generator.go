// Package cavegen grows cave occupancy grids with a seeded cellular
// automaton and rejection sampling.
package cavegen

import (
	"errors"
	"fmt"

	"cave-golf/internal/core"
	pcore "cave-golf/pkg/core"

	"github.com/aquilax/go-perlin"
)

// ErrGenerationFailed is returned when no acceptable grid was produced
// within the retry ceiling.
var ErrGenerationFailed = errors.New("cavegen: generation failed")

// Stats describes a successful generation run.
type Stats struct {
	Attempts  int
	OpenCells int
}

// Generate produces a grid with wall borders and a single 4-connected open
// region covering at least MinOpenPercent of the cells.
func Generate(p Params, rng *pcore.RNG) (core.Grid, Stats, error) {
	if p.Width < 3 || p.Height < 3 {
		return core.Grid{}, Stats{}, fmt.Errorf("%w: grid %dx%d too small", ErrGenerationFailed, p.Width, p.Height)
	}
	var noise *perlin.Perlin
	if p.NoiseBias > 0 {
		noise = perlin.NewPerlin(2, 2, 3, rng.Int63())
	}

	cur := core.NewGrid(p.Width, p.Height)
	nxt := core.NewGrid(p.Width, p.Height)
	minOpen := int(p.MinOpenPercent * float64(p.Width*p.Height))
	limit := p.attempts()
	for attempt := 1; attempt <= limit; attempt++ {
		seed(cur, p, rng, noise)
		for i := 0; i < p.PillarIterations; i++ {
			Step(cur, nxt, p.MinSurroundingWalls, true)
			cur, nxt = nxt, cur
		}
		for i := 0; i < p.Iterations; i++ {
			Step(cur, nxt, p.MinSurroundingWalls, false)
			cur, nxt = nxt, cur
		}
		open := KeepLargestRegion(cur)
		if open == 0 || open < minOpen {
			continue
		}
		return cur.Clone(), Stats{Attempts: attempt, OpenCells: open}, nil
	}
	return core.Grid{}, Stats{Attempts: limit}, fmt.Errorf("%w after %d attempts", ErrGenerationFailed, limit)
}

func seed(g core.Grid, p Params, rng *pcore.RNG, noise *perlin.Perlin) {
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if x == 0 || y == 0 || x == g.W-1 || y == g.H-1 {
				g.Set(x, y, core.Wall)
				continue
			}
			chance := p.WallChance
			if noise != nil {
				scale := p.NoiseScale
				if scale <= 0 {
					scale = 1
				}
				chance += int(p.NoiseBias * noise.Noise2D(float64(x)/scale, float64(y)/scale))
			}
			v := core.Open
			if rng.IntN(100) < chance {
				v = core.Wall
			}
			g.Set(x, y, v)
		}
	}
}
