// Package level runs the whole generation pipeline: cave grid, contours,
// start and goal flats, sand pits and render geometry.
package level

import (
	"errors"
	"fmt"
	"time"

	"cave-golf/internal/cavegen"
	"cave-golf/internal/contour"
	"cave-golf/internal/core"
	"cave-golf/internal/geom"
	"cave-golf/internal/hazard"
	"cave-golf/internal/mesh"
	"cave-golf/internal/placement"
	pcore "cave-golf/pkg/core"
)

// Level is one playable cave.
type Level struct {
	Config   Config
	Grid     core.Grid
	Contours []geom.Polygon
	Start    placement.Flat
	Goal     placement.Flat
	Pits     []hazard.SandPit
	Geometry *mesh.Geometry
	Stats    Stats
}

// Stats summarises the work done to produce a level.
type Stats struct {
	// Levels counts full pipeline runs, including discarded caves.
	Levels int
	// GridAttempts sums automaton attempts across those runs.
	GridAttempts int
	OpenCells    int
	Elapsed      time.Duration
}

// Generate builds a level from cfg. Caves without a usable start and goal
// pair are discarded and regenerated from the same random stream.
func Generate(cfg Config) (*Level, error) {
	began := time.Now()
	rng := pcore.NewRNG(cfg.Seed)
	stats := Stats{}
	var lastErr error

	for stats.Levels < cfg.levelAttempts() {
		stats.Levels++
		grid, gs, err := cavegen.Generate(cfg.Grid, rng)
		stats.GridAttempts += gs.Attempts
		if err != nil {
			return nil, fmt.Errorf("level: %w", err)
		}
		stats.OpenCells = gs.OpenCells

		contours := contour.Extract(grid)
		start, goal, err := placement.PlaceStartAndGoal(contours, grid, cfg.MinFlatWidth, cfg.FlatEdgeBuffer)
		if err != nil {
			if errors.Is(err, placement.ErrTooFewFlats) || errors.Is(err, placement.ErrNoPath) {
				lastErr = err
				cfg.logf("level: regenerating cave %d: %v", stats.Levels, err)
				continue
			}
			return nil, fmt.Errorf("level: %w", err)
		}

		hp := cfg.Hazards
		hp.MaxCount = pcore.Pick(rng, cfg.PitCounts)
		hp.Avoid = append(append([]geom.Rect(nil), hp.Avoid...),
			start.Rect(cfg.GroundHeight), goal.Rect(cfg.GroundHeight))
		pits := hazard.PlaceSandPits(contours, hp, rng)

		g, err := mesh.Build(contours, mesh.Options{
			Buffers:      cfg.Buffers,
			GroundHeight: cfg.GroundHeight,
			Jitter:       cfg.Jitter,
			Seed:         rng.Int63(),
			Start:        &start,
			Goal:         &goal,
			Pits:         pits,
			Logger:       cfg.Logger,
		})
		if err != nil {
			lastErr = err
			cfg.logf("level: regenerating cave %d: %v", stats.Levels, err)
			continue
		}

		stats.Elapsed = time.Since(began)
		cfg.logf("level: seed %d ready after %d caves (%d grid attempts) in %s",
			cfg.Seed, stats.Levels, stats.GridAttempts, stats.Elapsed)
		return &Level{
			Config:   cfg,
			Grid:     grid,
			Contours: contours,
			Start:    start,
			Goal:     goal,
			Pits:     pits,
			Geometry: g,
			Stats:    stats,
		}, nil
	}
	return nil, fmt.Errorf("level: %w: %d caves discarded, last: %v",
		cavegen.ErrGenerationFailed, stats.Levels, lastErr)
}

func (c Config) logf(format string, args ...any) {
	if c.Logger != nil {
		c.Logger.Printf(format, args...)
	}
}
