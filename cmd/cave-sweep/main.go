package main

import (
	"errors"
	"flag"
	"fmt"
	"runtime"
	"sort"
	"time"

	"cave-golf/internal/cavegen"
	"cave-golf/internal/level"

	"golang.org/x/sync/errgroup"
)

type paramSet struct {
	wallChance int
	minWalls   int
	iterations int
	pillars    int
}

func (p paramSet) String() string {
	return fmt.Sprintf("wall=%d minWalls=%d iter=%d pillars=%d", p.wallChance, p.minWalls, p.iterations, p.pillars)
}

type scenarioResult struct {
	params    paramSet
	ok        int
	failed    int
	caves     int
	attempts  int
	pits      int
	openCells int
	elapsed   time.Duration
}

func (r scenarioResult) rate() float64 {
	total := r.ok + r.failed
	if total == 0 {
		return 0
	}
	return float64(r.ok) / float64(total)
}

func (r scenarioResult) avg(v int) float64 {
	if r.ok == 0 {
		return 0
	}
	return float64(v) / float64(r.ok)
}

func main() {
	base := level.DefaultConfig()
	base.Bind(flag.CommandLine)
	seeds := flag.Int("seeds", 8, "levels generated per parameter set")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 5, "results to print")
	flag.Parse()

	wallOptions := []int{35, 40, 45}
	minWallOptions := []int{4, 5}
	iterationOptions := []int{3, 5}
	pillarOptions := []int{0, 5}

	var sets []paramSet
	for _, w := range wallOptions {
		for _, m := range minWallOptions {
			for _, it := range iterationOptions {
				for _, p := range pillarOptions {
					sets = append(sets, paramSet{wallChance: w, minWalls: m, iterations: it, pillars: p})
				}
			}
		}
	}

	fmt.Printf("Sweeping %d parameter sets (%d workers, %d seeds each, %dx%d)\n",
		len(sets), *workers, *seeds, base.Grid.Width, base.Grid.Height)

	results := make([]scenarioResult, len(sets))
	var g errgroup.Group
	g.SetLimit(*workers)
	start := time.Now()
	for i, params := range sets {
		g.Go(func() error {
			res, err := runScenario(base, params, *seeds)
			results[i] = res
			return err
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Printf("sweep aborted: %v\n", err)
		return
	}
	elapsed := time.Since(start)

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].rate() != results[j].rate() {
			return results[i].rate() > results[j].rate()
		}
		return results[i].avg(results[i].caves) < results[j].avg(results[j].caves)
	})

	fmt.Printf("\nTop %d results (elapsed %s):\n", *top, elapsed.Round(time.Millisecond))
	for i := 0; i < len(results) && i < *top; i++ {
		r := results[i]
		fmt.Printf("%2d) ok=%.0f%% caves=%.1f gridAttempts=%.1f pits=%.1f open=%.0f time=%s params=%s\n",
			i+1, 100*r.rate(), r.avg(r.caves), r.avg(r.attempts), r.avg(r.pits), r.avg(r.openCells),
			(r.elapsed / time.Duration(max(1, r.ok+r.failed))).Round(time.Millisecond), r.params)
	}
}

// runScenario only returns an error for failures other than running out of
// attempts, which are counted instead.
func runScenario(base level.Config, params paramSet, seeds int) (scenarioResult, error) {
	cfg := base
	cfg.Logger = nil
	cfg.Grid.WallChance = params.wallChance
	cfg.Grid.MinSurroundingWalls = params.minWalls
	cfg.Grid.Iterations = params.iterations
	cfg.Grid.PillarIterations = params.pillars

	res := scenarioResult{params: params}
	for s := 0; s < seeds; s++ {
		cfg.Seed = base.Seed + int64(s)
		began := time.Now()
		l, err := level.Generate(cfg)
		res.elapsed += time.Since(began)
		if err != nil {
			if errors.Is(err, cavegen.ErrGenerationFailed) {
				res.failed++
				continue
			}
			return res, fmt.Errorf("%s seed %d: %w", params, cfg.Seed, err)
		}
		res.ok++
		res.caves += l.Stats.Levels
		res.attempts += l.Stats.GridAttempts
		res.pits += len(l.Pits)
		res.openCells += l.Stats.OpenCells
	}
	return res, nil
}
