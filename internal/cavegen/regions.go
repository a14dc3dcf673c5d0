package cavegen

import "cave-golf/internal/core"

// Regions returns every 4-connected open region as a list of cell indices,
// in scan order of their first cell.
func Regions(g core.Grid) [][]int {
	cells := g.Cells()
	seen := make([]bool, len(cells))
	var regions [][]int
	queue := make([]int, 0, len(cells))
	for start, c := range cells {
		if c != core.Open || seen[start] {
			continue
		}
		queue = queue[:0]
		queue = append(queue, start)
		seen[start] = true
		for head := 0; head < len(queue); head++ {
			idx := queue[head]
			x, y := idx%g.W, idx/g.W
			for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
				nx, ny := x+d[0], y+d[1]
				if !g.InBounds(nx, ny) {
					continue
				}
				n := g.Index(nx, ny)
				if seen[n] || cells[n] != core.Open {
					continue
				}
				seen[n] = true
				queue = append(queue, n)
			}
		}
		region := make([]int, len(queue))
		copy(region, queue)
		regions = append(regions, region)
	}
	return regions
}

// LargestRegion returns the biggest open region, or nil when the grid has no
// open cell. Ties keep the first region found.
func LargestRegion(g core.Grid) []int {
	var best []int
	for _, r := range Regions(g) {
		if len(r) > len(best) {
			best = r
		}
	}
	return best
}

// KeepLargestRegion walls every open cell outside the largest region and
// returns the number of open cells left.
func KeepLargestRegion(g core.Grid) int {
	keep := LargestRegion(g)
	cells := g.Cells()
	mark := make([]bool, len(cells))
	for _, idx := range keep {
		mark[idx] = true
	}
	for i, c := range cells {
		if c == core.Open && !mark[i] {
			cells[i] = core.Wall
		}
	}
	return len(keep)
}
