package cavegen

import "cave-golf/internal/core"

// Step runs one smoothing pass from src into dst. An interior cell becomes
// wall when its 3x3 block, itself included, holds at least minWalls walls.
// With pillars set, a cell whose block holds no wall at all also becomes
// wall, which breaks up large open halls. Border cells are copied unchanged.
func Step(src, dst core.Grid, minWalls int, pillars bool) {
	w, h := src.W, src.H
	in := src.Cells()
	out := dst.Cells()
	copy(out, in)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			walls := 0
			for dy := -1; dy <= 1; dy++ {
				row := (y + dy) * w
				for dx := -1; dx <= 1; dx++ {
					if in[row+x+dx] != core.Open {
						walls++
					}
				}
			}
			v := core.Open
			if walls >= minWalls || (pillars && walls == 0) {
				v = core.Wall
			}
			out[y*w+x] = v
		}
	}
}
