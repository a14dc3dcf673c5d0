package render

import (
	"image/color"

	"cave-golf/internal/core"
)

// FillGridRGBA converts grid cells into RGBA pixels in buf, one pixel per
// cell. Image rows run top to bottom, so grid row 0 lands on the last row.
func FillGridRGBA(buf []byte, g core.Grid, wall, open color.RGBA) {
	if len(buf) < 4*g.W*g.H {
		return
	}
	for y := 0; y < g.H; y++ {
		row := (g.H - 1 - y) * g.W
		for x := 0; x < g.W; x++ {
			col := open
			if g.IsWall(x, y) {
				col = wall
			}
			base := (row + x) * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}
