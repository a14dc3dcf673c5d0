// Package term previews levels in a terminal using half-block characters.
package term

import (
	"image"
	"image/color"

	"cave-golf/internal/geom"
	"cave-golf/internal/level"
	"cave-golf/internal/render"
)

// Block is one terminal cell: the upper and lower half pixel.
type Block struct {
	Top, Bottom color.RGBA
}

// HalfBlocks pairs image rows into terminal rows. An odd last row is padded
// with bg.
func HalfBlocks(img *image.RGBA, bg color.RGBA) [][]Block {
	b := img.Bounds()
	rows := (b.Dy() + 1) / 2
	out := make([][]Block, rows)
	for r := 0; r < rows; r++ {
		line := make([]Block, b.Dx())
		for x := 0; x < b.Dx(); x++ {
			top := img.RGBAAt(b.Min.X+x, b.Min.Y+2*r)
			bottom := bg
			if y := b.Min.Y + 2*r + 1; y < b.Max.Y {
				bottom = img.RGBAAt(b.Min.X+x, y)
			}
			line[x] = Block{Top: top, Bottom: bottom}
		}
		out[r] = line
	}
	return out
}

// Frame renders l into at most cols by rows terminal cells.
func Frame(l *level.Level, cols, rows int) [][]Block {
	if l == nil || l.Geometry == nil || cols <= 0 || rows <= 0 {
		return nil
	}
	v := render.FitView(l.Geometry.Frame, cols, rows*2)
	img := Rasterize(l, v)
	return HalfBlocks(img, level.Background)
}

// Rasterize paints the level meshes and marks the start and goal with
// solid pixels so they remain visible at low resolution.
func Rasterize(l *level.Level, v render.View) *image.RGBA {
	img := render.Rasterize(level.Layers(l.Geometry), v, level.Background)
	mark := func(p geom.Point, c color.RGBA) {
		x, y := v.ToPixel(p)
		pt := image.Pt(int(x), int(y)-1)
		if pt.In(img.Bounds()) {
			img.SetRGBA(pt.X, pt.Y, c)
		}
	}
	mark(l.Start.Middle(), level.StartColor)
	mark(l.Goal.Middle(), level.GoalColor)
	return img
}
