package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"cave-golf/internal/level"
	"cave-golf/internal/mesh"

	"golang.org/x/image/vector"
)

// Rasterize paints layers back to front onto a new image sized by v.
func Rasterize(layers []level.Layer, v View, bg color.RGBA) *image.RGBA {
	w, h := v.Size()
	if w <= 0 || h <= 0 {
		w, h = 1, 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	z := vector.NewRasterizer(w, h)
	for _, l := range layers {
		z.Reset(w, h)
		if !addMesh(z, l.Mesh, v) {
			continue
		}
		z.Draw(img, img.Bounds(), image.NewUniform(l.Color), image.Point{})
	}
	return img
}

func addMesh(z *vector.Rasterizer, m mesh.Mesh, v View) bool {
	n := 0
	for t := 0; t+2 < len(m.Indices); t += 3 {
		ax, ay := v.ToPixel(m.Vertex(m.Indices[t]))
		bx, by := v.ToPixel(m.Vertex(m.Indices[t+1]))
		cx, cy := v.ToPixel(m.Vertex(m.Indices[t+2]))
		// Overlapping triangles of opposite turn would cancel out.
		if (bx-ax)*(cy-ay)-(by-ay)*(cx-ax) < 0 {
			bx, by, cx, cy = cx, cy, bx, by
		}
		z.MoveTo(ax, ay)
		z.LineTo(bx, by)
		z.LineTo(cx, cy)
		z.ClosePath()
		n++
	}
	return n > 0
}

// WritePNG rasterises a level and encodes it as PNG.
func WritePNG(w io.Writer, l *level.Level, scale float64) error {
	v := View{Frame: l.Geometry.Frame, Scale: scale}
	img := Rasterize(level.Layers(l.Geometry), v, level.Background)
	return png.Encode(w, img)
}

// GridImage renders the raw occupancy grid, one pixel per cell.
func GridImage(l *level.Level) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, l.Grid.W, l.Grid.H))
	FillGridRGBA(img.Pix, l.Grid, level.Dirt, level.Background)
	return img
}
