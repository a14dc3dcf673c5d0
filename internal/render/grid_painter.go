//go:build ebiten

package render

import (
	"image/color"

	"cave-golf/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads an occupancy grid into an image, one pixel per cell.
type GridPainter struct {
	size core.Size
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for grids of the given size.
func NewGridPainter(size core.Size) *GridPainter {
	gp := &GridPainter{size: size, buf: make([]byte, 4*size.Area())}
	gp.img = ebiten.NewImage(size.W, size.H)
	return gp
}

// Blit draws g scaled so that each cell covers the cell size of v.
func (gp *GridPainter) Blit(dst *ebiten.Image, g core.Grid, v View, wall, open color.RGBA) {
	if g.Size() != gp.size {
		return
	}
	FillGridRGBA(gp.buf, g, wall, open)
	gp.img.WritePixels(gp.buf)

	// grid cell (0, 0) is centred on contour point (0, 0)
	x0, y0 := v.ToPixel(GridCorner(g.H))
	s := v.GridCellSize()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(float64(x0), float64(y0))
	dst.DrawImage(gp.img, op)
}

// Size returns the grid size the painter was made for.
func (gp *GridPainter) Size() core.Size { return gp.size }
