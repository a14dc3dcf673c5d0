// Package render turns level meshes into pixels, either headless through
// golang.org/x/image/vector or on screen through ebiten.
package render

import (
	"math"

	"cave-golf/internal/geom"
)

// View maps contour space onto a pixel canvas. Contour space is y-up while
// pixels are y-down.
type View struct {
	Frame geom.Rect
	Scale float64
}

// FitView returns the largest integer-ish scale at which frame fits into a
// w by h canvas.
func FitView(frame geom.Rect, w, h int) View {
	s := 1.0
	if frame.W() > 0 && frame.H() > 0 {
		s = math.Min(float64(w)/frame.W(), float64(h)/frame.H())
	}
	if s <= 0 {
		s = 1
	}
	return View{Frame: frame, Scale: s}
}

// Size is the canvas size in pixels.
func (v View) Size() (int, int) {
	return int(math.Ceil(v.Frame.W() * v.Scale)), int(math.Ceil(v.Frame.H() * v.Scale))
}

// ToPixel converts a contour-space point to pixel coordinates.
func (v View) ToPixel(p geom.Point) (float32, float32) {
	x := (p.X - v.Frame.Min.X) * v.Scale
	y := (v.Frame.Max.Y - p.Y) * v.Scale
	return float32(x), float32(y)
}

// GridCellSize is the pixel size of one grid cell, which spans two units of
// contour space.
func (v View) GridCellSize() float64 { return 2 * v.Scale }

// GridCorner is the contour-space top-left corner of the grid image.
func GridCorner(h int) geom.Point {
	return geom.Pt(-1, float64(2*h-1))
}
