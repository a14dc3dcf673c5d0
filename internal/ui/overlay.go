//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"cave-golf/internal/geom"
	"cave-golf/internal/level"
	"cave-golf/internal/placement"
	"cave-golf/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional debugging visuals on top of the level meshes.
type Overlay struct {
	showContours bool
	showFlats    bool
	showMargins  bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	o := &Overlay{}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles overlays from the number keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showContours = !o.showContours
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showFlats = !o.showFlats
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showMargins = !o.showMargins
	}
}

// Draw renders the enabled overlays for l.
func (o *Overlay) Draw(screen *ebiten.Image, l *level.Level, v render.View) {
	if l == nil {
		return
	}
	if o.showContours {
		for i, c := range l.Contours {
			col := color.RGBA{R: 255, G: 255, B: 255, A: 200}
			if i > 0 {
				col = color.RGBA{R: 255, G: 200, B: 60, A: 200}
			}
			o.drawLoop(screen, c, v, 1, col)
		}
	}
	if o.showFlats {
		cfg := l.Config
		for _, f := range placement.Candidates(l.Contours, cfg.MinFlatWidth, cfg.FlatEdgeBuffer) {
			end := geom.Pt(f.Pos.X+f.Width, f.Pos.Y)
			o.drawSegment(screen, f.Pos, end, v, 3, color.RGBA{R: 80, G: 140, B: 255, A: 230})
			cell := placement.CellOf(f)
			o.drawPoint(screen, geom.Pt(float64(2*cell.Col), float64(2*cell.Row)), v, 5, color.RGBA{R: 80, G: 140, B: 255, A: 255})
		}
	}
	if o.showMargins {
		for _, p := range l.Pits {
			o.drawLoop(screen, p.Margin, v, 1, color.RGBA{R: 255, G: 80, B: 80, A: 220})
			o.drawLoop(screen, p.Shape, v, 1, color.RGBA{R: 255, G: 255, B: 255, A: 160})
		}
		cfg := l.Config
		for _, f := range []placement.Flat{l.Start, l.Goal} {
			o.drawLoop(screen, f.Rect(cfg.GroundHeight).Polygon(), v, 1, color.RGBA{R: 255, G: 80, B: 80, A: 220})
		}
	}
}

func (o *Overlay) drawLoop(screen *ebiten.Image, p geom.Polygon, v render.View, thickness float64, col color.RGBA) {
	for i := range p {
		a, b := p.Edge(i)
		o.drawSegment(screen, a, b, v, thickness, col)
	}
}

func (o *Overlay) drawSegment(screen *ebiten.Image, a, b geom.Point, v render.View, thickness float64, col color.RGBA) {
	x1, y1 := v.ToPixel(a)
	x2, y2 := v.ToPixel(b)
	o.drawLine(screen, float64(x1), float64(y1), float64(x2), float64(y2), thickness, col)
}

func (o *Overlay) drawPoint(screen *ebiten.Image, p geom.Point, v render.View, size float64, col color.RGBA) {
	if size <= 0 {
		return
	}
	x, y := v.ToPixel(p)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(float64(x)-size*0.5, float64(y)-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
