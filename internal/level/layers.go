package level

import (
	"image/color"

	"cave-golf/internal/mesh"
)

// Palette colors for the parts of a level that are not buffer bands.
var (
	Background = color.RGBA{R: 47, G: 168, B: 202, A: 255}
	Dirt       = color.RGBA{R: 32, G: 12, B: 4, A: 255}
	Grass      = color.RGBA{R: 68, G: 255, B: 15, A: 255}
	Sand       = color.RGBA{R: 212, G: 139, B: 33, A: 255}
	SandGround = color.RGBA{R: 248, G: 235, B: 99, A: 255}
	StartColor = color.RGBA{R: 235, G: 235, B: 235, A: 255}
	GoalColor  = color.RGBA{R: 220, G: 40, B: 40, A: 255}
)

// Layer is a mesh with the color it is painted in.
type Layer struct {
	Tag   string
	Color color.RGBA
	Mesh  mesh.Mesh
}

// Layers lists the meshes of g in painting order, back to front. Empty
// meshes are left out.
func Layers(g *mesh.Geometry) []Layer {
	if g == nil {
		return nil
	}
	out := []Layer{{Tag: "unbuffed", Color: Dirt, Mesh: g.Unbuffed}}
	for i := len(g.Bands) - 1; i >= 0; i-- {
		b := g.Bands[i]
		out = append(out, Layer{Tag: b.Buffer.Tag, Color: b.Buffer.Color, Mesh: b.Mesh})
	}
	out = append(out,
		Layer{Tag: "ground", Color: Grass, Mesh: g.Ground},
		Layer{Tag: "pits", Color: Sand, Mesh: g.Pits},
		Layer{Tag: "pit-ground", Color: SandGround, Mesh: g.PitGround},
		Layer{Tag: "start", Color: StartColor, Mesh: g.StartPad},
		Layer{Tag: "goal", Color: GoalColor, Mesh: g.GoalPad},
	)
	kept := out[:0]
	for _, l := range out {
		if !l.Mesh.Empty() {
			kept = append(kept, l)
		}
	}
	return kept
}
