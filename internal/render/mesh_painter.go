//go:build ebiten

package render

import (
	"image"
	"image/color"

	"cave-golf/internal/level"
	"cave-golf/internal/mesh"

	"github.com/hajimehoshi/ebiten/v2"
)

// ebiten indexes vertices with uint16, so large meshes are drawn in chunks.
const maxBatchVertices = 1<<16 - 1

// MeshPainter draws level layers with DrawTriangles.
type MeshPainter struct {
	white *ebiten.Image

	vs    []ebiten.Vertex
	is    []uint16
	remap map[uint32]uint16
}

// NewMeshPainter allocates the solid source image used for fills.
func NewMeshPainter() *MeshPainter {
	base := ebiten.NewImage(3, 3)
	base.Fill(color.White)
	return &MeshPainter{
		white: base.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		remap: make(map[uint32]uint16),
	}
}

// Draw paints layers back to front.
func (mp *MeshPainter) Draw(dst *ebiten.Image, layers []level.Layer, v View) {
	for _, l := range layers {
		mp.DrawMesh(dst, l.Mesh, l.Color, v)
	}
}

// DrawMesh paints one mesh in a flat color.
func (mp *MeshPainter) DrawMesh(dst *ebiten.Image, m mesh.Mesh, col color.RGBA, v View) {
	r := float32(col.R) / 255
	g := float32(col.G) / 255
	b := float32(col.B) / 255
	a := float32(col.A) / 255

	mp.reset()
	for t := 0; t+2 < len(m.Indices); t += 3 {
		if len(mp.vs)+3 > maxBatchVertices {
			mp.flush(dst)
		}
		for _, idx := range m.Indices[t : t+3] {
			local, ok := mp.remap[idx]
			if !ok {
				x, y := v.ToPixel(m.Vertex(idx))
				local = uint16(len(mp.vs))
				mp.vs = append(mp.vs, ebiten.Vertex{
					DstX: x, DstY: y,
					SrcX: 1, SrcY: 1,
					ColorR: r, ColorG: g, ColorB: b, ColorA: a,
				})
				mp.remap[idx] = local
			}
			mp.is = append(mp.is, local)
		}
	}
	mp.flush(dst)
}

func (mp *MeshPainter) flush(dst *ebiten.Image) {
	if len(mp.is) > 0 {
		dst.DrawTriangles(mp.vs, mp.is, mp.white, &ebiten.DrawTrianglesOptions{})
	}
	mp.reset()
}

func (mp *MeshPainter) reset() {
	mp.vs = mp.vs[:0]
	mp.is = mp.is[:0]
	clear(mp.remap)
}
