package level

import (
	"encoding/json"
	"io"

	"cave-golf/internal/geom"
	"cave-golf/internal/placement"
)

// Record is the JSON form of a level.
type Record struct {
	Seed     int64             `json:"seed"`
	Preset   string            `json:"preset,omitempty"`
	Width    int               `json:"width"`
	Height   int               `json:"height"`
	Grid     []string          `json:"grid"`
	Contours [][][2]float64    `json:"contours"`
	Start    FlatRecord        `json:"start"`
	Goal     FlatRecord        `json:"goal"`
	Pits     []PitRecord       `json:"pits"`
	Params   map[string]string `json:"params"`
	Frame    [4]float64        `json:"frame"`
	Meshes   []MeshRecord      `json:"meshes,omitempty"`
}

// FlatRecord is a placement flat.
type FlatRecord struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Width float64 `json:"width"`
}

// PitRecord is a sand pit.
type PitRecord struct {
	Outline [][2]float64 `json:"outline"`
	Shape   [][2]float64 `json:"shape"`
	Margin  [][2]float64 `json:"margin"`
}

// MeshRecord is one tagged triangle mesh.
type MeshRecord struct {
	Tag      string    `json:"tag"`
	Color    [4]uint8  `json:"color"`
	Vertices []float32 `json:"vertices"`
	Indices  []uint32  `json:"indices"`
}

// Record converts l to its JSON form. Meshes are included when withMeshes
// is set.
func (l *Level) Record(withMeshes bool) Record {
	r := Record{
		Seed:   l.Config.Seed,
		Preset: l.Config.Preset,
		Width:  l.Grid.W,
		Height: l.Grid.H,
		Grid:   l.Grid.Rows(),
		Start:  flatRecord(l.Start),
		Goal:   flatRecord(l.Goal),
		Params: map[string]string{},
	}
	for _, c := range l.Contours {
		r.Contours = append(r.Contours, points(c))
	}
	for _, p := range l.Pits {
		r.Pits = append(r.Pits, PitRecord{
			Outline: points(p.Outline),
			Shape:   points(p.Shape),
			Margin:  points(p.Margin),
		})
	}
	for _, g := range l.Config.Parameters().Groups {
		for _, p := range g.Params {
			r.Params[p.Key] = p.Value
		}
	}
	if g := l.Geometry; g != nil {
		r.Frame = [4]float64{g.Frame.Min.X, g.Frame.Min.Y, g.Frame.Max.X, g.Frame.Max.Y}
		if withMeshes {
			for _, layer := range Layers(g) {
				c := layer.Color
				r.Meshes = append(r.Meshes, MeshRecord{
					Tag:      layer.Tag,
					Color:    [4]uint8{c.R, c.G, c.B, c.A},
					Vertices: layer.Mesh.Vertices,
					Indices:  layer.Mesh.Indices,
				})
			}
		}
	}
	return r
}

// Export writes l as indented JSON.
func Export(w io.Writer, l *Level, withMeshes bool) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(l.Record(withMeshes))
}

func flatRecord(f placement.Flat) FlatRecord {
	return FlatRecord{X: f.Pos.X, Y: f.Pos.Y, Width: f.Width}
}

func points(p geom.Polygon) [][2]float64 {
	out := make([][2]float64, len(p))
	for i, pt := range p {
		out[i] = [2]float64{pt.X, pt.Y}
	}
	return out
}

