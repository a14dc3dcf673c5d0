// Package mesh turns cave contours into indexed triangle meshes: colored
// bands around the walls, the solid rock beyond them, a pseudo-3D ground
// strip, start and goal pads, and sand pits.
package mesh

import (
	"math"

	"cave-golf/internal/geom"
)

// Mesh is an indexed triangle list. Vertices holds x,y pairs; every three
// indices form a triangle.
type Mesh struct {
	Vertices []float32
	Indices  []uint32
}

// VertexCount returns the number of vertices.
func (m Mesh) VertexCount() int { return len(m.Vertices) / 2 }

// TriangleCount returns the number of triangles.
func (m Mesh) TriangleCount() int { return len(m.Indices) / 3 }

// Empty reports whether the mesh has no triangles.
func (m Mesh) Empty() bool { return len(m.Indices) == 0 }

// Vertex returns vertex i.
func (m Mesh) Vertex(i uint32) geom.Point {
	return geom.Pt(float64(m.Vertices[2*i]), float64(m.Vertices[2*i+1]))
}

func (m *Mesh) add(p geom.Point) uint32 {
	m.Vertices = append(m.Vertices, float32(p.X), float32(p.Y))
	return uint32(len(m.Vertices)/2 - 1)
}

// Append adds the triangles of o to m.
func (m *Mesh) Append(o Mesh) {
	base := uint32(m.VertexCount())
	m.Vertices = append(m.Vertices, o.Vertices...)
	for _, i := range o.Indices {
		m.Indices = append(m.Indices, base+i)
	}
}

// Area sums the absolute area of every triangle.
func (m Mesh) Area() float64 {
	total := 0.0
	for t := 0; t+2 < len(m.Indices); t += 3 {
		a := m.Vertex(m.Indices[t])
		b := m.Vertex(m.Indices[t+1])
		c := m.Vertex(m.Indices[t+2])
		total += math.Abs(b.Sub(a).Cross(c.Sub(a))) / 2
	}
	return total
}

// Bounds returns the bounding box of the vertices.
func (m Mesh) Bounds() (geom.Rect, bool) {
	if m.VertexCount() == 0 {
		return geom.Rect{}, false
	}
	r := geom.Rect{Min: m.Vertex(0), Max: m.Vertex(0)}
	for i := 1; i < m.VertexCount(); i++ {
		r = r.Union(geom.Rect{Min: m.Vertex(uint32(i)), Max: m.Vertex(uint32(i))})
	}
	return r, true
}

// FromBatches flattens tessellator output into one mesh. Fans expand to
// (first, i+1, i+2); strips alternate (i, i+1, i+2) and (i, i+2, i+1).
func FromBatches(batches []geom.Batch) Mesh {
	var m Mesh
	for _, b := range batches {
		base := uint32(m.VertexCount())
		for _, p := range b.Points {
			m.add(p)
		}
		n := uint32(len(b.Points))
		switch b.Mode {
		case geom.Triangles:
			for i := uint32(0); i+2 < n; i += 3 {
				m.Indices = append(m.Indices, base+i, base+i+1, base+i+2)
			}
		case geom.Fan:
			for i := uint32(0); i+2 < n; i++ {
				m.Indices = append(m.Indices, base, base+i+1, base+i+2)
			}
		case geom.Strip:
			for i := uint32(0); i+2 < n; i++ {
				if i%2 == 0 {
					m.Indices = append(m.Indices, base+i, base+i+1, base+i+2)
				} else {
					m.Indices = append(m.Indices, base+i, base+i+2, base+i+1)
				}
			}
		}
	}
	return m
}

// Fill tessellates loops with the odd winding rule.
func Fill(loops []geom.Polygon) Mesh {
	return FromBatches(geom.Tessellate(loops))
}
