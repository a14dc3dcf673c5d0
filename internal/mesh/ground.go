package mesh

import (
	"cave-golf/internal/geom"
	"cave-golf/internal/placement"
)

// GroundStrip extrudes every ground-facing edge of the contours upwards by
// height into a quad. Consecutive ground edges share their vertices. The
// first contour is treated as the exterior unless exteriorFirst is false.
func GroundStrip(contours []geom.Polygon, height float64, exteriorFirst bool) Mesh {
	var m Mesh
	for i, c := range contours {
		dir := placement.GroundDirection(c, exteriorFirst && i == 0)
		prevGround := false
		for j := range c {
			c1, c2 := c.Edge(j)
			if (c2.X-c1.X)*dir <= 0 {
				prevGround = false
				continue
			}
			up := geom.Pt(0, height)
			if !prevGround {
				m.add(c1)
				m.add(c1.Add(up))
			}
			n := uint32(m.VertexCount())
			m.add(c2)
			m.add(c2.Add(up))
			// keep every quad counter-clockwise whichever way the edge runs
			var a, b, cc, d uint32
			if dir > 0 {
				a, b, cc, d = n-1, n-2, n, n+1
			} else {
				a, b, cc, d = n-2, n-1, n+1, n
			}
			m.Indices = append(m.Indices, a, b, cc, a, cc, d)
			prevGround = true
		}
	}
	return m
}
