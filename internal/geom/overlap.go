package geom

// Overlaps reports whether two simple polygons share any point: their
// boundaries touch or cross, or one lies inside the other.
func Overlaps(a, b Polygon) bool {
	if len(a) < 3 || len(b) < 3 {
		return false
	}
	ab, bb := a.Bounds(), b.Bounds()
	if ab.Max.X < bb.Min.X || bb.Max.X < ab.Min.X || ab.Max.Y < bb.Min.Y || bb.Max.Y < ab.Min.Y {
		return false
	}
	for i := range a {
		a0, a1 := a.Edge(i)
		for j := range b {
			b0, b1 := b.Edge(j)
			if SegmentsTouch(a0, a1, b0, b1) {
				return true
			}
		}
	}
	return b.Contains(a[0]) || a.Contains(b[0])
}

// OverlapsRect reports whether p shares any point with r.
func OverlapsRect(p Polygon, r Rect) bool {
	return Overlaps(p, r.Polygon())
}

// OverlapsAny reports whether p overlaps at least one polygon of others.
func OverlapsAny(p Polygon, others []Polygon) bool {
	for _, o := range others {
		if Overlaps(p, o) {
			return true
		}
	}
	return false
}
