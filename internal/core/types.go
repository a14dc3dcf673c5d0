package core

// Size describes the dimensions of a grid or viewport.
type Size struct {
	W int
	H int
}

// Area returns W*H.
func (s Size) Area() int { return s.W * s.H }
