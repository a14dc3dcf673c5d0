package core

// Cell values stored in a Grid.
const (
	Open uint8 = 0
	Wall uint8 = 1
)

// Grid stores a 2D occupancy grid in row-major order. Row 0 is the bottom
// row so grid coordinates share the y-up orientation of contour space.
type Grid struct {
	W, H int
	data []uint8
}

// NewGrid allocates an all-open grid with the given dimensions.
func NewGrid(w, h int) Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return Grid{W: w, H: h, data: make([]uint8, w*h)}
}

// GridFromRows builds a grid from rows listed top to bottom, the way grids
// are usually written out in tests: '#' is wall, anything else is open.
func GridFromRows(rows ...string) Grid {
	h := len(rows)
	w := 0
	for _, r := range rows {
		if len(r) > w {
			w = len(r)
		}
	}
	g := NewGrid(w, h)
	for i, r := range rows {
		y := h - 1 - i
		for x := 0; x < w; x++ {
			if x >= len(r) || r[x] == '#' {
				g.Set(x, y, Wall)
			}
		}
	}
	return g
}

// Size returns the grid dimensions.
func (g Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so callers can read/write values directly.
func (g Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) lies inside the grid.
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// At returns the cell value, treating out-of-bounds coordinates as wall.
func (g Grid) At(x, y int) uint8 {
	if !g.InBounds(x, y) {
		return Wall
	}
	return g.data[y*g.W+x]
}

// IsWall reports whether (x, y) is a wall or outside the grid.
func (g Grid) IsWall(x, y int) bool { return g.At(x, y) != Open }

// Set writes a cell value; out-of-bounds writes are ignored.
func (g Grid) Set(x, y int, v uint8) {
	if !g.InBounds(x, y) {
		return
	}
	g.data[y*g.W+x] = v
}

// Fill sets every cell to v.
func (g Grid) Fill(v uint8) {
	for i := range g.data {
		g.data[i] = v
	}
}

// OpenCount returns the number of open cells.
func (g Grid) OpenCount() int {
	n := 0
	for _, c := range g.data {
		if c == Open {
			n++
		}
	}
	return n
}

// Clone returns a deep copy.
func (g Grid) Clone() Grid {
	out := Grid{W: g.W, H: g.H, data: make([]uint8, len(g.data))}
	copy(out.data, g.data)
	return out
}

// Rows renders the grid top to bottom using '#' for walls and '.' for open
// cells; it is the inverse of GridFromRows.
func (g Grid) Rows() []string {
	rows := make([]string, g.H)
	buf := make([]byte, g.W)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.IsWall(x, y) {
				buf[x] = '#'
			} else {
				buf[x] = '.'
			}
		}
		rows[g.H-1-y] = string(buf)
	}
	return rows
}
