package placement

import (
	"errors"
	"fmt"

	"cave-golf/internal/core"
	"cave-golf/internal/geom"
)

var (
	// ErrTooFewFlats means fewer than two flats are wide enough for a pad.
	ErrTooFewFlats = errors.New("placement: too few flats")
	// ErrNoPath means two candidate flats are not connected through open cells.
	ErrNoPath = errors.New("placement: no path between flats")
)

// CellOf maps the middle of a flat to the open grid cell resting on it.
func CellOf(f Flat) Cell {
	mid := f.Middle()
	return Cell{Col: int(mid.X / 2), Row: int(mid.Y/2) + 1}
}

// Candidates keeps flats at least minWidth wide after trimming edgeBuffer
// from both ends, and returns them trimmed.
func Candidates(contours []geom.Polygon, minWidth, edgeBuffer float64) []Flat {
	var out []Flat
	for _, f := range FindFlats(contours) {
		if f.Width >= minWidth+2*edgeBuffer {
			out = append(out, f.Buffer(-edgeBuffer))
		}
	}
	return out
}

// PlaceStartAndGoal picks the ordered pair of candidate flats that maximises
// the goal width plus the grid path length between them.
func PlaceStartAndGoal(contours []geom.Polygon, g core.Grid, minWidth, edgeBuffer float64) (start, goal Flat, err error) {
	flats := Candidates(contours, minWidth, edgeBuffer)
	i, j, err := choosePair(flats, func(a, b Flat) (int, bool) {
		return PathLength(g, CellOf(a), CellOf(b))
	})
	if err != nil {
		return Flat{}, Flat{}, err
	}
	return flats[i], flats[j], nil
}

func choosePair(flats []Flat, length func(a, b Flat) (int, bool)) (int, int, error) {
	if len(flats) < 2 {
		return 0, 0, fmt.Errorf("%w: %d candidates", ErrTooFewFlats, len(flats))
	}
	bi, bj := -1, -1
	best := 0.0
	for i, a := range flats {
		for j, b := range flats {
			if i == j {
				continue
			}
			n, ok := length(a, b)
			if !ok {
				return 0, 0, fmt.Errorf("%w: %v to %v", ErrNoPath, CellOf(a), CellOf(b))
			}
			score := b.Width + float64(n)
			if bi < 0 || score > best {
				bi, bj, best = i, j, score
			}
		}
	}
	return bi, bj, nil
}
