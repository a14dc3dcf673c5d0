package mesh

import (
	"fmt"
	"image/color"
	"log"
	"sort"

	"cave-golf/internal/geom"
	"cave-golf/internal/hazard"
	"cave-golf/internal/placement"
	pcore "cave-golf/pkg/core"
)

// PlatformBuffer is one band around the cave walls, Distance away from the
// contours.
type PlatformBuffer struct {
	Distance float64
	Color    color.RGBA
	Tag      string
}

// Options controls Build.
type Options struct {
	Buffers      []PlatformBuffer
	GroundHeight float64
	// Jitter is the largest random displacement applied to contour points.
	Jitter float64
	Seed   int64

	Start *placement.Flat
	Goal  *placement.Flat
	Pits  []hazard.SandPit

	// Logger receives notes about skipped contours. Nil is silent.
	Logger *log.Logger
}

// DefaultBuffers are the band distances and colors of the classic look.
func DefaultBuffers() []PlatformBuffer {
	return []PlatformBuffer{
		{Distance: 0.2, Color: color.RGBA{R: 68, G: 255, B: 15, A: 255}, Tag: "grass"},
		{Distance: 1.5, Color: color.RGBA{R: 46, G: 197, B: 0, A: 255}, Tag: "turf"},
		{Distance: 6.5, Color: color.RGBA{R: 55, G: 30, B: 11, A: 255}, Tag: "dirt"},
	}
}

// DefaultOptions returns the classic build settings.
func DefaultOptions() Options {
	return Options{
		Buffers:      DefaultBuffers(),
		GroundHeight: 0.6,
		Jitter:       0.01,
	}
}

// Band is the ring between two buffer levels.
type Band struct {
	Buffer PlatformBuffer
	Mesh   Mesh
}

// Geometry is everything a renderer needs to draw a level.
type Geometry struct {
	// Frame bounds the whole level including the outermost band.
	Frame geom.Rect
	// Levels holds the loops of every buffer level; level 0 is the
	// jittered contours.
	Levels [][]geom.Polygon

	Bands    []Band
	Unbuffed Mesh
	Ground   Mesh

	StartPad Mesh
	GoalPad  Mesh

	Pits      Mesh
	PitGround Mesh
}

func (o Options) logf(format string, args ...any) {
	if o.Logger != nil {
		o.Logger.Printf(format, args...)
	}
}

// Build produces the render geometry for contours. contours[0] is the
// exterior. Contours that degenerate after jitter are skipped.
func Build(contours []geom.Polygon, opts Options) (*Geometry, error) {
	if len(contours) == 0 {
		return nil, fmt.Errorf("mesh: no contours: %w", geom.ErrDegenerate)
	}
	buffers := append([]PlatformBuffer(nil), opts.Buffers...)
	sort.SliceStable(buffers, func(i, j int) bool { return buffers[i].Distance < buffers[j].Distance })

	rng := pcore.NewRNG(opts.Seed)
	var base []geom.Polygon
	for i, c := range contours {
		j, err := geom.Jitter(c, opts.Jitter, rng)
		if err != nil {
			if i == 0 {
				return nil, fmt.Errorf("mesh: exterior contour: %w", err)
			}
			opts.logf("mesh: skipping contour %d: %v", i, err)
			continue
		}
		base = append(base, j)
	}

	levels := make([][]geom.Polygon, 0, len(buffers)+1)
	levels = append(levels, base)
	maxDist := 0.0
	for _, b := range buffers {
		levels = append(levels, geom.OffsetAll(base, b.Distance))
		if b.Distance > maxDist {
			maxDist = b.Distance
		}
	}

	bounds, _ := geom.BoundsOf(base)
	g := &Geometry{
		Frame:  bounds.Grow(maxDist + 1),
		Levels: levels,
	}
	for k, b := range buffers {
		loops := append(append([]geom.Polygon(nil), levels[k]...), levels[k+1]...)
		g.Bands = append(g.Bands, Band{Buffer: b, Mesh: Fill(loops)})
	}
	outer := append([]geom.Polygon{g.Frame.Polygon()}, levels[len(levels)-1]...)
	g.Unbuffed = Fill(outer)
	g.Ground = GroundStrip(base, opts.GroundHeight, true)

	if opts.Start != nil {
		g.StartPad = Pad(*opts.Start, opts.GroundHeight)
	}
	if opts.Goal != nil {
		g.GoalPad = Pad(*opts.Goal, opts.GroundHeight)
	}
	for _, pit := range opts.Pits {
		outline := pit.Outline
		if len(outline) < 3 {
			outline = pit.Shape
		}
		g.Pits.Append(Fill([]geom.Polygon{outline}))
		g.PitGround.Append(GroundStrip([]geom.Polygon{outline}, opts.GroundHeight, false))
	}
	return g, nil
}

// Pad is a rounded block of height h standing on flat f.
func Pad(f placement.Flat, h float64) Mesh {
	r := f.Rect(h)
	radius := r.W()
	if r.H() < radius {
		radius = r.H()
	}
	poly := geom.RoundedRect(r, radius/4)
	return FromBatches([]geom.Batch{{Mode: geom.Fan, Points: poly}})
}
