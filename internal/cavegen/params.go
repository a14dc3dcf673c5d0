package cavegen

// Params controls grid generation. WallChance is a percentage (0..100);
// MinOpenPercent is the fraction (0..1) of the grid the kept region must
// cover.
type Params struct {
	Width  int
	Height int

	WallChance          int
	MinSurroundingWalls int
	Iterations          int
	PillarIterations    int
	MinOpenPercent      float64

	// MaxAttempts bounds rejection sampling; 0 selects DefaultMaxAttempts.
	MaxAttempts int

	// NoiseBias shifts the per-cell wall chance by up to this many
	// percentage points following Perlin noise. Zero disables it.
	NoiseBias  float64
	NoiseScale float64
}

// DefaultMaxAttempts is the retry ceiling used when Params.MaxAttempts is 0.
const DefaultMaxAttempts = 1000

// DefaultParams returns the classic cave settings.
func DefaultParams() Params {
	return Params{
		Width:               35,
		Height:              25,
		WallChance:          40,
		MinSurroundingWalls: 5,
		Iterations:          5,
		PillarIterations:    5,
		MinOpenPercent:      0.3,
		MaxAttempts:         DefaultMaxAttempts,
		NoiseScale:          8,
	}
}

func (p Params) attempts() int {
	if p.MaxAttempts <= 0 {
		return DefaultMaxAttempts
	}
	return p.MaxAttempts
}
