package level

import (
	"strconv"
	"strings"

	"cave-golf/internal/core"
)

// Parameters reports the settings for display and export.
func (c Config) Parameters() core.ParameterSnapshot {
	pits := make([]string, len(c.PitCounts))
	for i, n := range c.PitCounts {
		pits[i] = strconv.Itoa(n)
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("w", "Width", c.Grid.Width),
				intParam("h", "Height", c.Grid.Height),
				int64Param("seed", "Seed", c.Seed),
				intParam("wall_chance", "Wall chance %", c.Grid.WallChance),
				intParam("min_walls", "Min surrounding walls", c.Grid.MinSurroundingWalls),
				intParam("iterations", "Iterations", c.Grid.Iterations),
				intParam("pillar_iterations", "Pillar iterations", c.Grid.PillarIterations),
				floatParam("min_open", "Min open fraction", c.Grid.MinOpenPercent),
				floatParam("noise_bias", "Noise bias", c.Grid.NoiseBias),
			},
		},
		{
			Name: "Placement",
			Params: []core.Parameter{
				floatParam("min_flat_width", "Min flat width", c.MinFlatWidth),
				floatParam("flat_edge_buffer", "Flat edge buffer", c.FlatEdgeBuffer),
			},
		},
		{
			Name: "Sand pits",
			Params: []core.Parameter{
				floatParam("pit_min_area", "Min area", c.Hazards.MinArea),
				floatParam("pit_max_area", "Max area", c.Hazards.MaxArea),
				floatParam("ball_radius", "Ball radius", c.Hazards.BallRadius),
				{Key: "pits", Label: "Max pits", Type: core.ParamTypeInt, Value: strings.Join(pits, ",")},
			},
		},
		{
			Name: "Geometry",
			Params: []core.Parameter{
				floatParam("ground_height", "Ground height", c.GroundHeight),
				floatParam("jitter", "Jitter", c.Jitter),
			},
		},
	}}
}

// ParameterControls lists the settings the viewer HUD can adjust.
func (c Config) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "wall_chance", Label: "Wall chance %", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 100, HasMin: true, HasMax: true},
		{Key: "min_walls", Label: "Min walls", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 9, HasMin: true, HasMax: true},
		{Key: "iterations", Label: "Iterations", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true},
		{Key: "pillar_iterations", Label: "Pillar iterations", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true},
		{Key: "noise_bias", Label: "Noise bias", Type: core.ParamTypeFloat, Step: 5, Min: 0, Max: 50, HasMin: true, HasMax: true},
		{Key: "min_flat_width", Label: "Min flat width", Type: core.ParamTypeFloat, Step: 0.5, Min: 0.5, HasMin: true},
	}
}

// SetIntParameter updates an integer setting, clamping to its control range.
func (c *Config) SetIntParameter(key string, value int) bool {
	ctl, ok := controlFor(*c, key, core.ParamTypeInt)
	if !ok {
		return false
	}
	v := clamp(float64(value), ctl)
	return c.Apply(key, strconv.Itoa(int(v))) == nil
}

// SetFloatParameter updates a floating point setting, clamping to its
// control range.
func (c *Config) SetFloatParameter(key string, value float64) bool {
	ctl, ok := controlFor(*c, key, core.ParamTypeFloat)
	if !ok {
		return false
	}
	v := clamp(value, ctl)
	return c.Apply(key, strconv.FormatFloat(v, 'f', -1, 64)) == nil
}

func controlFor(c Config, key string, typ core.ParamType) (core.ParameterControl, bool) {
	for _, ctl := range c.ParameterControls() {
		if ctl.Key == key && ctl.Type == typ {
			return ctl, true
		}
	}
	return core.ParameterControl{}, false
}

func clamp(v float64, ctl core.ParameterControl) float64 {
	if ctl.HasMin && v < ctl.Min {
		v = ctl.Min
	}
	if ctl.HasMax && v > ctl.Max {
		v = ctl.Max
	}
	return v
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
