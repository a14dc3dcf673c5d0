package core

import (
	"fmt"
	"strings"
)

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeBool denotes boolean parameters.
	ParamTypeBool ParamType = "bool"
)

// Parameter describes a single generation setting.
type Parameter struct {
	Key         string
	Label       string
	Type        ParamType
	Value       string
	Description string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the settings a level was generated with.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Find returns the parameter stored under key.
func (s ParameterSnapshot) Find(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// Lines formats the snapshot as "group: key=value" lines for logs and
// terminal panels.
func (s ParameterSnapshot) Lines() []string {
	var out []string
	for _, g := range s.Groups {
		parts := make([]string, 0, len(g.Params))
		for _, p := range g.Params {
			parts = append(parts, fmt.Sprintf("%s=%s", p.Key, p.Value))
		}
		out = append(out, fmt.Sprintf("%s: %s", g.Name, strings.Join(parts, " ")))
	}
	return out
}

// ParameterControl describes an adjustable parameter that should be exposed on
// the HUD. Steps and bounds are optional and interpreted based on the
// parameter type.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType

	Step float64

	Min    float64
	Max    float64
	HasMin bool
	HasMax bool
}

// IntParameterSetter allows HUD interactions to update integer parameters.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}

// FloatParameterSetter allows HUD interactions to update floating point
// parameters.
type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}
