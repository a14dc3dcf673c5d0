//go:build !ebiten

package ui

import "cave-golf/internal/core"

// Source feeds the HUD.
type Source interface {
	Title() string
	Status() []string
	Parameters() core.ParameterSnapshot
	ParameterControls() []core.ParameterControl
}

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(Source, int) *HUD { return nil }

// Width is zero in the headless build.
func (h *HUD) Width() int { return 0 }

// Update is a no-op in the headless build.
func (h *HUD) Update(int) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
