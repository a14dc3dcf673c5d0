package level

import "sort"

// Preset produces a named starting configuration.
type Preset func() Config

var presets = map[string]Preset{}

// RegisterPreset adds a named preset. Later registrations replace earlier
// ones with the same name.
func RegisterPreset(name string, p Preset) {
	presets[name] = p
}

// Presets returns the registered presets.
func Presets() map[string]Preset {
	return presets
}

// PresetNames returns the registered names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ConfigFor returns the named preset, or false when it is unknown.
func ConfigFor(name string) (Config, bool) {
	p, ok := presets[name]
	if !ok {
		return Config{}, false
	}
	return p(), true
}

func easy() Config {
	c := base()
	c.Preset = "easy"
	c.Grid.Width, c.Grid.Height = 35, 25
	return c
}

func hard() Config {
	c := base()
	c.Preset = "hard"
	c.Grid.Width, c.Grid.Height = 60, 30
	return c
}

func init() {
	RegisterPreset("easy", easy)
	RegisterPreset("hard", hard)
}
