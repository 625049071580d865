package config

import "sort"

// Presets are named array setups. Seed 0 means a fresh seed per run.
var Presets = map[string]*Config{
	"classic": {
		Algorithm: "bubble", Speed: 10, BaseDelayMS: 100,
		Array: ArrayConfig{Size: 50, Min: 1, Max: 100, Shape: "random"},
	},
	"tiny": {
		Algorithm: "insertion", Speed: 2, BaseDelayMS: 100,
		Array: ArrayConfig{Size: 8, Min: 1, Max: 20, Shape: "random"},
	},
	"reversed": {
		Algorithm: "insertion", Speed: 20, BaseDelayMS: 100,
		Array: ArrayConfig{Size: 50, Min: 1, Max: 100, Shape: "reversed"},
	},
	"nearly_sorted": {
		Algorithm: "insertion", Speed: 10, BaseDelayMS: 100,
		Array: ArrayConfig{Size: 50, Min: 1, Max: 100, Shape: "nearly_sorted"},
	},
	"few_unique": {
		Algorithm: "quick", Speed: 10, BaseDelayMS: 100,
		Array: ArrayConfig{Size: 50, Min: 1, Max: 100, Shape: "few_unique"},
	},
	"wide": {
		Algorithm: "merge", Speed: 50, BaseDelayMS: 100,
		Array: ArrayConfig{Size: 200, Min: 1, Max: 100, Shape: "random"},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	c.LogLevel = DefaultLogLevel
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
