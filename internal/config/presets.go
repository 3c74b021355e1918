package config

import "sort"

var Presets = map[string]*Config{
	"classic": {
		Algorithm: "bubble", Draw: "bars", FPS: 60, Theme: "mono",
		Source: SourceConfig{Count: 100, Pattern: "random"},
		Window: WindowConfig{Width: 1024, Height: 768, Title: DefaultTitle},
	},
	"tiny": {
		Algorithm: "insertion", Draw: "bars", FPS: 10, Theme: "mono",
		Source: SourceConfig{Count: 16, Pattern: "random"},
		Window: WindowConfig{Width: 640, Height: 480, Title: DefaultTitle},
	},
	"reversed": {
		Algorithm: "gnome", Draw: "bars", FPS: 120, Theme: "amber",
		Source: SourceConfig{Count: 60, Pattern: "reversed"},
		Window: WindowConfig{Width: 1024, Height: 768, Title: DefaultTitle},
	},
	"nearly": {
		Algorithm: "cocktail", Draw: "points", FPS: 30, Theme: "ocean",
		Source: SourceConfig{Count: 200, Pattern: "nearly"},
		Window: WindowConfig{Width: 1024, Height: 768, Title: DefaultTitle},
	},
	"dense": {
		Algorithm: "selection", Draw: "points", FPS: 60, Theme: "neon",
		Source: SourceConfig{Count: 500, Pattern: "few"},
		Window: WindowConfig{Width: 1280, Height: 720, Title: DefaultTitle},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *p
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
