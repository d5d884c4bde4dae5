package config

import (
	_ "embed"
)

//go:embed defaults/demo.yaml
var defaultDemoYAML []byte

// DefaultDemoConfig returns the hard-coded demo configuration.
func DefaultDemoConfig() DemoConfig {
	return DemoConfig{
		TickRate:     30,
		RotatePeriod: 4.0,
		Scene:        "demo",
		Camera: CameraConfig{
			HalfHeight: 10.0,
			CellAspect: 2.0,
		},
		Palette: PaletteConfig{
			Bounds:    "gray",
			Shape:     "white",
			Origin:    "gray",
			Box:       "bright_green",
			Path:      "yellow",
			Stop:      "bright_magenta",
			Remainder: "gray",
			Normal:    "bright_magenta",
			Pointer:   "bright_cyan",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDemoYAML
}
