package demo

import (
	"github.com/vovakirdan/tui-shapecast/internal/config"
	"github.com/vovakirdan/tui-shapecast/internal/core"
)

// Palette assigns a colour to each drawn element.
type Palette struct {
	Bounds    core.Color
	Shape     core.Color
	Origin    core.Color
	Box       core.Color
	Path      core.Color
	Stop      core.Color
	Remainder core.Color
	Normal    core.Color
	Pointer   core.Color
}

// DefaultPalette mirrors config.DefaultDemoConfig().Palette.
func DefaultPalette() Palette {
	return Palette{
		Bounds:    core.ColorGray,
		Shape:     core.ColorWhite,
		Origin:    core.ColorGray,
		Box:       core.ColorBrightGreen,
		Path:      core.ColorYellow,
		Stop:      core.ColorBrightMagenta,
		Remainder: core.ColorGray,
		Normal:    core.ColorBrightMagenta,
		Pointer:   core.ColorBrightCyan,
	}
}

// PaletteFrom resolves colour names. Unknown or empty names keep the default
// for that element and are reported in unknown.
func PaletteFrom(cfg config.PaletteConfig) (p Palette, unknown []string) {
	p = DefaultPalette()
	fields := []struct {
		name string
		dst  *core.Color
	}{
		{cfg.Bounds, &p.Bounds},
		{cfg.Shape, &p.Shape},
		{cfg.Origin, &p.Origin},
		{cfg.Box, &p.Box},
		{cfg.Path, &p.Path},
		{cfg.Stop, &p.Stop},
		{cfg.Remainder, &p.Remainder},
		{cfg.Normal, &p.Normal},
		{cfg.Pointer, &p.Pointer},
	}
	for _, f := range fields {
		if f.name == "" {
			continue
		}
		c, ok := core.ParseColor(f.name)
		if !ok {
			unknown = append(unknown, f.name)
			continue
		}
		*f.dst = c
	}
	return p, unknown
}
