// Package config provides YAML-based configuration loading for the
// shapecast demo.
package config

import "fmt"

// DemoConfig contains all configuration for the interactive demo.
type DemoConfig struct {
	TickRate     int           `yaml:"tick_rate"`     // Simulation ticks per second
	RotatePeriod float64       `yaml:"rotate_period"` // Seconds between slope rotations, 0 disables
	Scene        string        `yaml:"scene"`         // Scene shown at startup
	ScenesDir    string        `yaml:"scenes_dir"`    // Extra YAML scenes, empty for builtins only
	RecordCasts  bool          `yaml:"record_casts"`
	Camera       CameraConfig  `yaml:"camera"`
	Palette      PaletteConfig `yaml:"palette"`
}

// CameraConfig defines how world units map onto terminal cells.
type CameraConfig struct {
	HalfHeight float64 `yaml:"half_height"` // World units from the centre to the top edge
	CellAspect float64 `yaml:"cell_aspect"` // Cell height divided by cell width
}

// PaletteConfig names a colour for each element of the demo drawing.
type PaletteConfig struct {
	Bounds    string `yaml:"bounds"`
	Shape     string `yaml:"shape"`
	Origin    string `yaml:"origin"`
	Box       string `yaml:"box"`
	Path      string `yaml:"path"`
	Stop      string `yaml:"stop"`
	Remainder string `yaml:"remainder"`
	Normal    string `yaml:"normal"`
	Pointer   string `yaml:"pointer"`
}

// RotateTicks converts RotatePeriod to a tick count. Zero means never rotate.
func (c DemoConfig) RotateTicks() int {
	if c.RotatePeriod <= 0 {
		return 0
	}
	n := int(c.RotatePeriod * float64(c.TickRate))
	if n < 1 {
		n = 1
	}
	return n
}

// Validate reports the first invalid setting.
func (c DemoConfig) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("config: tick_rate must be positive, got %d", c.TickRate)
	}
	if c.RotatePeriod < 0 {
		return fmt.Errorf("config: rotate_period must not be negative, got %g", c.RotatePeriod)
	}
	if c.Camera.HalfHeight <= 0 {
		return fmt.Errorf("config: camera.half_height must be positive, got %g", c.Camera.HalfHeight)
	}
	if c.Camera.CellAspect <= 0 {
		return fmt.Errorf("config: camera.cell_aspect must be positive, got %g", c.Camera.CellAspect)
	}
	if c.Scene == "" {
		return fmt.Errorf("config: scene must be set")
	}
	return nil
}
