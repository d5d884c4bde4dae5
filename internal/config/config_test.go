package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedMatchesDefaults(t *testing.T) {
	var cfg DemoConfig
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &cfg))
	assert.Equal(t, DefaultDemoConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadDemoCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tick_rate: 60\nscene: ramps\ncamera:\n  half_height: 5\n"), 0o644))

	cfg, err := LoadDemo(path)
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.TickRate)
	assert.Equal(t, "ramps", cfg.Scene)
	assert.Equal(t, 5.0, cfg.Camera.HalfHeight)

	// Untouched keys keep defaults
	assert.Equal(t, 2.0, cfg.Camera.CellAspect)
	assert.Equal(t, DefaultDemoConfig().Palette, cfg.Palette)
	assert.Equal(t, 4.0, cfg.RotatePeriod)
}

func TestLoadDemoCustomErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadDemo(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("tick_rate: [1"), 0o644))
	_, err = LoadDemo(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("tick_rate: 0\n"), 0o644))
	_, err = LoadDemo(invalid)
	assert.Error(t, err)
}

func TestLoadDemoUserDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := LoadDemo("")
	require.NoError(t, err)
	assert.Equal(t, DefaultDemoConfig(), cfg)

	dir := filepath.Join(home, ".shapecast", "configs")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "demo.yaml"), []byte("record_casts: true\n"), 0o644))

	cfg, err = LoadDemo("")
	require.NoError(t, err)
	assert.True(t, cfg.RecordCasts)
	assert.Equal(t, filepath.Join(home, ".shapecast"), UserDataDir())

	// An invalid user file falls through to the defaults
	require.NoError(t, os.WriteFile(filepath.Join(dir, "demo.yaml"), []byte("camera:\n  half_height: -1\n"), 0o644))
	cfg, err = LoadDemo("")
	require.NoError(t, err)
	assert.Equal(t, DefaultDemoConfig(), cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*DemoConfig)
	}{
		{"zero tick rate", func(c *DemoConfig) { c.TickRate = 0 }},
		{"negative rotate period", func(c *DemoConfig) { c.RotatePeriod = -1 }},
		{"zero camera", func(c *DemoConfig) { c.Camera.HalfHeight = 0 }},
		{"zero aspect", func(c *DemoConfig) { c.Camera.CellAspect = 0 }},
		{"no scene", func(c *DemoConfig) { c.Scene = "" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultDemoConfig()
			tc.modify(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestRotateTicks(t *testing.T) {
	cfg := DefaultDemoConfig()
	assert.Equal(t, 120, cfg.RotateTicks())

	cfg.RotatePeriod = 0
	assert.Equal(t, 0, cfg.RotateTicks())

	cfg.RotatePeriod = 0.001
	assert.Equal(t, 1, cfg.RotateTicks())
}
