// shapecast is a terminal playground for swept box collisions against boxes
// and slopes.
//
// Usage:
//
//	shapecast demo [scene]      - Drag out a box with the mouse and aim it
//	shapecast cast              - Run one shapecast and print the contacts
//	shapecast scenes            - List scenes (schema, show <id>)
//	shapecast history [scene]   - Browse recorded casts
//	shapecast serve             - Serve the demo over SSH
//
// Global flags:
//
//	--fps <rate>     - Override the tick rate from the config
//	--db <path>      - Set database path (default: ~/.shapecast/casts.db)
//	--config <path>  - Load a custom demo config YAML
//	--verbose        - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shapecast/internal/config"
	"github.com/vovakirdan/tui-shapecast/internal/registry"
	"github.com/vovakirdan/tui-shapecast/internal/scene"

	// Register builtin scenes
	_ "github.com/vovakirdan/tui-shapecast/internal/scene/builtin"
)

var (
	// Global flags
	flagFPS     int
	flagDBPath  string
	flagConfig  string
	flagVerbose bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "shapecast",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shapecast",
	Short: "Shapecast - swept box collisions in your terminal",
	Long: `Shapecast moves an axis-aligned box along a displacement and reports
the first box or slope it touches, how far it got and the surface normal.

Available commands:
  demo     - Interactive mouse playground
  cast     - One-shot cast from the command line
  scenes   - List, show or describe scene files
  history  - Browse recorded casts
  serve    - Start SSH server running the demo

Examples:
  shapecast demo
  shapecast demo ramps
  shapecast cast --box -0.5,-0.5,0.5,0.5 --delta 0,6
  shapecast scenes schema > scene.schema.json
  shapecast history demo --plain`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.shapecast/casts.db", "Path to cast history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom demo config YAML")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(castCmd)
	rootCmd.AddCommand(scenesCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// fatal prints an error the way every command reports it and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadConfig reads the demo config and applies global flag overrides.
func loadConfig() config.DemoConfig {
	cfg, err := config.LoadDemo(flagConfig)
	if err != nil {
		fatal("%v", err)
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	logger.Debug("config loaded", "tick_rate", cfg.TickRate, "scene", cfg.Scene, "scenes_dir", cfg.ScenesDir)
	return cfg
}

// loadScenes returns the builtin scenes plus those under the configured directory.
func loadScenes(cfg config.DemoConfig) []scene.Scene {
	scenes, err := registry.All(cfg.ScenesDir)
	if err != nil {
		logger.Warn("could not load scene files, using builtins", "dir", cfg.ScenesDir, "error", err)
		if scenes, err = registry.All(""); err != nil {
			fatal("%v", err)
		}
	}
	return scenes
}

// findScene looks a scene up by ID.
func findScene(scenes []scene.Scene, id string) (scene.Scene, bool) {
	for _, s := range scenes {
		if s.ID == id {
			return s, true
		}
	}
	return scene.Scene{}, false
}
