package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shapecast/internal/config"
	"github.com/vovakirdan/tui-shapecast/internal/core"
	"github.com/vovakirdan/tui-shapecast/internal/demo"
	"github.com/vovakirdan/tui-shapecast/internal/platform/tui"
	"github.com/vovakirdan/tui-shapecast/internal/scene"
	"github.com/vovakirdan/tui-shapecast/internal/storage"
)

var flagRecord bool

var demoCmd = &cobra.Command{
	Use:   "demo [scene]",
	Short: "Run the interactive shapecast demo",
	Long: `Open the mouse-driven playground.

Press and drag to draw a box, release to fix it, then move the pointer to
aim. The sweep is traced every frame. Click again to commit the cast.

Controls:
  Mouse      - Draw, aim and commit
  N/Tab      - Next scene
  P/S-Tab    - Previous scene
  R          - Rotate slopes now
  A          - Pause or resume automatic rotation
  X          - Drop the current box
  ?          - Full help
  Ctrl+S     - Save a text screenshot
  Q/Ctrl+C   - Quit

Examples:
  shapecast demo
  shapecast demo corridor
  shapecast demo --record
  shapecast demo --config ./my-demo.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runDemo,
}

func init() {
	demoCmd.Flags().BoolVar(&flagRecord, "record", false, "Record committed casts (default from config)")
}

// newDemo builds a demo over scenes starting at the given scene ID.
func newDemo(cfg config.DemoConfig, scenes []scene.Scene, start string) (*demo.Demo, error) {
	palette, unknown := demo.PaletteFrom(cfg.Palette)
	if len(unknown) > 0 {
		logger.Warn("unknown palette colours, using defaults", "names", strings.Join(unknown, ","))
	}

	d, err := demo.New(scenes, demo.Options{
		RotateTicks: cfg.RotateTicks(),
		HalfHeight:  cfg.Camera.HalfHeight,
		CellAspect:  cfg.Camera.CellAspect,
		Palette:     palette,
	})
	if err != nil {
		return nil, err
	}
	if start != "" {
		if err := d.SelectScene(start); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func runDemo(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	scenes := loadScenes(cfg)

	start := cfg.Scene
	if len(args) == 1 {
		start = args[0]
	}
	if _, ok := findScene(scenes, start); !ok {
		fatal("unknown scene %q\nRun 'shapecast scenes' to see available scenes.", start)
	}

	d, err := newDemo(cfg, scenes, start)
	if err != nil {
		fatal("%v", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	rc := core.RuntimeConfig{ScreenW: width, ScreenH: height, TickRate: cfg.TickRate}

	record := cfg.RecordCasts
	if cmd.Flags().Changed("record") {
		record = flagRecord
	}

	opts := tui.Options{Source: "tui"}
	var store *storage.Store
	if record {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			// Continue without history, the demo still works
			logger.Warn("could not open cast history", "error", err)
		} else {
			opts.Recorder = store
		}
	}

	runErr := tui.Run(d, rc, opts)

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fatal("running demo: %v", runErr)
	}
}
