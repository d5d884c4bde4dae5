package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shapecast/internal/scene"
)

var scenesCmd = &cobra.Command{
	Use:   "scenes",
	Short: "List available scenes",
	Long: `Shows every builtin scene plus the scene files found in the
configured scenes_dir. File scenes replace builtins with the same ID.`,
	Args: cobra.NoArgs,
	Run:  runScenes,
}

var scenesShowCmd = &cobra.Command{
	Use:   "show <scene>",
	Short: "Print a scene as YAML",
	Long: `Print a scene in the file format read from scenes_dir.
Useful as a starting point for a custom scene.

Examples:
  shapecast scenes show ramps > ~/.shapecast/scenes/my-ramps.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runScenesShow,
}

var scenesSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of scene files",
	Args:  cobra.NoArgs,
	Run:   runScenesSchema,
}

func init() {
	scenesCmd.AddCommand(scenesShowCmd)
	scenesCmd.AddCommand(scenesSchemaCmd)
}

func runScenes(_ *cobra.Command, _ []string) {
	scenes := loadScenes(loadConfig())

	if len(scenes) == 0 {
		fmt.Println("No scenes available.")
		return
	}

	fmt.Println("Available scenes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range scenes {
		maxIDLen = max(maxIDLen, len(s.ID))
	}

	fmt.Printf("  %-*s  %5s  %6s  %s\n", maxIDLen, "ID", "Boxes", "Slopes", "Name")
	fmt.Printf("  %-*s  %5s  %6s  %s\n", maxIDLen, "--", "-----", "------", "----")

	for _, s := range scenes {
		boxes, slopes := s.Counts()
		name := s.Name
		if s.FilePath != "" {
			name += " (" + s.FilePath + ")"
		}
		fmt.Printf("  %-*s  %5d  %6d  %s\n", maxIDLen, s.ID, boxes, slopes, name)
	}

	fmt.Println()
	fmt.Println("Run 'shapecast demo <id>' to open a scene.")
}

func runScenesShow(_ *cobra.Command, args []string) {
	scenes := loadScenes(loadConfig())
	sc, ok := findScene(scenes, args[0])
	if !ok {
		fatal("unknown scene %q", args[0])
	}

	data, err := scene.Encode(sc)
	if err != nil {
		fatal("%v", err)
	}
	os.Stdout.Write(data)
}

func runScenesSchema(_ *cobra.Command, _ []string) {
	data, err := scene.SchemaJSON()
	if err != nil {
		fatal("%v", err)
	}
	os.Stdout.Write(data)
	fmt.Println()
}
