package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shapecast/internal/geom"
	"github.com/vovakirdan/tui-shapecast/internal/scene"
	"github.com/vovakirdan/tui-shapecast/internal/storage"
	"github.com/vovakirdan/tui-shapecast/internal/sweep"
)

var (
	flagCastBox    string
	flagCastDelta  string
	flagCastScene  string
	flagCastRecord bool
)

var castCmd = &cobra.Command{
	Use:   "cast",
	Short: "Cast a box through a scene and print the contacts",
	Long: `Sweep a box along a displacement through the colliders of a scene.

Every collider the box would touch is listed nearest first, followed by the
resolved first contact and where the box stops.

Box corners may be given in any order.

Examples:
  shapecast cast --box -0.5,-0.5,0.5,0.5 --delta 0,6
  shapecast cast --box 0,0,1,1 --delta -3,-9 --scene ramps
  shapecast cast --box 0,0,1,1 --delta 5,0 --record`,
	Args: cobra.NoArgs,
	Run:  runCast,
}

func init() {
	castCmd.Flags().StringVar(&flagCastBox, "box", "", "Moving box as x0,y0,x1,y1")
	castCmd.Flags().StringVar(&flagCastDelta, "delta", "", "Displacement as dx,dy")
	castCmd.Flags().StringVar(&flagCastScene, "scene", "", "Scene ID (default from config)")
	castCmd.Flags().BoolVar(&flagCastRecord, "record", false, "Record the cast in the history database")
	//nolint:errcheck // Flags are defined above
	castCmd.MarkFlagRequired("box")
	//nolint:errcheck // Flags are defined above
	castCmd.MarkFlagRequired("delta")
}

// parseFloats splits a comma separated list of exactly n numbers.
func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d comma separated numbers, got %q", n, s)
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q: %w", p, err)
		}
		out[i] = v
	}
	return out, nil
}

// parseBox reads "x0,y0,x1,y1" as two opposite corners.
func parseBox(s string) (geom.Box, error) {
	v, err := parseFloats(s, 4)
	if err != nil {
		return geom.Box{}, fmt.Errorf("box: %w", err)
	}
	return geom.BoxFromCorners(geom.V(v[0], v[1]), geom.V(v[2], v[3])), nil
}

// parseVec reads "x,y".
func parseVec(s string) (geom.Vec2, error) {
	v, err := parseFloats(s, 2)
	if err != nil {
		return geom.Zero, fmt.Errorf("delta: %w", err)
	}
	return geom.V(v[0], v[1]), nil
}

func formatVec(v geom.Vec2) string {
	return fmt.Sprintf("(%.2f, %.2f)", v.X(), v.Y())
}

func formatBox(b geom.Box) string {
	return formatVec(b.Min) + "-" + formatVec(b.Max)
}

func runCast(_ *cobra.Command, _ []string) {
	box, err := parseBox(flagCastBox)
	if err != nil {
		fatal("%v", err)
	}
	delta, err := parseVec(flagCastDelta)
	if err != nil {
		fatal("%v", err)
	}

	cfg := loadConfig()
	scenes := loadScenes(cfg)
	id := flagCastScene
	if id == "" {
		id = cfg.Scene
	}
	sc, ok := findScene(scenes, id)
	if !ok {
		fatal("unknown scene %q\nRun 'shapecast scenes' to see available scenes.", id)
	}

	res := sweep.Resolve(box, sc.Colliders, delta)
	logger.Debug("cast resolved", "scene", sc.ID, "hit", res.HasHit, "collider", res.Index, "travel", formatVec(res.Travel))
	printCast(os.Stdout, sc, res, sweep.ResolveAll(box, sc.Colliders, delta))

	if !flagCastRecord {
		return
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening cast history: %v", err)
	}
	defer store.Close()

	castID, err := store.SaveCast(storage.NewCastRecord(sc.ID, "cli", res))
	if err != nil {
		store.Close()
		fatal("%v", err)
	}
	fmt.Printf("\nRecorded cast #%d\n", castID)
}

// printCast writes the contact table and the resolved result.
func printCast(w io.Writer, sc scene.Scene, res sweep.Result, contacts []sweep.Contact) {
	fmt.Fprintf(w, "Scene: %s (%s)\n", sc.ID, sc.Name)
	fmt.Fprintf(w, "Box:   %s  delta %s\n", formatBox(res.Start), formatVec(res.Delta))
	fmt.Fprintln(w)

	if len(contacts) == 0 {
		fmt.Fprintln(w, "No contacts.")
	} else {
		fmt.Fprintln(w, "Contacts:")
		fmt.Fprintf(w, "  %-3s  %-5s  %-6s  %-8s  %s\n", "#", "Kind", "Hit", "Dist", "Normal")
		fmt.Fprintf(w, "  %-3s  %-5s  %-6s  %-8s  %s\n", "-", "----", "---", "----", "------")
		for _, c := range contacts {
			fmt.Fprintf(w, "  %-3d  %-5s  %-6s  %-8.3f  %s\n",
				c.Index, c.Collider.Kind(), c.Hit.Type, c.Hit.Distance, formatVec(c.Hit.Normal))
		}
	}
	fmt.Fprintln(w)

	if !res.HasHit {
		fmt.Fprintf(w, "Clear: travelled %.3f, box ends at %s\n", res.Travel.Len(), formatBox(res.End))
		return
	}
	fmt.Fprintf(w, "Hit %s on collider %d after %.3f, normal %s\n",
		res.Hit.Type, res.Index, res.Hit.Distance, formatVec(res.Hit.Normal))
	fmt.Fprintf(w, "Stop:  %s\n", formatBox(res.Stop))
}
