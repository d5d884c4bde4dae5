package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shapecast/internal/platform/tui"
	"github.com/vovakirdan/tui-shapecast/internal/storage"
)

var (
	flagHistoryPlain bool
	flagHistoryClear bool
	flagHistoryLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history [scene]",
	Short: "Browse recorded casts",
	Long: `Show casts recorded by 'demo --record', 'cast --record' and the SSH server.

Without a scene all scenes are shown. On a terminal the history opens as a
table browser; use --plain (or pipe the output) for a text listing.

Examples:
  shapecast history
  shapecast history demo --plain
  shapecast history demo --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagHistoryPlain, "plain", false, "Print a text listing instead of the table browser")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the recorded casts of the scene (or all)")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of casts in the text listing")
}

func runHistory(_ *cobra.Command, args []string) {
	sceneID := ""
	if len(args) == 1 {
		sceneID = args[0]
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening cast history: %v", err)
	}
	defer store.Close()

	if flagHistoryClear {
		n, err := store.ClearCasts(sceneID)
		if err != nil {
			store.Close()
			fatal("%v", err)
		}
		fmt.Printf("Removed %d casts.\n", n)
		return
	}

	width, height, termErr := term.GetSize(int(os.Stdout.Fd()))
	if flagHistoryPlain || termErr != nil || !term.IsTerminal(int(os.Stdout.Fd())) {
		if err := printHistory(os.Stdout, store, sceneID, flagHistoryLimit); err != nil {
			store.Close()
			fatal("%v", err)
		}
		return
	}

	if err := tui.RunHistory(store, sceneID, width, height); err != nil {
		store.Close()
		fatal("running history browser: %v", err)
	}
}

// printHistory writes the newest casts and hit counts as text.
func printHistory(w io.Writer, store tui.HistoryStore, sceneID string, limit int) error {
	var (
		casts []storage.CastRecord
		err   error
	)
	title := "all scenes"
	if sceneID == "" {
		casts, err = store.RecentCasts(limit)
	} else {
		title = sceneID
		casts, err = store.CastsByScene(sceneID, limit)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Cast history - %s\n", title)
	fmt.Fprintln(w)

	if len(casts) == 0 {
		fmt.Fprintln(w, "No casts recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Run 'shapecast demo --record' and click to commit a cast.")
		return nil
	}

	format := "  %-5s  %-10s  %-6s  %-7s  %-14s  %s\n"
	fmt.Fprintf(w, format, "#", "Scene", "Hit", "Dist", "Normal", "When")
	fmt.Fprintf(w, format, "-", "-----", "---", "----", "------", "----")
	for _, c := range casts {
		row := tui.CastRow(c)
		fmt.Fprintf(w, format, row[0], row[1], row[2], row[3], row[4], row[5])
	}

	stats, err := store.HitStats(sceneID)
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, tui.FormatHitStats(stats))
	return nil
}
