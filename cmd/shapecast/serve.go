package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shapecast/internal/demo"
	"github.com/vovakirdan/tui-shapecast/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagNoHistory   bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the shapecast SSH server",
	Long: `Start an SSH server that runs the interactive demo for each connection.

Every session gets its own demo. Committed casts are written to the shared
history database unless --no-history is given. Use a terminal with mouse
support to draw boxes.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.shapecast/host_key

Examples:
  shapecast serve                           # Listen on :23235 with auto-generated key
  shapecast serve --ssh :2222               # Listen on port 2222
  shapecast serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().BoolVar(&flagNoHistory, "no-history", false, "Do not record committed casts")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	scenes := loadScenes(cfg)
	if _, ok := findScene(scenes, cfg.Scene); !ok {
		fatal("unknown scene %q in config", cfg.Scene)
	}

	dbPath := flagDBPath
	if flagNoHistory {
		dbPath = ""
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      dbPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    cfg.TickRate,
		NewDemo: func() (*demo.Demo, error) {
			return newDemo(cfg, scenes, cfg.Scene)
		},
		Logger: logger.WithPrefix("shapecast-ssh"),
	})
	if err != nil {
		fatal("creating server: %v", err)
	}

	fmt.Printf("Starting shapecast SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fatal("server: %v", err)
	}
}
