package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jumper/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the jumper SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection plays its own game. All sessions share the
server's high-score list and run history.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.jumper/host_key

Examples:
  jumper serve                           # Listen on :23234 with auto-generated key
  jumper serve --ssh :2222               # Listen on port 2222
  jumper serve --host-key ./my_host_key  # Use specific host key
  jumper serve --backend sqlite          # Keep high scores in the database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	addGameFlags(serveCmd)
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	a, err := openApp(os.Stderr, "jumper-ssh")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    a.cfg.Scoring.FPS,
	}

	server, err := tui.NewSSHServer(cfg, a.factory(), a.logger)
	if err != nil {
		a.Close()
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Jumper SSH server starting on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p <port>")
	fmt.Println("Press Ctrl+C to stop")

	serveErr := server.ListenAndServe()
	a.Close()

	if serveErr != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", serveErr)
		os.Exit(1)
	}
}
